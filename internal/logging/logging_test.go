package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, Level("debug"))
	require.Equal(t, zerolog.WarnLevel, Level(" WARN "))
	require.Equal(t, zerolog.Disabled, Level("none"))
	require.Equal(t, zerolog.InfoLevel, Level("verbose"))
}

func TestSetupFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	path := filepath.Join(t.TempDir(), "spiral.log")

	closeFn, err := Setup(Options{Level: "info", File: path})
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	log.Info().Str("family", "hyperbolic").Msg("shown")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.False(t, strings.Contains(string(data), "hidden"))
	require.Contains(t, string(data), `"family":"hyperbolic"`)
	require.Contains(t, string(data), `"message":"shown"`)
}

func TestSetupBadFile(t *testing.T) {
	_, err := Setup(Options{File: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
}

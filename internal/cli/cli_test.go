package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/spiral-animation/internal/anim"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	cmd := Root()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "spirals v"+BuildVersion)
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	cmd := Root()
	cmd.SetArgs([]string{"snapshot", "-o", path, "--ticks", "3", "-n", "40", "--width", "320", "--height", "200", "--log_level", "none"})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 320, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())

	// the spiral starts at the center of the frame
	r, g, b, _ := img.At(160, 100).RGBA()
	require.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestSnapshotCommandRejectsNegativeTicks(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"snapshot", "-o", filepath.Join(t.TempDir(), "x.png"), "--ticks=-1", "--log_level", "none"})
	require.Error(t, cmd.Execute())
}

func TestSnapshotCommandInvalidConfig(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"snapshot", "--family", "fermat", "--log_level", "none"})
	require.Error(t, cmd.Execute())
}

func TestSnapshotFullTurnMatchesStart(t *testing.T) {
	dir := t.TempDir()
	params := anim.Params{Scale: 2, AngularStep: 0.3, PointCount: 60, RefreshInterval: 10 * time.Millisecond}

	start := filepath.Join(dir, "start.png")
	turned := filepath.Join(dir, "turned.png")
	require.NoError(t, snapshot(200, 200, params, 0, start, anim.WithStepDegrees(90)))
	require.NoError(t, snapshot(200, 200, params, 4, turned, anim.WithStepDegrees(90)))

	a, err := os.ReadFile(start)
	require.NoError(t, err)
	b, err := os.ReadFile(turned)
	require.NoError(t, err)
	imgA, err := png.Decode(bytes.NewReader(a))
	require.NoError(t, err)
	imgB, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)

	// four quarter turns land within rounding of the start; compare coverage
	var diff int
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			ra, _, _, _ := imgA.At(x, y).RGBA()
			rb, _, _, _ := imgB.At(x, y).RGBA()
			if (ra > 0x8000) != (rb > 0x8000) {
				diff++
			}
		}
	}
	require.Less(t, diff, 10)
}

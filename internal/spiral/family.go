package spiral

import (
	"fmt"
	"strings"
)

// Family selects the radius-vs-angle relationship of a spiral.
type Family int

const (
	Archimedean Family = iota
	Hyperbolic
	Logarithmic
)

var familyNames = map[Family]string{
	Archimedean: "archimedean",
	Hyperbolic:  "hyperbolic",
	Logarithmic: "logarithmic",
}

// Families returns every family in selector order.
func Families() []Family {
	return []Family{Archimedean, Hyperbolic, Logarithmic}
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Next cycles to the following family, wrapping after the last one.
func (f Family) Next() Family {
	return (f + 1) % Family(len(familyNames))
}

// ParseFamily resolves a family name, case-insensitively.
func ParseFamily(s string) (Family, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "archemedian" {
		// spelling used by the first version of the selector
		return Archimedean, nil
	}
	for f, n := range familyNames {
		if n == name {
			return f, nil
		}
	}
	return Archimedean, fmt.Errorf("unknown spiral family %q", s)
}

func (f Family) MarshalText() ([]byte, error) {
	if _, ok := familyNames[f]; !ok {
		return nil, fmt.Errorf("unknown spiral family %d", int(f))
	}
	return []byte(f.String()), nil
}

func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

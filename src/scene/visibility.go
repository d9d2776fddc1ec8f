package scene

import (
	"fmt"
	"strings"

	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
)

// Opacity applied to a group's markers and legend glyph.
const (
	VisibleOpacity = 0.8
	HiddenOpacity  = 0.1
)

// Visibility says which groups are shown, indexed by passengers.Group.
type Visibility [passengers.NumGroups]bool

// AllVisible is the state after the dataset loads.
func AllVisible() Visibility {
	return Visibility{true, true, true, true}
}

// Toggle flips group g and leaves the others untouched. Out-of-range
// groups are ignored.
func (v *Visibility) Toggle(g passengers.Group) {
	if g < 0 || int(g) >= passengers.NumGroups {
		return
	}
	v[g] = !v[g]
}

// Opacities returns the per-group opacity: VisibleOpacity when shown,
// HiddenOpacity otherwise.
func Opacities(v Visibility) [passengers.NumGroups]float64 {
	var out [passengers.NumGroups]float64
	for i, on := range v {
		if on {
			out[i] = VisibleOpacity
		} else {
			out[i] = HiddenOpacity
		}
	}
	return out
}

// String renders v as a mask such as "1011".
func (v Visibility) String() string {
	var b strings.Builder
	for _, on := range v {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ParseVisibility reads a 4 character mask of 0/1 in group order.
func ParseVisibility(s string) (Visibility, error) {
	var v Visibility
	s = strings.TrimSpace(s)
	if len(s) != passengers.NumGroups {
		return v, fmt.Errorf("visibility mask %q: want %d characters of 0/1", s, passengers.NumGroups)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '1':
			v[i] = true
		case '0':
		default:
			return v, fmt.Errorf("visibility mask %q: bad character %q at %d", s, s[i], i)
		}
	}
	return v, nil
}

package recolor

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a validated RGB triple parsed from a 6-digit hex string.
type ColorSpec struct {
	R, G, B uint8
}

// ParseColor parses "#RRGGBB" or "RRGGBB" into a ColorSpec. Exactly six hex
// digits are required after the optional leading '#'.
func ParseColor(s string) (ColorSpec, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return ColorSpec{}, fmt.Errorf("color %q: need exactly 6 hex digits", s)
	}
	var c ColorSpec
	for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
		v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return ColorSpec{}, fmt.Errorf("color %q: invalid hex digits", s)
		}
		*dst = uint8(v)
	}
	return c, nil
}

// String returns the canonical #RRGGBB form.
func (c ColorSpec) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

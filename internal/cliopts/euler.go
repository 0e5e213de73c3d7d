package cliopts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/UWCubeSat/found/internal/spatial"
)

// inf is the default for flags documented as having no distance/ratio
// bound, matching the original's DECIMAL_INF sentinel.
var inf = math.Inf(1)

// eulerAnglesValue adapts spatial.EulerAngles to pflag.Value, parsing a
// comma- or whitespace-separated "ra,de,roll" triple given in degrees into
// radians.
type eulerAnglesValue struct {
	angles *spatial.EulerAngles
}

func newEulerAnglesValue(angles *spatial.EulerAngles) *eulerAnglesValue {
	return &eulerAnglesValue{angles: angles}
}

// String implements pflag.Value.
func (v *eulerAnglesValue) String() string {
	if v.angles == nil {
		return "0,0,0"
	}
	return fmt.Sprintf("%g,%g,%g",
		spatial.RadToDeg(v.angles.RA),
		spatial.RadToDeg(v.angles.DE),
		spatial.RadToDeg(v.angles.Roll))
}

// Set implements pflag.Value.
//
// The three components may be separated by commas or by whitespace
// (spec.md's orientation syntax), so "1,2,3" and "1 2 3" are both accepted.
func (v *eulerAnglesValue) Set(s string) error {
	splitOnComma := func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }
	var parts []string
	for _, p := range strings.FieldsFunc(s, splitOnComma) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 3 {
		return fmt.Errorf("expected ra,de,roll in degrees, got %q", s)
	}

	values := make([]float64, 3)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d of %q is not a number: %w", i, s, err)
		}
		values[i] = f
	}

	*v.angles = spatial.EulerAngles{
		RA:   spatial.DegToRad(values[0]),
		DE:   spatial.DegToRad(values[1]),
		Roll: spatial.DegToRad(values[2]),
	}
	return nil
}

// Type implements pflag.Value.
func (v *eulerAnglesValue) Type() string {
	return "ra,de,roll"
}

package juggle

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"go.dw1.io/juggle/internal/regexp"
)

var (
	// decimal literal with optional sign, fraction, exponent and
	// surrounding whitespace; no hex, no inf/nan, no digit separators
	numericPattern = regexp.MustCompile(`^\s*[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?\s*$`)
	boolPattern    = regexp.MustCompile(`^(?i:true|false)$`)
)

func isNumeric(s string) bool {
	return numericPattern.MatchString(s)
}

func isBoolLiteral(s string) bool {
	return boolPattern.MatchString(s)
}

// parseNumeric parses a string accepted by isNumeric.
func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}

	return f, true
}

// roundToInt rounds half away from zero. NaN, infinities and values outside
// the int range do not convert.
func roundToInt(f float64) (int, bool) {
	r := math.Round(f)
	if math.IsNaN(r) || r < math.MinInt || r >= math.MaxInt {
		return 0, false
	}

	return int(r), true
}

func formatInt(i int) string {
	return cast.ToString(i)
}

// formatFloat renders the shortest decimal that round-trips, without an
// exponent: 1.0 is "1", 1.5 is "1.5".
func formatFloat(f float64) string {
	return cast.ToString(f)
}

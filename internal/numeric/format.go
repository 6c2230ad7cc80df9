package numeric

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Format renders a number with thousands grouping and minimal decimals:
// integral values get no decimal point, everything else is rounded to
// at most four decimal digits with trailing zeros stripped. A nil value
// renders as the empty string.
func Format(value *float64) string {
	if value == nil {
		return ""
	}
	v := *value
	if v == math.Trunc(v) {
		return humanize.Commaf(v)
	}
	s := humanize.FormatFloat("#,###.####", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatAny is the defensive variant used when rendering loosely typed
// figures. Anything that cannot be coerced to a number renders as its
// literal string form; it never panics.
func FormatAny(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *float64:
		return Format(v)
	case float64:
		return Format(&v)
	case float32:
		f := float64(v)
		return Format(&f)
	case int:
		f := float64(v)
		return Format(&f)
	case int64:
		f := float64(v)
		return Format(&f)
	default:
		return fmt.Sprint(value)
	}
}

// Round1 rounds to one decimal place, the precision used for every
// user-facing percentage.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

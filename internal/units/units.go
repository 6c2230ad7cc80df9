// Package units guesses a visitor's preferred unit system from request
// headers. The guess is only a display default; a preference stored on
// the run always wins.
package units

import (
	"net/http"
	"strings"

	"github.com/calibra-quiz/backend/internal/domain/quizrun"
)

// Infer picks a default unit system:
//  1. CF-IPCountry header when behind Cloudflare: US → imperial,
//     anything else → metric.
//  2. Accept-Language: an en-US variant → imperial, otherwise metric.
func Infer(h http.Header) quizrun.UnitSystem {
	if country := strings.ToUpper(strings.TrimSpace(h.Get("CF-IPCountry"))); country != "" {
		if country == "US" {
			return quizrun.UnitImperial
		}
		return quizrun.UnitMetric
	}

	langs := strings.ToLower(h.Get("Accept-Language"))
	for _, part := range strings.Split(langs, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "en-us" {
			return quizrun.UnitImperial
		}
	}
	return quizrun.UnitMetric
}

package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkordes/travel-approval/internal/domain"
)

// ParseCost converts a cost field to a number. Empty text is zero; anything
// that is not a finite, non-negative decimal is rejected.
func ParseCost(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative", raw)
	}
	return v, nil
}

// costReader parses cost fields and remembers every failure so a caller can
// report all bad fields at once instead of stopping at the first.
type costReader struct {
	problems []string
}

func (r *costReader) read(field, raw string) float64 {
	v, err := ParseCost(raw)
	if err != nil {
		r.problems = append(r.problems, field+": "+err.Error())
		return 0
	}
	return v
}

func (r *costReader) err() error {
	if len(r.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(r.problems, "; "))
}

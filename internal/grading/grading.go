package grading

import (
	"fmt"
	"math"

	"github.com/akhmetov-d/presentio/internal/domain"
)

// NormalizeCriteria rescales criterion weights so they sum to exactly 100.
// A set already summing to 100 is returned unchanged, which makes the
// operation idempotent. Otherwise each weight is scaled by 100/total and
// rounded, and the rounding remainder lands on the first criterion. With a
// zero total every scaled weight is 0 and the first criterion absorbs the
// whole 100.
func NormalizeCriteria(criteria []domain.GradingCriterion) []domain.GradingCriterion {
	if len(criteria) == 0 {
		return criteria
	}

	total := 0
	for _, c := range criteria {
		total += c.Weight
	}

	out := make([]domain.GradingCriterion, len(criteria))
	copy(out, criteria)
	if total == 100 {
		return out
	}

	factor := 100 / math.Max(float64(total), 1)
	sum := 0
	for i := range out {
		out[i].Weight = int(math.Round(float64(out[i].Weight) * factor))
		sum += out[i].Weight
	}
	out[0].Weight += 100 - sum

	return out
}

// ValidateTeamSizes coerces team bounds for the given participation type.
// Individual presentations are always (1,1). Team bounds fall back to 1 and
// min respectively when out of range.
func ValidateTeamSizes(pt domain.ParticipationType, min, max int) (int, int) {
	if pt == domain.ParticipationIndividual {
		return 1, 1
	}
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return min, max
}

// WeightedTotal derives the slot's total score from per-criterion grades:
// sum of grade * weight / 100. Grades for unknown criteria are rejected so a
// client cannot smuggle weightless score into the total.
func WeightedTotal(grades map[string]float64, criteria []domain.GradingCriterion) (float64, error) {
	weights := make(map[string]int, len(criteria))
	for _, c := range criteria {
		weights[c.Name] = c.Weight
	}

	var total float64
	for name, grade := range grades {
		w, ok := weights[name]
		if !ok {
			return 0, fmt.Errorf("%w: unknown grading criterion %q", domain.ErrValidation, name)
		}
		if grade < 0 || grade > 100 {
			return 0, fmt.Errorf("%w: grade for %q out of range", domain.ErrValidation, name)
		}
		total += grade * float64(w) / 100
	}

	return total, nil
}

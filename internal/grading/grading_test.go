package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akhmetov-d/presentio/internal/domain"
)

func weightSum(criteria []domain.GradingCriterion) int {
	sum := 0
	for _, c := range criteria {
		sum += c.Weight
	}
	return sum
}

func TestNormalizeCriteria_AlreadyNormalized(t *testing.T) {
	in := []domain.GradingCriterion{
		{Name: "Content", Weight: 40},
		{Name: "Delivery", Weight: 60},
	}

	out := NormalizeCriteria(in)

	assert.Equal(t, in, out)
}

func TestNormalizeCriteria_ScalesTo100(t *testing.T) {
	// 50+60=110; factor 100/110; 45.45 -> 45, 54.54 -> 55; remainder 0
	in := []domain.GradingCriterion{
		{Name: "A", Weight: 50},
		{Name: "B", Weight: 60},
	}

	out := NormalizeCriteria(in)

	assert.Equal(t, 45, out[0].Weight)
	assert.Equal(t, 55, out[1].Weight)
	assert.Equal(t, 100, weightSum(out))
}

func TestNormalizeCriteria_RemainderToFirst(t *testing.T) {
	// three equal thirds round to 33 each; the remainder 1 goes to the first
	in := []domain.GradingCriterion{
		{Name: "A", Weight: 10},
		{Name: "B", Weight: 10},
		{Name: "C", Weight: 10},
	}

	out := NormalizeCriteria(in)

	assert.Equal(t, 34, out[0].Weight)
	assert.Equal(t, 33, out[1].Weight)
	assert.Equal(t, 33, out[2].Weight)
}

func TestNormalizeCriteria_ZeroTotal(t *testing.T) {
	in := []domain.GradingCriterion{
		{Name: "A", Weight: 0},
		{Name: "B", Weight: 0},
	}

	out := NormalizeCriteria(in)

	assert.Equal(t, 100, out[0].Weight)
	assert.Equal(t, 0, out[1].Weight)
}

func TestNormalizeCriteria_Idempotent(t *testing.T) {
	cases := [][]domain.GradingCriterion{
		{{Name: "A", Weight: 50}, {Name: "B", Weight: 60}},
		{{Name: "A", Weight: 1}, {Name: "B", Weight: 2}, {Name: "C", Weight: 3}},
		{{Name: "A", Weight: 200}},
		{{Name: "A", Weight: 7}, {Name: "B", Weight: 13}, {Name: "C", Weight: 17}, {Name: "D", Weight: 23}},
	}

	for _, in := range cases {
		once := NormalizeCriteria(in)
		twice := NormalizeCriteria(once)

		assert.Equal(t, 100, weightSum(once))
		assert.Equal(t, once, twice)
	}
}

func TestNormalizeCriteria_Empty(t *testing.T) {
	assert.Empty(t, NormalizeCriteria(nil))
}

func TestNormalizeCriteria_DoesNotMutateInput(t *testing.T) {
	in := []domain.GradingCriterion{
		{Name: "A", Weight: 50},
		{Name: "B", Weight: 60},
	}

	NormalizeCriteria(in)

	assert.Equal(t, 50, in[0].Weight)
	assert.Equal(t, 60, in[1].Weight)
}

func TestValidateTeamSizes(t *testing.T) {
	cases := []struct {
		name             string
		pt               domain.ParticipationType
		min, max         int
		wantMin, wantMax int
	}{
		{"individual forces 1-1", domain.ParticipationIndividual, 3, 5, 1, 1},
		{"team valid bounds kept", domain.ParticipationTeam, 2, 4, 2, 4},
		{"team min below 1", domain.ParticipationTeam, 0, 4, 1, 4},
		{"team negative min", domain.ParticipationTeam, -2, 4, 1, 4},
		{"team max below min", domain.ParticipationTeam, 3, 2, 3, 3},
		{"team both invalid", domain.ParticipationTeam, 0, 0, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			min, max := ValidateTeamSizes(tc.pt, tc.min, tc.max)
			assert.Equal(t, tc.wantMin, min)
			assert.Equal(t, tc.wantMax, max)
		})
	}
}

func TestWeightedTotal(t *testing.T) {
	criteria := []domain.GradingCriterion{
		{Name: "Content", Weight: 40},
		{Name: "Delivery", Weight: 30},
		{Name: "Q&A", Weight: 30},
	}

	total, err := WeightedTotal(map[string]float64{
		"Content":  80,
		"Delivery": 90,
		"Q&A":      70,
	}, criteria)

	require.NoError(t, err)
	assert.InDelta(t, 80.0, total, 0.0001) // 32 + 27 + 21
}

func TestWeightedTotal_UnknownCriterion(t *testing.T) {
	criteria := []domain.GradingCriterion{{Name: "Content", Weight: 100}}

	_, err := WeightedTotal(map[string]float64{"Vibes": 99}, criteria)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWeightedTotal_GradeOutOfRange(t *testing.T) {
	criteria := []domain.GradingCriterion{{Name: "Content", Weight: 100}}

	_, err := WeightedTotal(map[string]float64{"Content": 101}, criteria)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = WeightedTotal(map[string]float64{"Content": -1}, criteria)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

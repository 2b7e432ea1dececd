package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"curbside/models"
)

func intPtr(v int) *int { return &v }

func TestRecomputeRating_FirstReview(t *testing.T) {
	avg, count := models.RecomputeRating(0, 0, nil, 4)

	assert.Equal(t, 1, count)
	assert.Equal(t, 4.0, avg)
}

func TestRecomputeRating_ReplacementKeepsCount(t *testing.T) {
	avg, count := models.RecomputeRating(4, 1, intPtr(4), 2)

	assert.Equal(t, 1, count, "replacing a rating must not increase the count")
	assert.Equal(t, 2.0, avg)
}

func TestRecomputeRating_ZeroCountReplacementGuard(t *testing.T) {
	// A replacement against an erroneously zeroed count treats it as 1.
	avg, count := models.RecomputeRating(0, 0, intPtr(3), 5)

	assert.Equal(t, 1, count)
	assert.Equal(t, 2.0, avg)
}

func TestRecomputeRating_ConvergesRegardlessOfOrder(t *testing.T) {
	// Truck starts at averageRating=4, ratingCount=1. Two new reviewers
	// rate 5 and 3; either commit order must land on mean(4,5,3)=4.0.
	avgA, countA := models.RecomputeRating(4, 1, nil, 5)
	avgA, countA = models.RecomputeRating(avgA, countA, nil, 3)

	avgB, countB := models.RecomputeRating(4, 1, nil, 3)
	avgB, countB = models.RecomputeRating(avgB, countB, nil, 5)

	assert.Equal(t, 3, countA)
	assert.Equal(t, 3, countB)
	assert.Equal(t, 4.0, avgA)
	assert.Equal(t, 4.0, avgB)
}

func TestRecomputeRating_SequenceMatchesFullRecompute(t *testing.T) {
	// Interleaved first reviews and replacements across distinct reviewers:
	// the rolling aggregate must track the mean of each reviewer's most
	// recent rating, and the count the number of distinct reviewers.
	type contribution struct {
		reviewer string
		rating   int
	}
	seq := []contribution{
		{"a", 5}, {"b", 3}, {"a", 1}, {"c", 4}, {"b", 5}, {"d", 2}, {"a", 4},
	}

	current := map[string]int{}
	avg, count := 0.0, 0
	for _, c := range seq {
		var old *int
		if prev, ok := current[c.reviewer]; ok {
			old = intPtr(prev)
		}
		avg, count = models.RecomputeRating(avg, count, old, c.rating)
		current[c.reviewer] = c.rating
	}

	sum := 0
	for _, r := range current {
		sum += r
	}
	expected := float64(sum) / float64(len(current))

	assert.Equal(t, len(current), count)
	assert.InDelta(t, expected, avg, 0.01)
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 4.33, models.RoundRating(13.0/3.0))
	assert.Equal(t, 4.5, models.RoundRating(4.5))
	assert.Equal(t, 0.0, models.RoundRating(0))
}

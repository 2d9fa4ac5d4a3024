// Package reputation holds the trust-score math for user reviews.
// Scores live on a 0-200 scale; a 3-star rating is neutral.
package reputation

import "math"

const (
	Min     = 0
	Max     = 200
	Neutral = 3
)

// Score applies a 1-5 star rating to the current score. Each star away
// from neutral moves the score by two points, clamped to [Min, Max].
func Score(current int, rating int) int {
	next := int(math.Round(float64(current) + float64(rating-Neutral)*2))
	if next < Min {
		return Min
	}
	if next > Max {
		return Max
	}
	return next
}

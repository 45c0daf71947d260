package elo

import "math"

// KFactor scales how much a single match moves a rating.
const KFactor = 32

// DefaultRating is the rating assigned to newly created players.
const DefaultRating = 1200

// Delta calculates the ELO rating change for a match outcome using the
// standard logistic expected-score formula. The winner gains Delta points
// and the loser gives up the same amount, so ratings are conserved.
//
// Rounding is half away from zero (math.Round), applied once to the delta;
// both sides share the single rounded value.
func Delta(winnerRating, loserRating int) int {
	return DeltaK(winnerRating, loserRating, KFactor)
}

// DeltaK is Delta with an explicit K-factor.
func DeltaK(winnerRating, loserRating, kFactor int) int {
	expectedWinner := 1.0 / (1.0 + math.Pow(10, float64(loserRating-winnerRating)/400.0))
	return int(math.Round(float64(kFactor) * (1.0 - expectedWinner)))
}

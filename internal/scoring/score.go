// Package scoring holds the answer scoring formula. It is pure: no I/O,
// no clock, no storage. The write path that applies scores lives outside
// this core.
package scoring

import "math"

const (
	DefaultMaxTimeMs    = 30000
	DefaultTimeBonusMax = 50
)

type Result struct {
	Score     int `json:"score"`
	TimeBonus int `json:"timeBonus"`
}

// CalculateScore applies the default time window and bonus ceiling.
func CalculateScore(basePoints, responseTimeMs int) Result {
	return CalculateScoreWith(basePoints, responseTimeMs, DefaultMaxTimeMs, DefaultTimeBonusMax)
}

// CalculateScoreWith clamps responseTimeMs to [0, maxTimeMs]; the bonus
// decays linearly from timeBonusMax at time zero to 0 at maxTimeMs.
func CalculateScoreWith(basePoints, responseTimeMs, maxTimeMs, timeBonusMax int) Result {
	clamped := responseTimeMs
	if clamped < 0 {
		clamped = 0
	}
	if clamped > maxTimeMs {
		clamped = maxTimeMs
	}
	timeFactor := 1 - float64(clamped)/float64(maxTimeMs)
	timeBonus := int(math.Round(float64(timeBonusMax) * timeFactor))
	return Result{
		Score:     basePoints + timeBonus,
		TimeBonus: timeBonus,
	}
}

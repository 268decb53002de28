package milestone

import (
	"strings"

	"github.com/courtline/milestones/internal/domain/boxscore"
)

// countingStats returns the five counting categories in the fixed evaluation
// order pts, reb, ast, stl, blk. Every multi-category predicate and the
// double-double category string iterate this order.
func countingStats(s boxscore.StatLine) [5]int {
	return [5]int{s.Pts, s.Trb, s.Ast, s.Stl, s.Blk}
}

func atOrAbove(s boxscore.StatLine, threshold int) int {
	count := 0
	for _, v := range countingStats(s) {
		if v >= threshold {
			count++
		}
	}
	return count
}

func inNearBand(s boxscore.StatLine, near, threshold int) int {
	count := 0
	for _, v := range countingStats(s) {
		if v >= near && v < threshold {
			count++
		}
	}
	return count
}

// IsDoubleDouble reports 2+ counting categories at or above threshold.
func IsDoubleDouble(s boxscore.StatLine, threshold int) bool {
	return atOrAbove(s, threshold) >= 2
}

// IsTripleDouble reports 3+ counting categories at or above threshold.
func IsTripleDouble(s boxscore.StatLine, threshold int) bool {
	return atOrAbove(s, threshold) >= 3
}

// IsQuadrupleDouble reports 4+ counting categories at or above threshold.
func IsQuadrupleDouble(s boxscore.StatLine, threshold int) bool {
	return atOrAbove(s, threshold) >= 4
}

// IsFiveByFive reports threshold+ in all five counting categories.
func IsFiveByFive(s boxscore.StatLine, threshold int) bool {
	for _, v := range countingStats(s) {
		if v < threshold {
			return false
		}
	}
	return true
}

// IsNearTripleDouble reports exactly 2 categories at threshold with at least
// one more in the near band. A performance that already qualifies as a
// triple-double is not "near" one.
func IsNearTripleDouble(s boxscore.StatLine, threshold, near int) bool {
	at := atOrAbove(s, threshold)
	if at >= 3 {
		return false
	}
	return at == 2 && inNearBand(s, near, threshold) >= 1
}

// IsNearDoubleDouble reports exactly 1 category at threshold with at least one
// more in the near band, and no double-double already achieved.
func IsNearDoubleDouble(s boxscore.StatLine, threshold, near int) bool {
	at := atOrAbove(s, threshold)
	if at >= 2 {
		return false
	}
	return at == 1 && inNearBand(s, near, threshold) >= 1
}

// IsAllAround reports 5+ in all five counting categories, or 8+ in four.
func IsAllAround(s boxscore.StatLine) bool {
	if IsFiveByFive(s, 5) {
		return true
	}
	atEight := 0
	for _, v := range countingStats(s) {
		if v >= 8 {
			atEight++
		}
	}
	return atEight >= 4
}

// IsHotShooting reports minAttempts+ field goal attempts at pctThreshold or
// better.
func IsHotShooting(s boxscore.StatLine, pctThreshold float64, minAttempts int) bool {
	if s.Fga < minAttempts {
		return false
	}
	return float64(s.Fg)/float64(s.Fga) >= pctThreshold
}

// IsPerfectFromThree reports a miss-free night from deep with minAttempts+
// tries.
func IsPerfectFromThree(s boxscore.StatLine, minAttempts int) bool {
	return s.Fg3a >= minAttempts && s.Fg3 == s.Fg3a
}

// IsPerfectFT reports a miss-free night at the line with minAttempts+ tries.
func IsPerfectFT(s boxscore.StatLine, minAttempts int) bool {
	return s.Fta >= minAttempts && s.Ft == s.Fta
}

// IsPerfectFG reports a miss-free night from the field with minAttempts+
// tries.
func IsPerfectFG(s boxscore.StatLine, minAttempts int) bool {
	return s.Fga >= minAttempts && s.Fg == s.Fga
}

// IsEfficientScoring reports minPoints+ points at tsThreshold true shooting or
// better. Undefined TS% (no attempts) never qualifies.
func IsEfficientScoring(s boxscore.StatLine, tsThreshold float64, minPoints int) bool {
	if s.Pts < minPoints {
		return false
	}
	ts, ok := boxscore.TrueShooting(s.Pts, s.Fga, s.Fta)
	return ok && ts >= tsThreshold
}

// IsDefensiveMonster reports steals plus blocks at or above the combined
// threshold.
func IsDefensiveMonster(s boxscore.StatLine, combined int) bool {
	return s.Stl+s.Blk >= combined
}

// IsZeroTurnover reports a turnover-free game with meaningful minutes.
func IsZeroTurnover(s boxscore.StatLine, minMinutes float64) bool {
	return s.Tov == 0 && s.Mp >= minMinutes
}

// DoubleDoubleCategories renders which counting categories reached the
// threshold, like "pts/reb/ast", in the fixed pts, reb, ast, stl, blk order.
func DoubleDoubleCategories(s boxscore.StatLine, threshold int) string {
	names := [5]string{"pts", "reb", "ast", "stl", "blk"}
	values := countingStats(s)

	hit := make([]string, 0, 5)
	for i, v := range values {
		if v >= threshold {
			hit = append(hit, names[i])
		}
	}
	return strings.Join(hit, "/")
}

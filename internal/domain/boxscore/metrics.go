package boxscore

import "math"

// GameScore computes John Hollinger's Game Score, rounded to one decimal.
//
//	GmSc = PTS + 0.4*FG - 0.7*FGA - 0.4*(FTA-FT) + 0.7*ORB + 0.3*DRB
//	       + STL + 0.7*AST + 0.7*BLK - 0.4*PF - TOV
func GameScore(s StatLine) float64 {
	score := float64(s.Pts) +
		0.4*float64(s.Fg) -
		0.7*float64(s.Fga) -
		0.4*float64(s.Fta-s.Ft) +
		0.7*float64(s.Orb) +
		0.3*float64(s.Drb) +
		float64(s.Stl) +
		0.7*float64(s.Ast) +
		0.7*float64(s.Blk) -
		0.4*float64(s.Pf) -
		float64(s.Tov)
	return round1(score)
}

// TrueShooting computes TS% = PTS / (2 * (FGA + 0.44*FTA)), rounded to three
// decimals. ok is false when the denominator is zero.
func TrueShooting(pts, fga, fta int) (float64, bool) {
	denominator := 2 * (float64(fga) + 0.44*float64(fta))
	if denominator == 0 {
		return 0, false
	}
	return round3(float64(pts) / denominator), true
}

// EffectiveFGPct computes eFG% = (FG + 0.5*3PM) / FGA, rounded to three
// decimals. ok is false when FGA is zero.
func EffectiveFGPct(fg, fg3, fga int) (float64, bool) {
	if fga == 0 {
		return 0, false
	}
	return round3((float64(fg) + 0.5*float64(fg3)) / float64(fga)), true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

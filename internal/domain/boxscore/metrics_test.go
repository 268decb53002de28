package boxscore

import (
	"math"
	"testing"
)

func TestGameScore(t *testing.T) {
	s := StatLine{
		Pts: 25, Fg: 9, Fga: 18, Ft: 4, Fta: 5,
		Orb: 2, Drb: 6, Stl: 2, Ast: 5, Blk: 1,
		Pf: 2, Tov: 3,
	}
	if got := GameScore(s); got != 21.2 {
		t.Fatalf("GameScore = %v, want 21.2", got)
	}
}

func TestGameScore_ZeroLine(t *testing.T) {
	if got := GameScore(StatLine{}); got != 0 {
		t.Fatalf("GameScore(zero) = %v, want 0", got)
	}
}

func TestTrueShooting(t *testing.T) {
	ts, ok := TrueShooting(30, 20, 8)
	if !ok {
		t.Fatal("expected defined TS%")
	}
	if math.Abs(ts-0.638) > 0.0005 {
		t.Fatalf("TS%% = %v, want ~0.638", ts)
	}
}

func TestTrueShooting_UndefinedWithoutAttempts(t *testing.T) {
	if _, ok := TrueShooting(0, 0, 0); ok {
		t.Fatal("expected undefined TS% with no attempts")
	}
}

func TestEffectiveFGPct(t *testing.T) {
	efg, ok := EffectiveFGPct(10, 4, 20)
	if !ok {
		t.Fatal("expected defined eFG%")
	}
	if efg != 0.6 {
		t.Fatalf("eFG%% = %v, want 0.6", efg)
	}

	if _, ok := EffectiveFGPct(0, 0, 0); ok {
		t.Fatal("expected undefined eFG% with no attempts")
	}
}

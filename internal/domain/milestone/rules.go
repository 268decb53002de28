package milestone

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/courtline/milestones/internal/domain/boxscore"
)

// Policy controls how a rule family is evaluated.
type Policy int

const (
	// PolicyLadder tests rules top-down and stops at the first match: only
	// the highest tier met produces a finding, lower tiers are suppressed.
	PolicyLadder Policy = iota
	// PolicyAll tests every rule regardless of the others' outcomes; any
	// number may fire for the same player-game.
	PolicyAll
)

// Config stores the tunable thresholds of the rule taxonomy. The fixed ladder
// tables (70/60/50... points and so on) are part of the taxonomy itself and
// are not configurable.
type Config struct {
	DoubleThreshold         int     `validate:"gt=0"`
	NearThreshold           int     `validate:"gt=0,ltfield=DoubleThreshold"`
	FiveByFiveThreshold     int     `validate:"gt=0"`
	HotShootingPct          float64 `validate:"gt=0,lte=1"`
	HotShootingMinAttempts  int     `validate:"gt=0"`
	PerfectThreeMinAttempts int     `validate:"gt=0"`
	PerfectFTMinAttempts    int     `validate:"gt=0"`
	PerfectFGMinAttempts    int     `validate:"gt=0"`
	EfficientTSPct          float64 `validate:"gt=0,lte=1"`
	EfficientMinPoints      int     `validate:"gt=0"`
	HighGameScoreFloor      float64 `validate:"gt=0"`
	DefensiveMonsterTotal   int     `validate:"gt=0"`
	ZeroTurnoverMinMinutes  float64 `validate:"gt=0"`
}

// DefaultConfig returns the canonical thresholds.
func DefaultConfig() Config {
	return Config{
		DoubleThreshold:         10,
		NearThreshold:           8,
		FiveByFiveThreshold:     5,
		HotShootingPct:          0.60,
		HotShootingMinAttempts:  10,
		PerfectThreeMinAttempts: 4,
		PerfectFTMinAttempts:    5,
		PerfectFGMinAttempts:    5,
		EfficientTSPct:          0.65,
		EfficientMinPoints:      15,
		HighGameScoreFloor:      35,
		DefensiveMonsterTotal:   7,
		ZeroTurnoverMinMinutes:  20,
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Finding is one fired rule: the category to record under, the entry's
// milestone_type value, and the rendered detail text.
type Finding struct {
	Category Category
	Type     string
	Detail   string
}

type rule struct {
	category Category
	kind     string
	match    func(boxscore.StatLine) bool
	detail   func(boxscore.StatLine) string
}

type family struct {
	name   string
	policy Policy
	rules  []rule
}

// Engine evaluates the milestone rule taxonomy against canonical stat lines.
// It is stateless after construction and safe for concurrent use.
type Engine struct {
	cfg      Config
	families []family
}

// NewEngine builds an Engine for the given thresholds.
func NewEngine(cfg Config) (*Engine, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid milestone config: %w", err)
	}
	return &Engine{
		cfg:      cfg,
		families: buildFamilies(cfg),
	}, nil
}

// Evaluate runs every rule family against one stat line and returns the fired
// findings in family declaration order. It never fails: a stat line that
// meets nothing yields an empty slice.
func (e *Engine) Evaluate(s boxscore.StatLine) []Finding {
	var out []Finding
	for _, fam := range e.families {
		for _, r := range fam.rules {
			if !r.match(s) {
				continue
			}
			out = append(out, Finding{
				Category: r.category,
				Type:     r.kind,
				Detail:   r.detail(s),
			})
			if fam.policy == PolicyLadder {
				break
			}
		}
	}
	return out
}

// Config returns the thresholds the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

func buildFamilies(cfg Config) []family {
	return []family{
		multiCategoryFamily(cfg),
		scoringFamily(),
		reboundingFamily(),
		assistFamily(),
		stealFamily(),
		blockFamily(),
		threePointerFamily(),
		perfectThreeFamily(cfg),
		efficiencyFamily(cfg),
		combinedLadderFamily(),
		combinedFlagsFamily(),
		defenseFamily(cfg),
		plusMinusLadderFamily(),
		minusFamily(),
	}
}

// multiCategoryFamily holds the independent double/triple/quadruple checks.
// They deliberately nest: a quadruple-double is recorded as a triple-double
// and a double-double too, since 4 categories at the threshold implies 3 and
// 2. The near-miss checks are guarded inside their predicates so they never
// fire alongside the achievement they approximate.
func multiCategoryFamily(cfg Config) family {
	return family{
		name:   "multi_category",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryQuadrupleDoubles,
				kind:     "quadruple_double",
				match: func(s boxscore.StatLine) bool {
					return IsQuadrupleDouble(s, cfg.DoubleThreshold)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("Quadruple-double (%s)", DoubleDoubleCategories(s, cfg.DoubleThreshold))
				},
			},
			{
				category: CategoryTripleDoubles,
				kind:     "triple_double",
				match: func(s boxscore.StatLine) bool {
					return IsTripleDouble(s, cfg.DoubleThreshold)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("Triple-double (%s)", DoubleDoubleCategories(s, cfg.DoubleThreshold))
				},
			},
			{
				category: CategoryDoubleDoubles,
				kind:     "double_double",
				match: func(s boxscore.StatLine) bool {
					return IsDoubleDouble(s, cfg.DoubleThreshold)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("Double-double (%s)", DoubleDoubleCategories(s, cfg.DoubleThreshold))
				},
			},
			{
				category: CategoryNearTripleDoubles,
				kind:     "near_triple_double",
				match: func(s boxscore.StatLine) bool {
					return IsNearTripleDouble(s, cfg.DoubleThreshold, cfg.NearThreshold)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("Near triple-double (%d/%d/%d)", s.Pts, s.Trb, s.Ast)
				},
			},
			{
				category: CategoryNearDoubleDoubles,
				kind:     "near_double_double",
				match: func(s boxscore.StatLine) bool {
					return IsNearDoubleDouble(s, cfg.DoubleThreshold, cfg.NearThreshold)
				},
				detail: func(boxscore.StatLine) string {
					return "Near double-double"
				},
			},
			{
				category: CategoryFiveByFives,
				kind:     "five_by_five",
				match: func(s boxscore.StatLine) bool {
					return IsFiveByFive(s, cfg.FiveByFiveThreshold)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("5x5 (%d/%d/%d/%d/%d)", s.Pts, s.Trb, s.Ast, s.Stl, s.Blk)
				},
			},
			{
				category: CategoryAllAroundGames,
				kind:     "all_around_game",
				match:    IsAllAround,
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("All-around (%d/%d/%d/%d/%d)", s.Pts, s.Trb, s.Ast, s.Stl, s.Blk)
				},
			},
		},
	}
}

// statLadder builds a PolicyLadder family whose tiers share a detail format.
// Tiers must be given highest first.
func statLadder(name string, tiers []ladderTier, value func(boxscore.StatLine) int, noun string) family {
	rules := make([]rule, 0, len(tiers))
	for _, tier := range tiers {
		tier := tier
		rules = append(rules, rule{
			category: tier.category,
			kind:     tier.kind,
			match: func(s boxscore.StatLine) bool {
				return value(s) >= tier.min
			},
			detail: func(s boxscore.StatLine) string {
				return fmt.Sprintf("%d %s", value(s), noun)
			},
		})
	}
	return family{name: name, policy: PolicyLadder, rules: rules}
}

type ladderTier struct {
	min      int
	category Category
	kind     string
}

func scoringFamily() family {
	return statLadder("scoring", []ladderTier{
		{70, CategorySeventyPointGames, "seventy_point_game"},
		{60, CategorySixtyPointGames, "sixty_point_game"},
		{50, CategoryFiftyPointGames, "fifty_point_game"},
		{45, CategoryFortyFivePointGames, "forty_five_point_game"},
		{40, CategoryFortyPointGames, "forty_point_game"},
		{35, CategoryThirtyFivePointGames, "thirty_five_point_game"},
		{30, CategoryThirtyPointGames, "thirty_point_game"},
		{25, CategoryTwentyFivePointGames, "twenty_five_point_game"},
		{20, CategoryTwentyPointGames, "twenty_point_game"},
	}, func(s boxscore.StatLine) int { return s.Pts }, "points")
}

func reboundingFamily() family {
	return statLadder("rebounding", []ladderTier{
		{25, CategoryTwentyFiveReboundGames, "twenty_five_rebound_game"},
		{20, CategoryTwentyReboundGames, "twenty_rebound_game"},
		{18, CategoryEighteenReboundGames, "eighteen_rebound_game"},
		{15, CategoryFifteenReboundGames, "fifteen_rebound_game"},
		{12, CategoryTwelveReboundGames, "twelve_rebound_game"},
		{10, CategoryTenReboundGames, "ten_rebound_game"},
	}, func(s boxscore.StatLine) int { return s.Trb }, "rebounds")
}

func assistFamily() family {
	return statLadder("assists", []ladderTier{
		{20, CategoryTwentyAssistGames, "twenty_assist_game"},
		{15, CategoryFifteenAssistGames, "fifteen_assist_game"},
		{12, CategoryTwelveAssistGames, "twelve_assist_game"},
		{10, CategoryTenAssistGames, "ten_assist_game"},
	}, func(s boxscore.StatLine) int { return s.Ast }, "assists")
}

func stealFamily() family {
	return statLadder("steals", []ladderTier{
		{10, CategoryTenStealGames, "ten_steal_game"},
		{7, CategorySevenStealGames, "seven_steal_game"},
		{5, CategoryFiveStealGames, "five_steal_game"},
		{4, CategoryFourStealGames, "four_steal_game"},
	}, func(s boxscore.StatLine) int { return s.Stl }, "steals")
}

func blockFamily() family {
	return statLadder("blocks", []ladderTier{
		{10, CategoryTenBlockGames, "ten_block_game"},
		{7, CategorySevenBlockGames, "seven_block_game"},
		{5, CategoryFiveBlockGames, "five_block_game"},
		{4, CategoryFourBlockGames, "four_block_game"},
	}, func(s boxscore.StatLine) int { return s.Blk }, "blocks")
}

func threePointerFamily() family {
	return statLadder("three_pointers", []ladderTier{
		{10, CategoryTenThreeGames, "ten_three_game"},
		{8, CategoryEightThreeGames, "eight_three_game"},
		{7, CategorySevenThreeGames, "seven_three_game"},
		{6, CategorySixThreeGames, "six_three_game"},
		{5, CategoryFiveThreeGames, "five_three_game"},
	}, func(s boxscore.StatLine) int { return s.Fg3 }, "three-pointers")
}

// perfectThreeFamily is independent of the three-pointer volume ladder: a
// 5/5 night from deep lands in both five_three_games and perfect_from_three.
func perfectThreeFamily(cfg Config) family {
	return family{
		name:   "perfect_three",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryPerfectFromThree,
				kind:     "perfect_from_three",
				match: func(s boxscore.StatLine) bool {
					return IsPerfectFromThree(s, cfg.PerfectThreeMinAttempts)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d/%d from three (100%%)", s.Fg3, s.Fg3a)
				},
			},
		},
	}
}

func efficiencyFamily(cfg Config) family {
	return family{
		name:   "efficiency",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryHotShootingGames,
				kind:     "hot_shooting_game",
				match: func(s boxscore.StatLine) bool {
					return IsHotShooting(s, cfg.HotShootingPct, cfg.HotShootingMinAttempts)
				},
				detail: func(s boxscore.StatLine) string {
					pct := 0.0
					if s.Fga > 0 {
						pct = float64(s.Fg) / float64(s.Fga) * 100
					}
					return fmt.Sprintf("%d/%d FG (%.1f%%)", s.Fg, s.Fga, pct)
				},
			},
			{
				category: CategoryPerfectFTGames,
				kind:     "perfect_ft_game",
				match: func(s boxscore.StatLine) bool {
					return IsPerfectFT(s, cfg.PerfectFTMinAttempts)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d/%d FT (100%%)", s.Ft, s.Fta)
				},
			},
			{
				category: CategoryPerfectFGGames,
				kind:     "perfect_fg_game",
				match: func(s boxscore.StatLine) bool {
					return IsPerfectFG(s, cfg.PerfectFGMinAttempts)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d/%d FG (100%%)", s.Fg, s.Fga)
				},
			},
			{
				category: CategoryEfficientScoringGames,
				kind:     "efficient_scoring_game",
				match: func(s boxscore.StatLine) bool {
					return IsEfficientScoring(s, cfg.EfficientTSPct, cfg.EfficientMinPoints)
				},
				detail: func(s boxscore.StatLine) string {
					ts, _ := boxscore.TrueShooting(s.Pts, s.Fga, s.Fta)
					return fmt.Sprintf("%d points on %.1f%% TS", s.Pts, ts*100)
				},
			},
			{
				category: CategoryHighGameScore,
				kind:     "high_game_score",
				match: func(s boxscore.StatLine) bool {
					return boxscore.GameScore(s) >= cfg.HighGameScoreFloor
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("Game Score: %.1f", boxscore.GameScore(s))
				},
			},
		},
	}
}

func pointsWithTenBoardOrDime(s boxscore.StatLine, minPoints int) bool {
	return s.Pts >= minPoints && (s.Trb >= 10 || s.Ast >= 10)
}

func combinedDetail(s boxscore.StatLine) string {
	return fmt.Sprintf("%d pts, %d reb, %d ast", s.Pts, s.Trb, s.Ast)
}

// combinedLadderFamily is the exclusive 30-10 / 25-10 / 20-10 triad.
func combinedLadderFamily() family {
	return family{
		name:   "combined_ladder",
		policy: PolicyLadder,
		rules: []rule{
			{
				category: CategoryThirtyTenGames,
				kind:     "thirty_ten_game",
				match:    func(s boxscore.StatLine) bool { return pointsWithTenBoardOrDime(s, 30) },
				detail:   combinedDetail,
			},
			{
				category: CategoryTwentyFiveTenGames,
				kind:     "twenty_five_ten_game",
				match:    func(s boxscore.StatLine) bool { return pointsWithTenBoardOrDime(s, 25) },
				detail:   combinedDetail,
			},
			{
				category: CategoryTwentyTenGames,
				kind:     "twenty_ten_game",
				match:    func(s boxscore.StatLine) bool { return pointsWithTenBoardOrDime(s, 20) },
				detail:   combinedDetail,
			},
		},
	}
}

// combinedFlagsFamily holds the combined milestones evaluated unconditionally
// alongside the triad ladder.
func combinedFlagsFamily() family {
	return family{
		name:   "combined_flags",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryTwentyTenFiveGames,
				kind:     "twenty_ten_five_game",
				match: func(s boxscore.StatLine) bool {
					return s.Pts >= 20 && s.Trb >= 10 && s.Ast >= 5
				},
				detail: combinedDetail,
			},
			{
				category: CategoryTwentyTwentyGames,
				kind:     "twenty_twenty_game",
				match: func(s boxscore.StatLine) bool {
					return s.Pts >= 20 && s.Trb >= 20
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d points, %d rebounds", s.Pts, s.Trb)
				},
			},
			{
				category: CategoryPointsAssistsDoubleDouble,
				kind:     "points_assists_double_double",
				match: func(s boxscore.StatLine) bool {
					return s.Pts >= 10 && s.Ast >= 10 && s.Trb < 10
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d pts, %d ast", s.Pts, s.Ast)
				},
			},
		},
	}
}

func defenseFamily(cfg Config) family {
	return family{
		name:   "defense",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryDefensiveMonsterGames,
				kind:     "defensive_monster_game",
				match: func(s boxscore.StatLine) bool {
					return IsDefensiveMonster(s, cfg.DefensiveMonsterTotal)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("%d steals, %d blocks", s.Stl, s.Blk)
				},
			},
			{
				category: CategoryZeroTurnoverGames,
				kind:     "zero_turnover_game",
				match: func(s boxscore.StatLine) bool {
					return IsZeroTurnover(s, cfg.ZeroTurnoverMinMinutes)
				},
				detail: func(s boxscore.StatLine) string {
					return fmt.Sprintf("0 turnovers in %.0f minutes", s.Mp)
				},
			},
		},
	}
}

// plusMinusLadderFamily records only the highest positive tier met; the -25
// check is a separate family evaluated regardless.
func plusMinusLadderFamily() family {
	return family{
		name:   "plus_minus_ladder",
		policy: PolicyLadder,
		rules: []rule{
			{
				category: CategoryPlus25Games,
				kind:     "plus_25_game",
				match:    func(s boxscore.StatLine) bool { return s.PlusMinus >= 25 },
				detail:   func(s boxscore.StatLine) string { return fmt.Sprintf("+%d", s.PlusMinus) },
			},
			{
				category: CategoryPlus20Games,
				kind:     "plus_20_game",
				match:    func(s boxscore.StatLine) bool { return s.PlusMinus >= 20 },
				detail:   func(s boxscore.StatLine) string { return fmt.Sprintf("+%d", s.PlusMinus) },
			},
		},
	}
}

func minusFamily() family {
	return family{
		name:   "minus",
		policy: PolicyAll,
		rules: []rule{
			{
				category: CategoryMinus25Games,
				kind:     "minus_25_game",
				match:    func(s boxscore.StatLine) bool { return s.PlusMinus <= -25 },
				detail:   func(s boxscore.StatLine) string { return fmt.Sprintf("%d", s.PlusMinus) },
			},
		},
	}
}

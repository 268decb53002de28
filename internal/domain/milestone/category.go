package milestone

// Category is a result-set key. The set of categories is closed and the key
// strings are a stable contract with downstream consumers: report filters and
// season aggregation key on them, so renaming one is a breaking change.
type Category string

const (
	// Multi-category achievements.
	CategoryQuadrupleDoubles  Category = "quadruple_doubles"
	CategoryTripleDoubles     Category = "triple_doubles"
	CategoryDoubleDoubles     Category = "double_doubles"
	CategoryNearTripleDoubles Category = "near_triple_doubles"
	CategoryNearDoubleDoubles Category = "near_double_doubles"
	CategoryFiveByFives       Category = "five_by_fives"
	CategoryAllAroundGames    Category = "all_around_games"

	// Scoring.
	CategorySeventyPointGames    Category = "seventy_point_games"
	CategorySixtyPointGames      Category = "sixty_point_games"
	CategoryFiftyPointGames      Category = "fifty_point_games"
	CategoryFortyFivePointGames  Category = "forty_five_point_games"
	CategoryFortyPointGames      Category = "forty_point_games"
	CategoryThirtyFivePointGames Category = "thirty_five_point_games"
	CategoryThirtyPointGames     Category = "thirty_point_games"
	CategoryTwentyFivePointGames Category = "twenty_five_point_games"
	CategoryTwentyPointGames     Category = "twenty_point_games"

	// Rebounding.
	CategoryTwentyFiveReboundGames Category = "twenty_five_rebound_games"
	CategoryTwentyReboundGames     Category = "twenty_rebound_games"
	CategoryEighteenReboundGames   Category = "eighteen_rebound_games"
	CategoryFifteenReboundGames    Category = "fifteen_rebound_games"
	CategoryTwelveReboundGames     Category = "twelve_rebound_games"
	CategoryTenReboundGames        Category = "ten_rebound_games"

	// Assists.
	CategoryTwentyAssistGames  Category = "twenty_assist_games"
	CategoryFifteenAssistGames Category = "fifteen_assist_games"
	CategoryTwelveAssistGames  Category = "twelve_assist_games"
	CategoryTenAssistGames     Category = "ten_assist_games"

	// Steals.
	CategoryTenStealGames   Category = "ten_steal_games"
	CategorySevenStealGames Category = "seven_steal_games"
	CategoryFiveStealGames  Category = "five_steal_games"
	CategoryFourStealGames  Category = "four_steal_games"

	// Blocks.
	CategoryTenBlockGames   Category = "ten_block_games"
	CategorySevenBlockGames Category = "seven_block_games"
	CategoryFiveBlockGames  Category = "five_block_games"
	CategoryFourBlockGames  Category = "four_block_games"

	// Three-pointers.
	CategoryTenThreeGames    Category = "ten_three_games"
	CategoryEightThreeGames  Category = "eight_three_games"
	CategorySevenThreeGames  Category = "seven_three_games"
	CategorySixThreeGames    Category = "six_three_games"
	CategoryFiveThreeGames   Category = "five_three_games"
	CategoryPerfectFromThree Category = "perfect_from_three"

	// Efficiency.
	CategoryHotShootingGames      Category = "hot_shooting_games"
	CategoryPerfectFTGames        Category = "perfect_ft_games"
	CategoryPerfectFGGames        Category = "perfect_fg_games"
	CategoryEfficientScoringGames Category = "efficient_scoring_games"
	CategoryHighGameScore         Category = "high_game_score"

	// Combined.
	CategoryThirtyTenGames            Category = "thirty_ten_games"
	CategoryTwentyFiveTenGames        Category = "twenty_five_ten_games"
	CategoryTwentyTenGames            Category = "twenty_ten_games"
	CategoryTwentyTenFiveGames        Category = "twenty_ten_five_games"
	CategoryTwentyTwentyGames         Category = "twenty_twenty_games"
	CategoryPointsAssistsDoubleDouble Category = "points_assists_double_double"

	// Defense.
	CategoryDefensiveMonsterGames Category = "defensive_monster_games"

	// Clean games.
	CategoryZeroTurnoverGames Category = "zero_turnover_games"

	// Plus/minus.
	CategoryPlus25Games  Category = "plus_25_games"
	CategoryPlus20Games  Category = "plus_20_games"
	CategoryMinus25Games Category = "minus_25_games"
)

// Categories is the fixed enumeration order for every result surface: ToMap,
// Summary, and PlayerMilestones all walk categories in this order.
var Categories = []Category{
	CategoryQuadrupleDoubles,
	CategoryTripleDoubles,
	CategoryDoubleDoubles,
	CategoryNearTripleDoubles,
	CategoryNearDoubleDoubles,
	CategoryFiveByFives,
	CategoryAllAroundGames,
	CategorySeventyPointGames,
	CategorySixtyPointGames,
	CategoryFiftyPointGames,
	CategoryFortyFivePointGames,
	CategoryFortyPointGames,
	CategoryThirtyFivePointGames,
	CategoryThirtyPointGames,
	CategoryTwentyFivePointGames,
	CategoryTwentyPointGames,
	CategoryTwentyFiveReboundGames,
	CategoryTwentyReboundGames,
	CategoryEighteenReboundGames,
	CategoryFifteenReboundGames,
	CategoryTwelveReboundGames,
	CategoryTenReboundGames,
	CategoryTwentyAssistGames,
	CategoryFifteenAssistGames,
	CategoryTwelveAssistGames,
	CategoryTenAssistGames,
	CategoryTenStealGames,
	CategorySevenStealGames,
	CategoryFiveStealGames,
	CategoryFourStealGames,
	CategoryTenBlockGames,
	CategorySevenBlockGames,
	CategoryFiveBlockGames,
	CategoryFourBlockGames,
	CategoryTenThreeGames,
	CategoryEightThreeGames,
	CategorySevenThreeGames,
	CategorySixThreeGames,
	CategoryFiveThreeGames,
	CategoryPerfectFromThree,
	CategoryHotShootingGames,
	CategoryPerfectFTGames,
	CategoryPerfectFGGames,
	CategoryEfficientScoringGames,
	CategoryHighGameScore,
	CategoryThirtyTenGames,
	CategoryTwentyFiveTenGames,
	CategoryTwentyTenGames,
	CategoryTwentyTenFiveGames,
	CategoryTwentyTwentyGames,
	CategoryPointsAssistsDoubleDouble,
	CategoryDefensiveMonsterGames,
	CategoryZeroTurnoverGames,
	CategoryPlus25Games,
	CategoryPlus20Games,
	CategoryMinus25Games,
}

var descriptions = map[Category]string{
	CategoryQuadrupleDoubles:          "Quadruple-Double (10+ in 4 categories)",
	CategoryTripleDoubles:             "Triple-Double (10+ in 3 categories)",
	CategoryDoubleDoubles:             "Double-Double (10+ in 2 categories)",
	CategoryNearTripleDoubles:         "Near Triple-Double (2 at 10+, 1 at 8-9)",
	CategoryNearDoubleDoubles:         "Near Double-Double (1 at 10+, 1 at 8-9)",
	CategoryFiveByFives:               "5x5 Game (5+ in all 5 categories)",
	CategoryAllAroundGames:            "All-Around Game (5+ in 5 or 8+ in 4 categories)",
	CategorySeventyPointGames:         "70+ Point Games",
	CategorySixtyPointGames:           "60+ Point Games",
	CategoryFiftyPointGames:           "50+ Point Games",
	CategoryFortyFivePointGames:       "45+ Point Games",
	CategoryFortyPointGames:           "40+ Point Games",
	CategoryThirtyFivePointGames:      "35+ Point Games",
	CategoryThirtyPointGames:          "30+ Point Games",
	CategoryTwentyFivePointGames:      "25+ Point Games",
	CategoryTwentyPointGames:          "20+ Point Games",
	CategoryTwentyFiveReboundGames:    "25+ Rebound Games",
	CategoryTwentyReboundGames:        "20+ Rebound Games",
	CategoryEighteenReboundGames:      "18+ Rebound Games",
	CategoryFifteenReboundGames:       "15+ Rebound Games",
	CategoryTwelveReboundGames:        "12+ Rebound Games",
	CategoryTenReboundGames:           "10+ Rebound Games",
	CategoryTwentyAssistGames:         "20+ Assist Games",
	CategoryFifteenAssistGames:        "15+ Assist Games",
	CategoryTwelveAssistGames:         "12+ Assist Games",
	CategoryTenAssistGames:            "10+ Assist Games",
	CategoryTenStealGames:             "10+ Steal Games",
	CategorySevenStealGames:           "7+ Steal Games",
	CategoryFiveStealGames:            "5+ Steal Games",
	CategoryFourStealGames:            "4+ Steal Games",
	CategoryTenBlockGames:             "10+ Block Games",
	CategorySevenBlockGames:           "7+ Block Games",
	CategoryFiveBlockGames:            "5+ Block Games",
	CategoryFourBlockGames:            "4+ Block Games",
	CategoryTenThreeGames:             "10+ Three-Pointer Games",
	CategoryEightThreeGames:           "8+ Three-Pointer Games",
	CategorySevenThreeGames:           "7+ Three-Pointer Games",
	CategorySixThreeGames:             "6+ Three-Pointer Games",
	CategoryFiveThreeGames:            "5+ Three-Pointer Games",
	CategoryPerfectFromThree:          "Perfect from Three (4+ attempts)",
	CategoryHotShootingGames:          "Hot Shooting (60%+ FG, 10+ attempts)",
	CategoryPerfectFTGames:            "Perfect Free Throws (5+ attempts)",
	CategoryPerfectFGGames:            "Perfect from Field (5+ attempts)",
	CategoryEfficientScoringGames:     "Efficient Scoring (65%+ TS, 15+ pts)",
	CategoryHighGameScore:             "High Game Score (35+)",
	CategoryThirtyTenGames:            "30-10 Games (30+ pts, 10+ reb/ast)",
	CategoryTwentyFiveTenGames:        "25-10 Games (25+ pts, 10+ reb/ast)",
	CategoryTwentyTenGames:            "20-10 Games (20+ pts, 10+ reb/ast)",
	CategoryTwentyTenFiveGames:        "20-10-5 Games",
	CategoryTwentyTwentyGames:         "20-20 Games (20+ pts, 20+ reb)",
	CategoryPointsAssistsDoubleDouble: "Points-Assists Double-Double",
	CategoryDefensiveMonsterGames:     "Defensive Monster (7+ stl+blk)",
	CategoryZeroTurnoverGames:         "Zero Turnover Games (20+ min)",
	CategoryPlus25Games:               "+25 Plus/Minus Games",
	CategoryPlus20Games:               "+20 Plus/Minus Games",
	CategoryMinus25Games:              "-25 Plus/Minus Games",
}

// Describe returns the display description for a category, or the raw key for
// an unknown one.
func Describe(cat Category) string {
	if d, ok := descriptions[cat]; ok {
		return d
	}
	return string(cat)
}

// Known reports whether cat is part of the closed category set.
func Known(cat Category) bool {
	_, ok := descriptions[cat]
	return ok
}

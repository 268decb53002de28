package milestone

import (
	"testing"

	"github.com/courtline/milestones/internal/domain/boxscore"
)

func TestNewResults_ToMapHasEveryCategory(t *testing.T) {
	results := NewResults()

	out := results.ToMap()
	if len(out) != len(Categories) {
		t.Fatalf("map has %d keys, want %d", len(out), len(Categories))
	}
	for _, cat := range Categories {
		entries, ok := out[string(cat)]
		if !ok {
			t.Fatalf("missing category %s", cat)
		}
		if entries == nil {
			t.Fatalf("category %s is nil, want empty slice", cat)
		}
		if len(entries) != 0 {
			t.Fatalf("category %s is not empty", cat)
		}
	}
}

func TestResults_AppendAndCount(t *testing.T) {
	results := NewResults()

	entry := NewEntry(PlayerGame{Player: "Nikola Jokic", GameID: "202401150DEN"}, "triple_double", "Triple-double (pts/reb/ast)")
	results.Append(CategoryTripleDoubles, entry)
	results.Append(CategoryDoubleDoubles, entry)
	results.Append(Category("not_a_category"), entry)

	if got := results.Count(); got != 2 {
		t.Fatalf("count = %d, want 2 (unknown categories are dropped)", got)
	}

	summary := results.Summary()
	if len(summary) != len(Categories) {
		t.Fatalf("summary has %d keys, want %d", len(summary), len(Categories))
	}
	if summary["triple_doubles"] != 1 {
		t.Fatalf("summary[triple_doubles] = %d", summary["triple_doubles"])
	}
	if got, ok := summary["seventy_point_games"]; !ok || got != 0 {
		t.Fatalf("summary must carry empty categories at zero, got %d (present=%v)", got, ok)
	}
}

func TestResults_SummaryHasEveryCategoryWhenEmpty(t *testing.T) {
	summary := NewResults().Summary()
	if len(summary) != len(Categories) {
		t.Fatalf("summary has %d keys, want %d", len(summary), len(Categories))
	}
	for _, cat := range Categories {
		count, ok := summary[string(cat)]
		if !ok {
			t.Fatalf("missing category %s", cat)
		}
		if count != 0 {
			t.Fatalf("category %s = %d, want 0", cat, count)
		}
	}
}

func TestResults_ToMapIsASnapshot(t *testing.T) {
	results := NewResults()
	results.Append(CategoryTwentyPointGames, NewEntry(PlayerGame{Player: "A"}, "twenty_point_game", "20 points"))

	snapshot := results.ToMap()
	snapshot["twenty_point_games"][0].Player = "mutated"

	if got := results.Entries(CategoryTwentyPointGames)[0].Player; got != "A" {
		t.Fatalf("accumulator mutated through snapshot: %q", got)
	}
}

func TestNewEntry_DerivesDateFromGameID(t *testing.T) {
	entry := NewEntry(PlayerGame{GameID: "202401150LAL"}, "twenty_point_game", "20 points")
	if entry.DateYYYYMMDD != "20240115" {
		t.Fatalf("date_yyyymmdd = %q, want 20240115", entry.DateYYYYMMDD)
	}

	entry = NewEntry(PlayerGame{GameID: "202401150LAL", DateYYYYMMDD: "20240116"}, "twenty_point_game", "20 points")
	if entry.DateYYYYMMDD != "20240116" {
		t.Fatalf("explicit date must win, got %q", entry.DateYYYYMMDD)
	}

	entry = NewEntry(PlayerGame{GameID: "short"}, "twenty_point_game", "20 points")
	if entry.DateYYYYMMDD != "" {
		t.Fatalf("short game id must not derive a date, got %q", entry.DateYYYYMMDD)
	}
}

func TestResults_PlayerMilestonesIsCaseInsensitive(t *testing.T) {
	results := NewResults()
	stats := boxscore.StatLine{Pts: 30, Trb: 10, Ast: 11}
	results.Append(CategoryTripleDoubles, NewEntry(PlayerGame{Player: "LeBron James", Stats: stats}, "triple_double", "Triple-double (pts/reb/ast)"))
	results.Append(CategoryThirtyPointGames, NewEntry(PlayerGame{Player: "LeBron James", Stats: stats}, "thirty_point_game", "30 points"))
	results.Append(CategoryThirtyPointGames, NewEntry(PlayerGame{Player: "Anthony Davis", Stats: stats}, "thirty_point_game", "31 points"))

	entries := results.PlayerMilestones("LEBRON JAMES")
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	// Registry order: triple_doubles comes before thirty_point_games.
	if entries[0].MilestoneType != "triple_double" {
		t.Fatalf("first entry = %q, want triple_double", entries[0].MilestoneType)
	}

	if got := results.PlayerMilestones("Nobody"); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

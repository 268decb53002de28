package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/courtline/milestones/internal/domain/boxscore"
	"github.com/courtline/milestones/internal/domain/milestone"
	"github.com/courtline/milestones/internal/platform/logging"
)

func newTestMilestoneService(t *testing.T) *MilestoneService {
	t.Helper()
	engine, err := milestone.NewEngine(milestone.DefaultConfig())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	svc, err := NewMilestoneService(engine, logging.NewNop())
	if err != nil {
		t.Fatalf("new milestone service: %v", err)
	}
	return svc
}

func scorerRecord(name string, pts int) boxscore.PlayerRecord {
	return boxscore.PlayerRecord{"name": name, "pts": pts}
}

func twoSidedGame(id, awayTeam, homeTeam string, away, home []boxscore.PlayerRecord) boxscore.Game {
	return boxscore.Game{
		GameID: id,
		BasicInfo: boxscore.BasicInfo{
			Date:     "January 15, 2024",
			AwayTeam: awayTeam,
			HomeTeam: homeTeam,
		},
		BoxScore: boxscore.BoxScore{
			Away: boxscore.TeamBox{Players: away},
			Home: boxscore.TeamBox{Players: home},
		},
	}
}

func TestMilestoneService_ProcessGames_Ordering(t *testing.T) {
	svc := newTestMilestoneService(t)

	g1 := twoSidedGame("202401150LAL", "BOS", "LAL",
		[]boxscore.PlayerRecord{scorerRecord("A1", 21), scorerRecord("A2", 22)},
		[]boxscore.PlayerRecord{scorerRecord("H1", 23)},
	)
	g2 := twoSidedGame("202401160DEN", "MIN", "DEN",
		[]boxscore.PlayerRecord{scorerRecord("B1", 24)},
		[]boxscore.PlayerRecord{scorerRecord("K1", 20)},
	)

	results, err := svc.ProcessGames(context.Background(), []boxscore.Game{g1, g2})
	if err != nil {
		t.Fatalf("process games: %v", err)
	}

	entries := results.Entries(milestone.CategoryTwentyPointGames)
	want := []string{"A1", "A2", "H1", "B1", "K1"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Player != name {
			t.Fatalf("entry %d = %q, want %q", i, entries[i].Player, name)
		}
	}

	// Away roster carries away/home sides and team assignments.
	if entries[0].Side != "away" || entries[0].Team != "BOS" || entries[0].Opponent != "LAL" {
		t.Fatalf("unexpected away entry: %+v", entries[0])
	}
	if entries[2].Side != "home" || entries[2].Team != "LAL" || entries[2].Opponent != "BOS" {
		t.Fatalf("unexpected home entry: %+v", entries[2])
	}
	if entries[0].DateYYYYMMDD != "20240115" {
		t.Fatalf("date_yyyymmdd = %q", entries[0].DateYYYYMMDD)
	}
}

func TestMilestoneService_ProcessGame_BasicRosterFallback(t *testing.T) {
	svc := newTestMilestoneService(t)

	game := boxscore.Game{
		GameID:    "202401150LAL",
		BasicInfo: boxscore.BasicInfo{AwayTeam: "BOS", HomeTeam: "LAL"},
		BoxScore: boxscore.BoxScore{
			Away: boxscore.TeamBox{Basic: []boxscore.PlayerRecord{scorerRecord("Fallback Guy", 25)}},
		},
	}

	results := milestone.NewResults()
	if err := svc.ProcessGame(context.Background(), results, game); err != nil {
		t.Fatalf("process game: %v", err)
	}

	entries := results.Entries(milestone.CategoryTwentyFivePointGames)
	if len(entries) != 1 || entries[0].Player != "Fallback Guy" {
		t.Fatalf("expected basic roster fallback, got %+v", entries)
	}
}

func TestMilestoneService_ProcessGame_EmptyRostersAreSkipped(t *testing.T) {
	svc := newTestMilestoneService(t)

	results := milestone.NewResults()
	game := boxscore.Game{GameID: "202401150LAL"}
	if err := svc.ProcessGame(context.Background(), results, game); err != nil {
		t.Fatalf("process game: %v", err)
	}
	if results.Count() != 0 {
		t.Fatalf("expected no entries, got %d", results.Count())
	}
}

func TestMilestoneService_ProcessGames_MalformedGameDoesNotAbortBatch(t *testing.T) {
	svc := newTestMilestoneService(t)

	malformed := boxscore.Game{
		BoxScore: boxscore.BoxScore{
			Away: boxscore.TeamBox{Players: []boxscore.PlayerRecord{
				{"name": "No Id Guy", "pts": 30, "trb": 11, "ast": 12},
			}},
		},
	}
	valid := twoSidedGame("202401150LAL", "BOS", "LAL",
		[]boxscore.PlayerRecord{{"name": "Jayson Tatum", "pts": 30, "trb": 11, "ast": 12}},
		nil,
	)

	results, err := svc.ProcessGames(context.Background(), []boxscore.Game{malformed, valid})
	if err != nil {
		t.Fatalf("process games: %v", err)
	}

	entries := results.Entries(milestone.CategoryTripleDoubles)
	if len(entries) != 2 {
		t.Fatalf("triple doubles = %d, want 2 (malformed game must not abort the batch)", len(entries))
	}
	if entries[0].Player != "No Id Guy" || entries[0].GameID != "" || entries[0].DateYYYYMMDD != "" {
		t.Fatalf("unexpected entry from id-less game: %+v", entries[0])
	}
	if entries[1].Player != "Jayson Tatum" {
		t.Fatalf("subsequent game was not processed: %+v", entries[1])
	}
}

func TestMilestoneService_ProcessGame_NilResults(t *testing.T) {
	svc := newTestMilestoneService(t)

	err := svc.ProcessGame(context.Background(), nil, boxscore.Game{GameID: "202401150LAL"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMilestoneService_ProcessGame_DateAlwaysDerivedFromGameID(t *testing.T) {
	svc := newTestMilestoneService(t)

	game := twoSidedGame("202401150LAL", "BOS", "LAL",
		[]boxscore.PlayerRecord{scorerRecord("A1", 21)}, nil)
	// A conflicting document value must not override the game-id derivation.
	game.BasicInfo.DateYYYYMMDD = "19990101"

	results := milestone.NewResults()
	if err := svc.ProcessGame(context.Background(), results, game); err != nil {
		t.Fatalf("process game: %v", err)
	}

	entries := results.Entries(milestone.CategoryTwentyPointGames)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].DateYYYYMMDD != "20240115" {
		t.Fatalf("date_yyyymmdd = %q, want 20240115", entries[0].DateYYYYMMDD)
	}
}

func TestMilestoneService_PlayerMilestones(t *testing.T) {
	svc := newTestMilestoneService(t)

	game := twoSidedGame("202401150LAL", "BOS", "LAL",
		[]boxscore.PlayerRecord{scorerRecord("Jayson Tatum", 41)},
		nil,
	)
	results, err := svc.ProcessGames(context.Background(), []boxscore.Game{game})
	if err != nil {
		t.Fatalf("process games: %v", err)
	}

	entries, err := svc.PlayerMilestones(context.Background(), results, "jayson tatum")
	if err != nil {
		t.Fatalf("player milestones: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected entries for Jayson Tatum")
	}

	if _, err := svc.PlayerMilestones(context.Background(), results, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.PlayerMilestones(context.Background(), nil, "anyone"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil results, got %v", err)
	}
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/courtline/milestones/internal/domain/boxscore"
	"github.com/courtline/milestones/internal/domain/milestone"
	"github.com/courtline/milestones/internal/platform/logging"
)

// MilestoneService classifies parsed box scores into milestone results.
type MilestoneService struct {
	engine *milestone.Engine
	logger *logging.Logger
}

func NewMilestoneService(engine *milestone.Engine, logger *logging.Logger) (*MilestoneService, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: milestone engine is required", ErrDependencyUnavailable)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MilestoneService{
		engine: engine,
		logger: logger,
	}, nil
}

// ProcessGames classifies a batch of games into a fresh result set. Games are
// walked in input order, the away roster before the home roster within each
// game, players in roster order; results therefore have a deterministic
// insertion order for identical input.
func (s *MilestoneService) ProcessGames(ctx context.Context, games []boxscore.Game) (*milestone.Results, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MilestoneService.ProcessGames")
	defer span.End()

	results := milestone.NewResults()
	for _, game := range games {
		if err := s.ProcessGame(ctx, results, game); err != nil {
			return nil, err
		}
	}

	s.logger.InfoContext(ctx, "classified games",
		"games", len(games),
		"milestones", results.Count(),
	)
	return results, nil
}

// ProcessGame classifies one game into an existing result set. A malformed
// game degrades (empty game id, missing rosters) but never aborts the batch.
func (s *MilestoneService) ProcessGame(ctx context.Context, results *milestone.Results, game boxscore.Game) error {
	if results == nil {
		return fmt.Errorf("%w: result set is required", ErrInvalidInput)
	}
	if strings.TrimSpace(game.GameID) == "" {
		s.logger.DebugContext(ctx, "game without id", "date", game.Date())
	}

	s.processTeam(ctx, results, game, "away")
	s.processTeam(ctx, results, game, "home")
	return nil
}

func (s *MilestoneService) processTeam(ctx context.Context, results *milestone.Results, game boxscore.Game, side string) {
	var box boxscore.TeamBox
	var team, opponent string
	if side == "away" {
		box = game.BoxScore.Away
		team = game.BasicInfo.AwayTeam
		opponent = game.BasicInfo.HomeTeam
	} else {
		box = game.BoxScore.Home
		team = game.BasicInfo.HomeTeam
		opponent = game.BasicInfo.AwayTeam
	}

	roster := box.Roster()
	if len(roster) == 0 {
		s.logger.DebugContext(ctx, "empty roster",
			"game_id", game.GameID,
			"side", side,
		)
		return
	}

	for _, record := range roster {
		stats := boxscore.Normalize(record)
		findings := s.engine.Evaluate(stats)
		if len(findings) == 0 {
			continue
		}

		// DateYYYYMMDD stays empty here: entries always derive it from the
		// game id, even when basic_info carries a conflicting value.
		playerGame := milestone.PlayerGame{
			Player:   record.Name(),
			PlayerID: record.PlayerID(),
			Team:     team,
			Opponent: opponent,
			GameID:   game.GameID,
			Date:     game.Date(),
			Side:     side,
			Stats:    stats,
		}
		for _, finding := range findings {
			results.Append(finding.Category, milestone.NewEntry(playerGame, finding.Type, finding.Detail))
		}
	}
}

// PlayerMilestones returns every recorded milestone for one player by name,
// matched case-insensitively.
func (s *MilestoneService) PlayerMilestones(ctx context.Context, results *milestone.Results, name string) ([]milestone.Entry, error) {
	_, span := startUsecaseSpan(ctx, "usecase.MilestoneService.PlayerMilestones")
	defer span.End()

	if results == nil {
		return nil, fmt.Errorf("%w: result set is required", ErrInvalidInput)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	return results.PlayerMilestones(name), nil
}

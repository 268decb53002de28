package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtline/milestones/internal/domain/boxscore"
	"github.com/courtline/milestones/internal/domain/milestone"
	"github.com/courtline/milestones/internal/infrastructure/gamefile"
	"github.com/courtline/milestones/internal/interfaces/report"
	"github.com/courtline/milestones/internal/usecase"
)

var playerInputs []string

var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show one player's milestones across the given inputs",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func init() {
	playerCmd.Flags().StringSliceVarP(&playerInputs, "input", "i", nil, "box score file or directory (repeatable)")
	_ = playerCmd.MarkFlagRequired("input")
}

func runPlayer(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	name := args[0]

	paths, err := gamefile.Discover(playerInputs)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no JSON input files found")
	}

	engine, err := milestone.NewEngine(milestone.DefaultConfig())
	if err != nil {
		return err
	}
	classifier, err := usecase.NewMilestoneService(engine, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	loader := gamefile.NewLoader()

	var games []boxscore.Game
	for _, path := range paths {
		loaded, err := loader.LoadGames(ctx, path)
		if err != nil {
			return err
		}
		games = append(games, loaded...)
	}

	results, err := classifier.ProcessGames(ctx, games)
	if err != nil {
		return err
	}

	entries, err := classifier.PlayerMilestones(ctx, results, name)
	if err != nil {
		return err
	}

	report.PrintPlayerTable(os.Stdout, name, entries)
	return nil
}

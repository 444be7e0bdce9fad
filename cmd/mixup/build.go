package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openmohaa/mixup/internal/config"
	"github.com/openmohaa/mixup/internal/models"
	"github.com/openmohaa/mixup/internal/presenter"
	"github.com/openmohaa/mixup/internal/roster"
)

var (
	openSkipsNonmain bool
	buildFormat      string
	buildVerbose     bool
)

var buildCmd = &cobra.Command{
	Use:   "build <roster>",
	Short: "Build balanced teams from a roster file",
	Long: `Build reads a TAB-separated roster (skill, nickname, main class and an
optional comma-separated list of additional classes per line) and prints the
balanced teams. Use "-" to read the roster from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().BoolVar(&openSkipsNonmain, "open-skips-nonmain", false, "do not seat open players on classes they did not list")
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "text", "output format: text or json")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "log optimizer progress to stderr")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if buildFormat != "text" && buildFormat != "json" {
		return fmt.Errorf("unknown format %q", buildFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := zap.NewNop()
	if buildVerbose {
		if logger, err = newLogger(cfg); err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
	}

	rules := roster.Rules{OpenSkipsNonmain: openSkipsNonmain}
	var players []models.PlayerInfo
	if args[0] == "-" {
		players, err = rules.Parse(cmd.InOrStdin())
	} else {
		players, err = rules.ParseFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}

	view, err := newService(cfg, logger, nil).CreateBuild(cmd.Context(), players)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if buildFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}
	return presenter.NewText(out).Render(view)
}

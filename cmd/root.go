package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wistia-clean/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "wistia-clean",
	Short: "Remove Wistia projects and medias no study bundle uses",
	Long: `wistia-clean compares the study bundles in MongoDB with the projects and
medias on Wistia and offers to delete what is orphaned:

  - projects that belong to DELETED bundles
  - medias inside the project of an ACTIVE bundle that the bundle no longer uses

Nothing is deleted without confirmation.

Examples:
  # Report and ask before deleting
  wistia-clean --wistia-api-password <password>

  # Read the password from a settings file (wistia.apiPassword)
  wistia-clean --mongo-uri mongodb://db/studybundles --settings-path settings.json

  # Report only
  wistia-clean --settings-path settings.json --dry-run

  # Non-interactive
  wistia-clean --settings-path settings.json --yes`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runClean,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// The configured logger may not exist yet.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

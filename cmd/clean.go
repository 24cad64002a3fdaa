package cmd

import (
	"context"
	"fmt"
	"os"

	"wistia-clean/core/bundles"
	"wistia-clean/core/config"
	"wistia-clean/core/database"
	"wistia-clean/core/logger"
	"wistia-clean/core/wistia"
	"wistia-clean/feature/cleanup"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cleanFlags holds the command line overrides for a cleanup run.
type cleanFlags struct {
	mongoURI          string
	wistiaAPIPassword string
	settingsPath      string
	dedupeProjects    bool
	concurrency       int
	dryRun            bool
	yes               bool
}

var flags cleanFlags

func init() {
	f := RootCmd.Flags()
	f.StringVar(&flags.mongoURI, "mongo-uri", "", "MongoDB connection string (default mongodb://localhost/studybundles)")
	f.StringVar(&flags.wistiaAPIPassword, "wistia-api-password", "", "Wistia API password")
	f.StringVar(&flags.settingsPath, "settings-path", "", "JSON settings file holding wistia.apiPassword (takes precedence over --wistia-api-password)")
	f.BoolVar(&flags.dedupeProjects, "dedupe-projects", false, "Delete a project once even if several deleted bundles point at it")
	f.IntVar(&flags.concurrency, "concurrency", 0, "Maximum concurrent Wistia requests (default 5)")
	f.BoolVar(&flags.dryRun, "dry-run", false, "Print what would be deleted and stop")
	f.BoolVar(&flags.yes, "yes", false, "Auto-confirm deletions (non-interactive)")
}

// resolveConfig loads the environment configuration and applies the flags.
func resolveConfig(cmd *cobra.Command, fl cleanFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if fl.mongoURI != "" {
		cfg.Mongo.URI = fl.mongoURI
	}
	if fl.wistiaAPIPassword != "" {
		cfg.Wistia.APIPassword = fl.wistiaAPIPassword
	}
	if fl.settingsPath != "" {
		if err := cfg.ApplySettingsFile(fl.settingsPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("dedupe-projects") {
		cfg.Reconcile.DedupeProjects = fl.dedupeProjects
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Reconcile.Concurrency = fl.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runClean(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()
	l, _ = logger.WithRunID(l)

	l.Info("Starting wistia cleanup", zap.Bool("dry_run", flags.dryRun))

	// Connect to database
	db, err := database.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			l.Warn("Failed to disconnect from database", zap.Error(err))
		}
	}()

	client, err := wistia.NewClient(cfg.Wistia)
	if err != nil {
		return err
	}

	svc := cleanup.NewService(
		bundles.NewMongoStore(db.Collection(cfg.Mongo.Collection)),
		client,
		cleanup.TablePresenter{},
		cleanup.NewPromptConfirmer(flags.yes),
		os.Stdout,
		cfg.Reconcile,
		l,
	)

	if _, err := svc.Run(ctx, cleanup.RunOptions{DryRun: flags.dryRun}); err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	return nil
}

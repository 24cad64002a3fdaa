package cleanup

import (
	"context"
	"fmt"
	"io"

	"wistia-clean/core/bundles"
	"wistia-clean/core/reconcile"
	"wistia-clean/core/wistia"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Presenter renders the proposed deletions for a human.
type Presenter interface {
	Render(projects []wistia.Project, medias []wistia.Media) string
}

// Confirmer asks whether the proposed deletions should go ahead.
type Confirmer interface {
	Confirm(ctx context.Context) (bool, error)
}

// RunOptions tweak a single run.
type RunOptions struct {
	// DryRun stops after presenting the summary.
	DryRun bool
}

// Service orchestrates a cleanup run.
type Service struct {
	store     bundles.Store
	client    wistia.Client
	presenter Presenter
	confirmer Confirmer
	out       io.Writer
	cfg       reconcile.Config
	logger    *zap.Logger
}

// NewService creates a new cleanup service. The summary is written to out.
func NewService(store bundles.Store, client wistia.Client, presenter Presenter, confirmer Confirmer, out io.Writer, cfg reconcile.Config, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		presenter: presenter,
		confirmer: confirmer,
		out:       out,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run performs one cleanup. The returned Result is never nil; on error its
// State is StateFailed.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	res := &Result{}

	linked, catalog, err := s.load(ctx, res)
	if err != nil {
		return s.fail(res, err)
	}

	s.enter(res, StateReconciling)
	plan := reconcile.BuildPlan(linked, catalog, s.cfg, s.logger)
	res.Plan = plan

	sum := plan.Summary
	s.logger.Info("Reconciliation report",
		zap.Int("active_bundles", sum.ActiveBundles),
		zap.Int("deleted_bundles", sum.DeletedBundles),
		zap.Int("catalog_projects", sum.CatalogProjects),
		zap.Int("catalog_medias", sum.CatalogMedias),
		zap.Int("missing_projects", sum.MissingProjects),
		zap.Int("orphaned_projects", sum.OrphanedProjects),
		zap.Int("orphaned_medias", sum.OrphanedMedias),
	)

	if plan.Empty() {
		s.logger.Info("Nothing to do")
		return s.done(res), nil
	}

	s.enter(res, StatePresenting)
	if _, err := fmt.Fprintln(s.out, s.presenter.Render(plan.Projects, plan.Medias)); err != nil {
		return s.fail(res, fmt.Errorf("failed to print summary: %w", err))
	}

	if opts.DryRun {
		s.logger.Info("Dry-run mode: No changes were made.")
		return s.done(res), nil
	}

	s.enter(res, StateAwaitingConfirmation)
	confirmed, err := s.confirmer.Confirm(ctx)
	if err != nil {
		return s.fail(res, fmt.Errorf("%w: %w", ErrConfirmation, err))
	}
	if !confirmed {
		s.logger.Warn("Operation cancelled by user. No changes were made.")
		return s.done(res), nil
	}
	res.Confirmed = true

	s.enter(res, StateDeleting)
	applied, err := reconcile.ApplyPlan(ctx, s.client, plan, s.cfg, reconcile.ApplyOptions{Confirmed: true}, s.logger)
	res.ProjectsDeleted = applied.ProjectsDeleted
	res.MediasDeleted = applied.MediasDeleted
	if err != nil {
		return s.fail(res, fmt.Errorf("%w: %w", ErrUpstream, err))
	}

	s.logger.Info("Successfully deleted orphans",
		zap.Int("projects", res.ProjectsDeleted),
		zap.Int("medias", res.MediasDeleted),
	)
	return s.done(res), nil
}

// load fetches the bundles and the Wistia catalog concurrently. A failure on
// one side does not cancel the other; both run to completion.
func (s *Service) load(ctx context.Context, res *Result) ([]bundles.Bundle, []wistia.Project, error) {
	var (
		linked  []bundles.Bundle
		catalog []wistia.Project
	)

	s.enter(res, StateLoadingLocal)
	s.enter(res, StateLoadingRemote)

	var g errgroup.Group

	g.Go(func() error {
		var err error
		linked, err = s.store.FindLinkedBundles(ctx)
		if err != nil {
			return fmt.Errorf("%w: failed to load bundles: %w", ErrUpstream, err)
		}
		s.logger.Info("Loaded bundles", zap.Int("count", len(linked)))
		return nil
	})

	g.Go(func() error {
		var err error
		catalog, err = reconcile.LoadCatalog(ctx, s.client, s.cfg, s.logger)
		if err != nil {
			return fmt.Errorf("%w: failed to load wistia catalog: %w", ErrUpstream, err)
		}
		s.logger.Info("Loaded wistia catalog", zap.Int("projects", len(catalog)))
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return linked, catalog, nil
}

func (s *Service) enter(res *Result, state State) {
	res.State = state
	res.Trace = append(res.Trace, state)
	s.logger.Debug("Entering state", zap.String("state", string(state)))
}

func (s *Service) done(res *Result) *Result {
	s.enter(res, StateDone)
	return res
}

func (s *Service) fail(res *Result, err error) (*Result, error) {
	s.logger.Debug("Run failed", zap.String("from_state", string(res.State)), zap.Error(err))
	s.enter(res, StateFailed)
	return res, err
}

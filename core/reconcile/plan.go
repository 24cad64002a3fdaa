package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"wistia-clean/core/bundles"
	"wistia-clean/core/parallel"
	"wistia-clean/core/wistia"

	"go.uber.org/zap"
)

// BuildPlan computes both orphan sets from the linked bundles and the loaded
// catalog. It is pure apart from debug logging; the same input always yields
// the same plan.
func BuildPlan(linked []bundles.Bundle, catalog []wistia.Project, cfg Config, log *zap.Logger) *Plan {
	active, deleted := bundles.Partition(linked)

	projects, missingDeleted := orphanedProjects(deleted, catalog, log)
	if cfg.DedupeProjects {
		projects = DedupeProjects(projects)
	}
	medias, missingActive := orphanedMedias(active, catalog, log)

	catalogMedias := 0
	for _, p := range catalog {
		catalogMedias += len(p.Medias)
	}

	return &Plan{
		Projects: projects,
		Medias:   medias,
		Summary: PlanSummary{
			ActiveBundles:    len(active),
			DeletedBundles:   len(deleted),
			CatalogProjects:  len(catalog),
			CatalogMedias:    catalogMedias,
			MissingProjects:  missingDeleted + missingActive,
			OrphanedProjects: len(projects),
			OrphanedMedias:   len(medias),
		},
	}
}

// ApplyPlan deletes the planned projects and then the planned medias.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
//
// The media pass runs even when the project pass failed; the errors of both
// passes are joined. Each pass stops starting new deletions after its own
// first failure.
func ApplyPlan(ctx context.Context, client wistia.Client, plan *Plan, cfg Config, opts ApplyOptions, log *zap.Logger) (ApplyResult, error) {
	var result ApplyResult

	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return result, nil
	}

	var projectsErr, mediasErr error
	result.ProjectsDeleted, projectsErr = DeleteProjects(ctx, client, plan.Projects, cfg.Concurrency, log)
	result.MediasDeleted, mediasErr = DeleteMedias(ctx, client, plan.Medias, cfg.Concurrency, log)

	return result, errors.Join(projectsErr, mediasErr)
}

// DeleteProjects deletes projects by hashed id with bounded concurrency and
// returns how many deletions succeeded.
func DeleteProjects(ctx context.Context, client wistia.Client, projects []wistia.Project, concurrency int, log *zap.Logger) (int, error) {
	return deleteAll(ctx, "project", projects, concurrency, log,
		func(p wistia.Project) (int64, string) { return p.ID, p.HashedID },
		client.DeleteProject)
}

// DeleteMedias deletes medias by hashed id with bounded concurrency and
// returns how many deletions succeeded.
func DeleteMedias(ctx context.Context, client wistia.Client, medias []wistia.Media, concurrency int, log *zap.Logger) (int, error) {
	return deleteAll(ctx, "media", medias, concurrency, log,
		func(m wistia.Media) (int64, string) { return m.ID, m.HashedID },
		client.DeleteMedia)
}

// deleteAll runs del for the hashed id of every item. kind names the item in
// logs and errors ("project", "media").
func deleteAll[T any](ctx context.Context, kind string, items []T, concurrency int, log *zap.Logger,
	handle func(T) (int64, string), del func(ctx context.Context, hashedID string) error) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var deleted atomic.Int64
	err := parallel.EachLimit(ctx, items, concurrency,
		func(item T) string {
			_, hashed := handle(item)
			return kind + " " + hashed
		},
		func(ctx context.Context, item T) error {
			id, hashed := handle(item)
			log.Debug("Deleting "+kind, zap.Int64(kind+"_id", id), zap.String("hashed_id", hashed))
			if err := del(ctx, hashed); err != nil {
				return fmt.Errorf("failed to delete %s: %w", kind, err)
			}
			deleted.Add(1)
			return nil
		})

	n := int(deleted.Load())
	if err != nil {
		log.Error("Deletion stopped", zap.String("kind", kind), zap.Int("deleted", n), zap.Int("planned", len(items)), zap.Error(err))
		return n, fmt.Errorf("failed to delete %ss: %w", kind, err)
	}

	log.Info("Deleted "+kind+"s", zap.Int("count", n))
	return n, nil
}

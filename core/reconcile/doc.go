// Package reconcile finds Wistia content that no study bundle uses any more
// and deletes it.
//
// # Architecture
//
// The package consists of three parts:
//
//  1. Catalog: LoadCatalog drains the project listing page by page, then lists
//     the medias of every project with bounded concurrency and attaches them
//     to their project.
//
//  2. Engine: pure functions computing two orphan sets from the bundles and
//     the catalog.
//     - OrphanedProjects: projects still on Wistia whose bundle was deleted.
//     - OrphanedMedias: medias inside the project of a live bundle that none of
//     the bundle's videos point at.
//     Bundles whose project is missing from the catalog are skipped and logged
//     at debug level. Matching is by exact numeric id.
//
//  3. Apply: ApplyPlan deletes orphaned projects, then orphaned medias, each
//     pass with bounded concurrency and fail-fast behaviour.
//
// # Usage Example
//
//	catalog, err := reconcile.LoadCatalog(ctx, client, cfg.Reconcile, log)
//	plan := reconcile.BuildPlan(linkedBundles, catalog, cfg.Reconcile, log)
//	if plan.Empty() {
//	    return nil
//	}
//	res, err := reconcile.ApplyPlan(ctx, client, plan, cfg.Reconcile,
//	    reconcile.ApplyOptions{Confirmed: true}, log)
package reconcile

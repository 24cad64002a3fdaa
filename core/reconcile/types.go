package reconcile

import "wistia-clean/core/wistia"

// Config controls how the remote catalog is fetched and how deletions run.
type Config struct {
	// Concurrency caps in-flight media listings and deletions.
	Concurrency int `mapstructure:"concurrency" default:"5"`
	// PageSize is the number of entries requested per listing page.
	PageSize int `mapstructure:"page_size" default:"100"`
	// DedupeProjects drops repeated orphaned projects when several deleted
	// bundles point at the same project. Off by default: every deleted bundle
	// contributes its project.
	DedupeProjects bool `mapstructure:"dedupe_projects" default:"false"`
}

// Plan holds the orphan sets computed for one run.
type Plan struct {
	// Projects are Wistia projects owned by deleted bundles.
	Projects []wistia.Project `json:"projects"`

	// Medias are Wistia medias in projects of live bundles that the bundle no longer references.
	Medias []wistia.Media `json:"medias"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// Empty reports whether there is nothing to delete.
func (p *Plan) Empty() bool {
	return len(p.Projects) == 0 && len(p.Medias) == 0
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// ActiveBundles counts live bundles linked to a project.
	ActiveBundles int `json:"active_bundles"`

	// DeletedBundles counts deleted bundles linked to a project.
	DeletedBundles int `json:"deleted_bundles"`

	// CatalogProjects is the number of projects found on Wistia.
	CatalogProjects int `json:"catalog_projects"`

	// CatalogMedias is the number of medias found across all projects.
	CatalogMedias int `json:"catalog_medias"`

	// MissingProjects counts bundles whose project is not on Wistia.
	MissingProjects int `json:"missing_projects"`

	// OrphanedProjects counts planned project deletions.
	OrphanedProjects int `json:"orphaned_projects"`

	// OrphanedMedias counts planned media deletions.
	OrphanedMedias int `json:"orphaned_medias"`
}

// ApplyOptions guards plan execution.
type ApplyOptions struct {
	// DryRun prevents execution of any deletion if true.
	DryRun bool

	// Confirmed indicates the user has confirmed the deletions.
	// If false, nothing is deleted regardless of DryRun.
	Confirmed bool
}

// ApplyResult counts what was actually deleted.
type ApplyResult struct {
	ProjectsDeleted int `json:"projects_deleted"`
	MediasDeleted   int `json:"medias_deleted"`
}

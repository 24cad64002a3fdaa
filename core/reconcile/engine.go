package reconcile

import (
	"wistia-clean/core/bundles"
	"wistia-clean/core/wistia"

	"go.uber.org/zap"
)

// OrphanedProjects returns the catalog projects referenced by deleted bundles,
// in bundle order. A project referenced by two deleted bundles appears twice.
// Bundles whose project is not in the catalog are skipped.
func OrphanedProjects(deleted []bundles.Bundle, catalog []wistia.Project, log *zap.Logger) []wistia.Project {
	orphans, _ := orphanedProjects(deleted, catalog, log)
	return orphans
}

// OrphanedMedias returns, for every live bundle, the medias of its project
// that none of the bundle's videos reference. Order follows the bundles and
// then the project's media listing.
func OrphanedMedias(active []bundles.Bundle, catalog []wistia.Project, log *zap.Logger) []wistia.Media {
	orphans, _ := orphanedMedias(active, catalog, log)
	return orphans
}

// DedupeProjects removes repeated projects by id, keeping the first occurrence.
func DedupeProjects(projects []wistia.Project) []wistia.Project {
	seen := make(map[int64]struct{}, len(projects))
	out := make([]wistia.Project, 0, len(projects))
	for _, p := range projects {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}

func orphanedProjects(deleted []bundles.Bundle, catalog []wistia.Project, log *zap.Logger) ([]wistia.Project, int) {
	log.Debug("Finding project orphans in deleted bundles", zap.Int("bundles", len(deleted)))

	orphans := make([]wistia.Project, 0)
	missing := 0

	for _, b := range deleted {
		project, ok := lookupProject(b, catalog, log)
		if !ok {
			if _, linked := b.ProjectID(); linked {
				missing++
			}
			continue
		}
		orphans = append(orphans, project)
	}

	return orphans, missing
}

func orphanedMedias(active []bundles.Bundle, catalog []wistia.Project, log *zap.Logger) ([]wistia.Media, int) {
	log.Debug("Finding media orphans in active bundles", zap.Int("bundles", len(active)))

	orphans := make([]wistia.Media, 0)
	missing := 0

	for _, b := range active {
		project, ok := lookupProject(b, catalog, log)
		if !ok {
			if _, linked := b.ProjectID(); linked {
				missing++
			}
			continue
		}

		for _, m := range project.Medias {
			if !b.ContainsMedia(m.ID) {
				orphans = append(orphans, m)
			}
		}
	}

	return orphans, missing
}

// lookupProject finds the bundle's project with a linear scan of the catalog.
func lookupProject(b bundles.Bundle, catalog []wistia.Project, log *zap.Logger) (wistia.Project, bool) {
	projectID, linked := b.ProjectID()
	if !linked {
		return wistia.Project{}, false
	}

	for _, p := range catalog {
		if p.ID == projectID {
			return p, true
		}
	}

	log.Debug("Project not found for bundle",
		zap.Int64("project_id", projectID),
		zap.String("bundle_id", b.Key()),
	)
	return wistia.Project{}, false
}

package reconcile

import (
	"context"
	"fmt"

	"wistia-clean/core/paginate"
	"wistia-clean/core/parallel"
	"wistia-clean/core/wistia"

	"go.uber.org/zap"
)

// LoadCatalog lists every Wistia project and then, with at most
// cfg.Concurrency listings in flight, every media of every project. The
// returned projects carry their medias.
func LoadCatalog(ctx context.Context, client wistia.Client, cfg Config, log *zap.Logger) ([]wistia.Project, error) {
	projects, err := FetchProjects(ctx, client, cfg.PageSize, log)
	if err != nil {
		return nil, err
	}

	catalog, err := parallel.MapLimit(ctx, projects, cfg.Concurrency, projectKey,
		func(ctx context.Context, p wistia.Project) (wistia.Project, error) {
			medias, err := FetchMedias(ctx, client, p, cfg.PageSize, log)
			if err != nil {
				return p, err
			}
			p.Medias = medias
			return p, nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project medias: %w", err)
	}

	return catalog, nil
}

// FetchProjects drains the project listing.
func FetchProjects(ctx context.Context, client wistia.Client, perPage int, log *zap.Logger) ([]wistia.Project, error) {
	return paginate.FetchAll(ctx, "projects", perPage,
		func(ctx context.Context, page, perPage int) ([]wistia.Project, error) {
			log.Debug("Getting projects page", zap.Int("page", page))

			projects, err := client.ListProjects(ctx, page, perPage)
			if err != nil {
				return nil, err
			}

			log.Debug("Found projects", zap.Int("page", page), zap.Int("count", len(projects)))
			return projects, nil
		})
}

// FetchMedias drains the media listing of one project. Medias whose payload
// lacks the project summary get it filled in from p.
func FetchMedias(ctx context.Context, client wistia.Client, p wistia.Project, perPage int, log *zap.Logger) ([]wistia.Media, error) {
	label := fmt.Sprintf("medias for project %d", p.ID)

	medias, err := paginate.FetchAll(ctx, label, perPage,
		func(ctx context.Context, page, perPage int) ([]wistia.Media, error) {
			log.Debug("Getting medias page", zap.Int64("project_id", p.ID), zap.Int("page", page))

			medias, err := client.ListMedias(ctx, p.ID, page, perPage)
			if err != nil {
				return nil, err
			}

			log.Debug("Found medias", zap.Int64("project_id", p.ID), zap.Int("page", page), zap.Int("count", len(medias)))
			return medias, nil
		})
	if err != nil {
		return nil, err
	}

	for i := range medias {
		if medias[i].Project.ID == 0 {
			medias[i].Project = wistia.ProjectRef{ID: p.ID, Name: p.Name, HashedID: p.HashedID}
		}
	}

	return medias, nil
}

func projectKey(p wistia.Project) string {
	return fmt.Sprintf("project %d", p.ID)
}

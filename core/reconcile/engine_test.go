package reconcile

import (
	"testing"

	"wistia-clean/core/bundles"
	"wistia-clean/core/wistia"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOrphanedProjects(t *testing.T) {
	a, b, c := project(1), project(2), project(3)
	log := zap.NewNop()

	t.Run("AllFound", func(t *testing.T) {
		deleted := []bundles.Bundle{bundle(1, true), bundle(2, true)}

		got := OrphanedProjects(deleted, []wistia.Project{a, b, c}, log)
		assert.Equal(t, []wistia.Project{a, b}, got)
	})

	t.Run("MissingProjectSkipped", func(t *testing.T) {
		deleted := []bundles.Bundle{bundle(1, true), bundle(2, true)}

		got := OrphanedProjects(deleted, []wistia.Project{a, c}, log)
		assert.Equal(t, []wistia.Project{a}, got)
	})

	t.Run("OrderFollowsBundles", func(t *testing.T) {
		deleted := []bundles.Bundle{bundle(3, true), bundle(1, true)}

		got := OrphanedProjects(deleted, []wistia.Project{a, b, c}, log)
		assert.Equal(t, []wistia.Project{c, a}, got)
	})

	t.Run("DuplicatesKept", func(t *testing.T) {
		deleted := []bundles.Bundle{bundle(1, true), bundle(1, true)}

		got := OrphanedProjects(deleted, []wistia.Project{a, b}, log)
		assert.Equal(t, []wistia.Project{a, a}, got)
	})

	t.Run("UnlinkedBundleExcluded", func(t *testing.T) {
		deleted := []bundles.Bundle{unlinkedBundle(true)}

		got := OrphanedProjects(deleted, []wistia.Project{a}, log)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestOrphanedProjects_LogsMissingProject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	deleted := []bundles.Bundle{bundle(9, true)}

	got := OrphanedProjects(deleted, []wistia.Project{project(1)}, zap.New(core))
	assert.Empty(t, got)

	entries := logs.FilterMessage("Project not found for bundle").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(9), entries[0].ContextMap()["project_id"])
	assert.Equal(t, deleted[0].Key(), entries[0].ContextMap()["bundle_id"])
}

func TestOrphanedMedias(t *testing.T) {
	i1, i2, i3 := media(11, 1), media(12, 1), media(13, 1)
	a := project(1, i1, i2, i3)
	log := zap.NewNop()

	t.Run("UnreferencedMedias", func(t *testing.T) {
		active := []bundles.Bundle{bundle(1, false, 11)}

		got := OrphanedMedias(active, []wistia.Project{a}, log)
		assert.Equal(t, []wistia.Media{i2, i3}, got)
	})

	t.Run("AllReferenced", func(t *testing.T) {
		active := []bundles.Bundle{bundle(1, false, 11, 12, 13)}

		got := OrphanedMedias(active, []wistia.Project{a}, log)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("EmptyProject", func(t *testing.T) {
		active := []bundles.Bundle{bundle(2, false)}

		got := OrphanedMedias(active, []wistia.Project{a, project(2)}, log)
		assert.Empty(t, got)
	})

	t.Run("MissingProjectSkipped", func(t *testing.T) {
		active := []bundles.Bundle{bundle(5, false), bundle(1, false, 12)}

		got := OrphanedMedias(active, []wistia.Project{a}, log)
		assert.Equal(t, []wistia.Media{i1, i3}, got)
	})

	t.Run("UnlinkedBundleExcluded", func(t *testing.T) {
		got := OrphanedMedias([]bundles.Bundle{unlinkedBundle(false)}, []wistia.Project{a}, log)
		assert.Empty(t, got)
	})

	t.Run("OrderFollowsBundlesThenMedias", func(t *testing.T) {
		j1, j2 := media(21, 2), media(22, 2)
		b := project(2, j1, j2)
		active := []bundles.Bundle{bundle(2, false), bundle(1, false, 12)}

		got := OrphanedMedias(active, []wistia.Project{a, b}, log)
		assert.Equal(t, []wistia.Media{j1, j2, i1, i3}, got)
	})

	t.Run("ReferenceFromOtherBundleDoesNotCount", func(t *testing.T) {
		// Each bundle is compared only against its own videos.
		active := []bundles.Bundle{bundle(1, false, 11), bundle(2, false, 12)}

		got := OrphanedMedias(active, []wistia.Project{a, project(2)}, log)
		assert.Equal(t, []wistia.Media{i2, i3}, got)
	})
}

func TestDedupeProjects(t *testing.T) {
	a, b := project(1), project(2)

	got := DedupeProjects([]wistia.Project{a, b, a, b, a})
	assert.Equal(t, []wistia.Project{a, b}, got)

	assert.Empty(t, DedupeProjects(nil))
}

func TestBuildPlan(t *testing.T) {
	i1, i2 := media(11, 1), media(12, 1)
	catalog := []wistia.Project{project(1, i1, i2), project(2), project(3)}

	linked := []bundles.Bundle{
		bundle(1, false, 11),
		bundle(2, true),
		bundle(2, true),
		bundle(4, true),
		bundle(5, false),
	}

	t.Run("KeepsDuplicates", func(t *testing.T) {
		plan := BuildPlan(linked, catalog, Config{}, zap.NewNop())

		assert.Equal(t, []wistia.Project{catalog[1], catalog[1]}, plan.Projects)
		assert.Equal(t, []wistia.Media{i2}, plan.Medias)
		assert.False(t, plan.Empty())
		assert.Equal(t, PlanSummary{
			ActiveBundles:    2,
			DeletedBundles:   3,
			CatalogProjects:  3,
			CatalogMedias:    2,
			MissingProjects:  2,
			OrphanedProjects: 2,
			OrphanedMedias:   1,
		}, plan.Summary)
	})

	t.Run("Dedupe", func(t *testing.T) {
		plan := BuildPlan(linked, catalog, Config{DedupeProjects: true}, zap.NewNop())

		assert.Equal(t, []wistia.Project{catalog[1]}, plan.Projects)
		assert.Equal(t, 1, plan.Summary.OrphanedProjects)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := BuildPlan(linked, catalog, Config{}, zap.NewNop())
		second := BuildPlan(linked, catalog, Config{}, zap.NewNop())

		assert.Equal(t, first, second)
	})

	t.Run("Empty", func(t *testing.T) {
		plan := BuildPlan([]bundles.Bundle{bundle(1, false, 11, 12)}, catalog, Config{}, zap.NewNop())
		assert.True(t, plan.Empty())
	})
}

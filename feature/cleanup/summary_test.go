package cleanup

import (
	"strings"
	"testing"

	"wistia-clean/core/wistia"

	"github.com/stretchr/testify/assert"
)

func TestTablePresenter_Render(t *testing.T) {
	projects := []wistia.Project{
		{ID: 1, Name: "Old Course", Medias: []wistia.Media{{ID: 5}, {ID: 6}}},
	}
	medias := []wistia.Media{
		{ID: 11, Name: "Intro take 2", Project: wistia.ProjectRef{ID: 2, Name: "Live Course"}},
	}

	t.Run("BothSections", func(t *testing.T) {
		out := TablePresenter{}.Render(projects, medias)

		assert.True(t, strings.HasPrefix(out, projectsHeading))
		assert.Contains(t, out, "Old Course")
		assert.Contains(t, out, mediasHeading)
		assert.Contains(t, out, "Intro take 2")
		assert.Contains(t, out, "Live Course")
		assert.Less(t, strings.Index(out, projectsHeading), strings.Index(out, mediasHeading))

		projectLine := lineContaining(out, "Old Course")
		assert.Contains(t, projectLine, "1")
		assert.Contains(t, projectLine, "2")
	})

	t.Run("OnlyMedias", func(t *testing.T) {
		out := TablePresenter{}.Render(nil, medias)

		assert.NotContains(t, out, projectsHeading)
		assert.True(t, strings.HasPrefix(out, mediasHeading))
	})

	t.Run("OnlyProjects", func(t *testing.T) {
		out := TablePresenter{}.Render(projects, nil)

		assert.Contains(t, out, projectsHeading)
		assert.NotContains(t, out, mediasHeading)
	})

	t.Run("Nothing", func(t *testing.T) {
		assert.Empty(t, TablePresenter{}.Render(nil, nil))
	})
}

func lineContaining(s, sub string) string {
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, sub) {
			return line
		}
	}
	return ""
}

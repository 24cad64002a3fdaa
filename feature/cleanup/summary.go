package cleanup

import (
	"strconv"
	"strings"

	"wistia-clean/core/wistia"

	"github.com/olekukonko/tablewriter"
)

const (
	projectsHeading = "Wistia PROJECTS attached to DELETED bundles to be REMOVED:"
	mediasHeading   = "Wistia MEDIA NOT attached to ACTIVE bundles to be REMOVED:"
)

// TablePresenter renders the orphan sets as borderless tables.
type TablePresenter struct{}

// Render lists the projects, then the medias. Empty sections are left out.
func (TablePresenter) Render(projects []wistia.Project, medias []wistia.Media) string {
	var sections []string

	if len(projects) > 0 {
		rows := make([][]string, 0, len(projects))
		for _, p := range projects {
			rows = append(rows, []string{id(p.ID), p.Name, strconv.Itoa(len(p.Medias))})
		}
		sections = append(sections, projectsHeading+"\n"+renderTable([]string{"ID", "Name", "Medias"}, rows))
	}

	if len(medias) > 0 {
		rows := make([][]string, 0, len(medias))
		for _, m := range medias {
			rows = append(rows, []string{id(m.ID), m.Name, id(m.Project.ID), m.Project.Name})
		}
		sections = append(sections, mediasHeading+"\n"+renderTable([]string{"ID", "Name", "Project ID", "Project Name"}, rows))
	}

	return strings.Join(sections, "\n")
}

func renderTable(headers []string, rows [][]string) string {
	var b strings.Builder

	table := tablewriter.NewWriter(&b)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	table.AppendBulk(rows)
	table.Render()

	return b.String()
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

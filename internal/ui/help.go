package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type helpSection struct {
	title string
	rows  [][]string
}

func getHelpSections(keys KeyMap) []helpSection {
	return []helpSection{
		{
			title: "NAVIGATION",
			rows: [][]string{
				{keys.Up.Help().Key, keys.Up.Help().Desc},
				{keys.Left.Help().Key, keys.Left.Help().Desc},
				{keys.Right.Help().Key, keys.Right.Help().Desc},
				{keys.Home.Help().Key, keys.Home.Help().Desc},
				{keys.End.Help().Key, keys.End.Help().Desc},
				{keys.PageUp.Help().Key, keys.PageUp.Help().Desc},
				{keys.PageDown.Help().Key, keys.PageDown.Help().Desc},
				{keys.Back.Help().Key, keys.Back.Help().Desc},
			},
		},
		{
			title: "STORIES",
			rows: [][]string{
				{keys.Enter.Help().Key, keys.Enter.Help().Desc},
				{keys.NextFeed.Help().Key, keys.NextFeed.Help().Desc},
				{keys.PrevFeed.Help().Key, keys.PrevFeed.Help().Desc},
				{keys.ToggleFavorite.Help().Key, keys.ToggleFavorite.Help().Desc},
				{keys.OpenUrl.Help().Key, keys.OpenUrl.Help().Desc},
				{keys.OpenHnPage.Help().Key, keys.OpenHnPage.Help().Desc},
				{keys.CopyUrl.Help().Key, keys.CopyUrl.Help().Desc},
				{keys.Refresh.Help().Key, keys.Refresh.Help().Desc},
			},
		},
		{
			title: "COMMENTS",
			rows: [][]string{
				{keys.ExpandSubtree.Help().Key, keys.ExpandSubtree.Help().Desc},
				{keys.CollapseSubtree.Help().Key, keys.CollapseSubtree.Help().Desc},
				{keys.ExpandAll.Help().Key, keys.ExpandAll.Help().Desc},
				{keys.CollapseAll.Help().Key, keys.CollapseAll.Help().Desc},
			},
		},
		{
			title: "GENERAL",
			rows: [][]string{
				{keys.Theme.Help().Key, keys.Theme.Help().Desc},
				{keys.Debug.Help().Key, keys.Debug.Help().Desc},
				{keys.Help.Help().Key, keys.Help.Help().Desc},
				{keys.Quit.Help().Key, keys.Quit.Help().Desc},
			},
		},
	}
}

func renderHelpOverlay(keys KeyMap, width, height int) string {
	sections := getHelpSections(keys)

	leftCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[0]),
		"",
		renderHelpSectionTable(sections[1]),
	)
	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		renderHelpSectionTable(sections[2]),
		"",
		renderHelpSectionTable(sections[3]),
	)

	columns := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, "    ", rightCol)

	title := styleHelpTitle().Render("✦ HNTUI HELP ✦")
	dividerWidth := lipgloss.Width(columns)
	if dividerWidth < 40 {
		dividerWidth = 40
	}
	divider := lipgloss.NewStyle().Foreground(styleHelpTitle().GetForeground()).Render(strings.Repeat("─", dividerWidth))
	footer := styleHelpFooter().Render("Press ? or Esc to close")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		divider,
		"",
		columns,
		"",
		footer,
	)

	styled := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(content)

	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		styled,
		lipgloss.WithWhitespaceChars(" "),
	)
}

func renderHelpSectionTable(section helpSection) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return styleHelpKey().Width(14)
			}
			return styleHelpDesc()
		}).
		Rows(section.rows...)

	header := styleHelpTitle().Render(section.title)
	underline := styleHelpFooter().Render(strings.Repeat("─", len(section.title)))
	tableStr := strings.TrimPrefix(t.String(), "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		underline,
		tableStr,
	)
}

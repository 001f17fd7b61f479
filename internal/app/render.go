package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dodorz/tuikit/internal/config"
	"github.com/dodorz/tuikit/internal/envinfo"
	"github.com/dodorz/tuikit/internal/theme"
)

// View renders the demo application.
func (m *App) View() tea.View {
	var view tea.View

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	if !config.HideMediaBar {
		b.WriteString("\n")
		b.WriteString(m.Player.StatusLine(m.contentWidth()))
	}
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	content := b.String()
	if overlay := m.renderOverlay(); overlay != "" {
		content = lipgloss.Place(max(m.Width, 1), max(m.Height, 1),
			lipgloss.Center, lipgloss.Center, overlay)
	}
	view.SetContent(content)

	view.AltScreen = true
	// AllMotion so drags report every cell the pointer crosses, not
	// just button transitions.
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

func (m *App) contentWidth() int {
	if m.Width > 0 {
		return m.Width
	}
	return m.List.Width()
}

func (m *App) renderTitle() string {
	title := "tuikit demo"
	if m.Reorder.Dragging() {
		s := m.Reorder.Session()
		title = fmt.Sprintf("tuikit demo  [dragging %d -> %d]",
			s.InitialPosition()+1, s.CurrentPosition()+1)
	}
	return theme.BadgeStyle().Bold(true).Render(title)
}

func (m *App) renderList() string {
	if preview, ok := m.Reorder.CurrentPreview(); ok {
		return m.List.ViewWithPreview(preview)
	}
	return m.List.View()
}

func (m *App) renderStatusBar() string {
	left := "q quit · e env · L logs · ? help"
	if !m.Reorder.Enabled {
		left = "reorder off · " + left
	}

	var right string
	if len(m.Notifications) > 0 {
		latest := m.Notifications[len(m.Notifications)-1]
		right = theme.NotificationStyle(latest.Type).
			Border(lipgloss.Border{}).
			Padding(0).
			Render(latest.Message)
	}

	width := m.contentWidth()
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return theme.StatusBarStyle().Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m *App) renderOverlay() string {
	switch {
	case m.ShowEnv:
		return m.renderEnvOverlay()
	case m.ShowLogs:
		return m.renderLogsOverlay()
	case m.ShowHelp:
		return m.renderHelpOverlay()
	}
	return ""
}

func (m *App) renderEnvOverlay() string {
	var b strings.Builder
	b.WriteString(theme.BadgeStyle().Bold(true).Render("Environment"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("host %s\n", envinfo.Hostname()))
	if stats, err := envinfo.ProcessStats(); err == nil {
		b.WriteString(fmt.Sprintf("pid %d · cpu %.1f%% · rss %s · threads %d\n",
			stats.PID, stats.CPUPercent, envinfo.FormatBytes(stats.MemoryRSS), stats.NumThreads))
	}
	b.WriteString(fmt.Sprintf("color profile: %s\n\n", envinfo.TerminalProfile()))

	vars := envinfo.WithPrefix("TERM")
	if len(vars) == 0 {
		b.WriteString("(no TERM* variables set)")
	}
	for _, v := range vars {
		b.WriteString(fmt.Sprintf("%s=%s\n", v.Key, v.Value))
	}
	b.WriteString("\n")
	b.WriteString(theme.PlaceholderStyle().Render("press e to close"))
	return theme.OverlayStyle().Render(b.String())
}

func (m *App) renderLogsOverlay() string {
	var b strings.Builder
	b.WriteString(theme.BadgeStyle().Bold(true).Render("Logs"))
	b.WriteString("\n\n")

	perPage := max(m.Height-8, 4)
	logs := m.LogMessages
	start := m.LogScrollOffset
	if start > len(logs) {
		start = len(logs)
	}
	end := min(start+perPage, len(logs))
	if len(logs) == 0 {
		b.WriteString(theme.PlaceholderStyle().Render("(empty)"))
	}
	for _, entry := range logs[start:end] {
		style := theme.RowStyle()
		switch entry.Level {
		case "WARN":
			style = style.Foreground(theme.Warn())
		case "ERROR":
			style = style.Foreground(theme.Error())
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %-5s %s",
			entry.Time.Format("15:04:05"), entry.Level, entry.Message)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.PlaceholderStyle().Render("j/k scroll · L close"))
	return theme.OverlayStyle().Render(b.String())
}

func (m *App) renderHelpOverlay() string {
	rows := []string{
		"drag a row      reorder the list",
		"wheel / j / k   scroll",
		"space           play/pause",
		"R               toggle repeat",
		"r               toggle reorder",
		"e               environment overlay",
		"L               log overlay",
		"esc             cancel drag / close overlay",
		"q / ctrl+c      quit",
	}
	var b strings.Builder
	if art := HeaderArt(); art != "" {
		b.WriteString(art)
		b.WriteString("\n")
	}
	b.WriteString(theme.BadgeStyle().Bold(true).Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(rows, "\n"))
	return theme.OverlayStyle().Render(b.String())
}

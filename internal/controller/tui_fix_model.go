package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fixModel handles the TUI display during batch remediation.
type fixModel struct {
	width       int
	height      int
	progressBar progress.Model
	total       int
	completed   int
	currentPath string
	currentIdx  int
	outcomes    []outcomeMsg
	report      reportMsg
	finished    bool
	rendered    bool
}

func newFixModel(total int) fixModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return fixModel{
		progressBar: prog,
		total:       total,
	}
}

func (m fixModel) Init() tea.Cmd {
	return nil
}

func (m fixModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case progressMsg:
		m = m.handleProgress(msg)

	case outcomeMsg:
		m = m.handleOutcome(msg)

	case reportMsg:
		m.report = msg
		m.finished = true
		m.rendered = true

	case quitMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m fixModel) handleWindowSize(msg tea.WindowSizeMsg) fixModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = m.width - 8
	if m.progressBar.Width < 20 {
		m.progressBar.Width = 20
	}

	return m
}

func (m fixModel) handleProgress(msg progressMsg) fixModel {
	m.currentPath = msg.path
	m.currentIdx = msg.index

	if msg.total > 0 {
		m.total = msg.total
	}

	m.rendered = true

	return m
}

func (m fixModel) handleOutcome(msg outcomeMsg) fixModel {
	m.completed++
	m.outcomes = append(m.outcomes, msg)
	m.rendered = true

	return m
}

func (m fixModel) View() string {
	if !m.rendered {
		return "Preparing fixes…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m fixModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	// 1. Title
	title := titleStyle.Render("🔧 Redress Batch Fix")

	// 2. Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	// 3. Progress bar
	percent := 0.0
	if m.total > 0 {
		percent = float64(m.completed) / float64(m.total)
	}

	progressStyle := lipgloss.NewStyle().Padding(0, 2)
	progressView := progressStyle.Render(m.progressBar.ViewAs(percent))

	// 4. Current file
	fileStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14")).
		Padding(1, 0, 0, 2)

	current := ""
	if m.currentPath != "" {
		current = fileStyle.Render(fmt.Sprintf("[%d/%d] %s", m.currentIdx, m.total, m.currentPath))
	}

	// 5. Recent outcomes
	outcomesBox := m.renderOutcomes(m.recentOutcomeCount())

	// 6. Footer
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		current,
		outcomesBox,
		footer,
	)
}

func (m fixModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	// 1. Title
	title := titleStyle.Render("🔧 Redress Fix Results")

	// 2. Summary
	summary := summaryStyle.Render(fmt.Sprintf(
		"Kept: %s  •  Reverted: %s  •  Failed: %s  •  Skipped: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.report.kept)),
		accentStyle.Render(fmt.Sprintf("%d", m.report.reverted)),
		accentStyle.Render(fmt.Sprintf("%d", m.report.failed)),
		accentStyle.Render(fmt.Sprintf("%d", m.report.skipped)),
	))

	// 3. Outcome list
	outcomesBox := m.renderOutcomes(len(m.outcomes))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		outcomesBox,
	)
}

func (m fixModel) recentOutcomeCount() int {
	// Screen height minus title, summary, bar, current file and footer.
	count := m.height - 10
	if count < 3 {
		count = 3
	}

	return count
}

func (m fixModel) renderOutcomes(limit int) string {
	if len(m.outcomes) == 0 {
		return ""
	}

	outcomes := m.outcomes
	if len(outcomes) > limit {
		outcomes = outcomes[len(outcomes)-limit:]
	}

	lines := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		lines = append(lines, renderOutcomeLine(outcome, m.width))
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(1, 1, 1, 0).
		Padding(0, 1)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderOutcomeLine(outcome outcomeMsg, width int) string {
	statusColorMap := map[string]lipgloss.Color{
		"kept":     lipgloss.Color("2"), // Green
		"reverted": lipgloss.Color("1"), // Red
		"failed":   lipgloss.Color("1"), // Red
		"skipped":  lipgloss.Color("8"), // Gray
	}

	statusColor, ok := statusColorMap[outcome.outcome]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	statusStyle := lipgloss.NewStyle().
		Foreground(statusColor).
		Bold(true).
		Width(10).
		Align(lipgloss.Left)

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	pathWidth := width - 16
	if pathWidth < 10 {
		pathWidth = 10
	}

	line := fmt.Sprintf("%s  %s",
		statusStyle.Render(outcome.outcome),
		pathStyle.Render(clipLine(outcome.path, pathWidth)),
	)

	detail := strings.TrimSpace(outcome.detail)
	if detail == "" {
		return line
	}

	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	if i := strings.IndexByte(detail, '\n'); i >= 0 {
		detail = detail[:i]
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		detailStyle.Render("            "+clipLine(detail, pathWidth)),
	)
}

func clipLine(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

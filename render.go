package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/degrees/internal/convert"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	// App name in header
	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true)

	// Direction badges in header
	activeDirStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveDirStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	dirSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	// Status bar text
	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.
			Foreground(colorError)

	// Footer bar
	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorOverlay2)

	// Panes
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	// Converter pane pieces
	inputLabelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	resultStyle     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errTextStyle    = lipgloss.NewStyle().Foreground(colorError)

	// History pane pieces
	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	emptyStyle  = lipgloss.NewStyle().Foreground(colorOverlay0).Italic(true)

	confirmStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
)

// directionColor picks the accent for the active conversion direction.
func directionColor(dir convert.Direction) lipgloss.Color {
	if dir == convert.CelsiusToFahrenheit {
		return colorWarm
	}
	return colorCool
}

// unitLabels returns the source and target unit suffixes for dir.
func unitLabels(dir convert.Direction) (string, string) {
	if dir == convert.CelsiusToFahrenheit {
		return "°C", "°F"
	}
	return "°F", "°C"
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	header := m.renderHeader()
	converter := m.renderConverterPane()
	historyPane := m.renderHistoryPane()
	body := header + "\n\n" + converter + "\n" + historyPane

	statusLine := m.renderStatus()
	footer := m.renderFooter(m.keys.ShortHelp())
	return m.placeWithFooter(body, statusLine, footer)
}

func (m model) renderHeader() string {
	name := headerAppStyle.Render(appName)

	var badges []string
	for _, dir := range []convert.Direction{convert.FahrenheitToCelsius, convert.CelsiusToFahrenheit} {
		label := dir.Label()
		if dir == m.direction {
			badges = append(badges, activeDirStyle.Foreground(directionColor(dir)).Render(label))
		} else {
			badges = append(badges, inactiveDirStyle.Render(label))
		}
	}
	badgeBar := dirSepStyle.Render(" ") + strings.Join(badges, dirSepStyle.Render("│"))

	content := name + "  " + badgeBar
	if m.width <= 0 {
		return headerBarStyle.Render(content)
	}
	return headerBarStyle.Width(m.width).Render(content)
}

func (m model) renderConverterPane() string {
	from, to := unitLabels(m.direction)

	var b strings.Builder
	b.WriteString(inputLabelStyle.Render("Temperature in "+from) + "\n")
	b.WriteString(m.input.View() + " " + dimStyle.Render(from) + "\n\n")

	switch m.state {
	case stateSuccess:
		b.WriteString(resultStyle.Render(fmt.Sprintf("= %.2f %s", m.result, to)))
	case stateError:
		b.WriteString(errTextStyle.Render(m.errText))
	default:
		b.WriteString(statusStyle.Render(fmt.Sprintf("Press enter to convert to %s.", to)))
	}

	return m.renderSection("Convert", b.String())
}

func (m model) renderHistoryPane() string {
	var content string
	switch {
	case m.confirmClear:
		content = confirmStyle.Render("Clear all history? (y/n)")
	case m.store.IsEmpty():
		content = emptyStyle.Render("No conversions yet.")
	default:
		content = m.historyList.View()
	}
	title := fmt.Sprintf("History (%d/%d)", m.store.Len(), m.store.Capacity())
	return m.renderSection(title, content)
}

// ---------------------------------------------------------------------------
// Chrome rendering
// ---------------------------------------------------------------------------

func (m model) sectionWidth() int {
	if m.width <= 0 {
		return 60
	}
	return min(m.width-2, 72)
}

func (m model) sectionContentWidth() int {
	// Border + padding of paneStyle eat four columns.
	return m.sectionWidth() - 4
}

// historyPaneWidth is the width handed to the bubbles list model.
func (m model) historyPaneWidth() int {
	return m.sectionContentWidth()
}

func (m model) renderSection(title, content string) string {
	contentWidth := m.sectionContentWidth()
	header := padRight(titleStyle.Render(title), contentWidth)
	sepStyle := lipgloss.NewStyle().Foreground(colorSurface2)
	separator := sepStyle.Render(strings.Repeat("─", contentWidth))
	sectionContent := header + "\n" + separator + "\n" + content
	section := paneStyle.Width(m.sectionWidth()).Render(sectionContent)
	if m.width == 0 {
		return section
	}
	return lipgloss.Place(m.width, lipgloss.Height(section), lipgloss.Center, lipgloss.Top, section)
}

func (m model) renderFooter(bindings []key.Binding) string {
	// Build help text where every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if m.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(m.width).Render(content)
}

func (m model) renderStatus() string {
	flat := strings.ReplaceAll(m.status, "\n", " ")
	style := statusBarStyle
	if m.statusErr {
		style = statusErrStyle
	}
	if m.width == 0 {
		return style.Render(flat)
	}
	return style.Width(m.width).Render(flat)
}

func (m model) placeWithFooter(body, statusLine, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Ensure every line is full-width to prevent ghosting from previous frames
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	main = strings.Join(lines, "\n")
	return main + "\n" + statusLine + "\n" + footer
}

// ---------------------------------------------------------------------------
// String helpers
// ---------------------------------------------------------------------------

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

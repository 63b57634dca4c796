package browse

import (
	"fmt"
	"strings"

	"github.com/lakshaymaurya-felt/fastclean/internal/core"
	"github.com/lakshaymaurya-felt/fastclean/internal/ui"
)

const nameWidth = 22

// ─── Top-level view ──────────────────────────────────────────────────────────

func (m Model) renderView() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n\n")
	s.WriteString(m.renderBody())
	s.WriteString("\n\n")
	s.WriteString(m.renderFooter())
	s.WriteString("\n")
	return s.String()
}

// ─── Header ──────────────────────────────────────────────────────────────────

func (m Model) renderHeader() string {
	title := m.theme.Header.Bold(true).Render("  " + ui.IconBlock + " Xcode caches")
	total := m.theme.Muted.Render("  total " + core.FormatSize(m.Total()))
	return title + total
}

// ─── Body ────────────────────────────────────────────────────────────────────

func (m Model) renderBody() string {
	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		lines = append(lines, m.renderRow(r, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(r row, selected bool) string {
	var size string
	switch r.state {
	case rowPending:
		size = m.spinner.View()
	case rowDeleting:
		size = m.theme.Warning.Render("deleting")
	default:
		size = core.FormatSize(r.bytes)
	}

	name := m.theme.Text.Render(fmt.Sprintf("%-*s", nameWidth, r.folder.String()))
	desc := m.theme.Muted.Render(r.folder.Description())
	line := fmt.Sprintf("   %s %10s  %s", name, size, desc)

	if selected {
		line = " " + m.theme.Cursor.Render(ui.IconBlock) + line[2:]
		if m.confirmDelete {
			line += m.theme.Error.Bold(true).Render("  " + ui.IconWarning + " Press Enter to delete")
		}
	}
	return line
}

// ─── Footer ──────────────────────────────────────────────────────────────────

func (m Model) renderFooter() string {
	var parts []string

	if m.err != nil {
		parts = append(parts, m.theme.Error.Render("  "+ui.IconError+" "+firstLine(m.err.Error())))
	}
	if m.status != "" {
		parts = append(parts, m.theme.Muted.Render("  "+m.status))
	}

	parts = append(parts, "  "+m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

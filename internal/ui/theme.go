package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorText      = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#e5e7eb"}
	ColorTextDim   = lipgloss.AdaptiveColor{Light: "#4b5563", Dark: "#9ca3af"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconBlock   = "▌"
	IconBullet  = "•"
	IconPipe    = "│"
	IconWarning = "⚠"
	IconError   = "✗"
	IconCheck   = "✓"
)

// ─── Color decision ──────────────────────────────────────────────────────────

// ColorEnabled resolves a color mode (auto, always, never) for w. In auto
// mode color is used only when w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return IsTerminal(w)
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ─── Theme ───────────────────────────────────────────────────────────────────

// Theme holds styles bound to one output.
type Theme struct {
	Renderer *lipgloss.Renderer

	Header  lipgloss.Style
	Muted   lipgloss.Style
	Text    lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Cursor  lipgloss.Style
	Hint    lipgloss.Style
}

// NewTheme builds styles for w. With color off every style renders plain text.
func NewTheme(w io.Writer, color bool) *Theme {
	r := lipgloss.NewRenderer(w)
	if !IsTerminal(w) {
		r.SetHasDarkBackground(true)
	}
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Theme{
		Renderer: r,
		Header:   r.NewStyle().Foreground(ColorPrimary),
		Muted:    r.NewStyle().Foreground(ColorMuted),
		Text:     r.NewStyle().Foreground(ColorText),
		Accent:   r.NewStyle().Foreground(ColorSecondary).Bold(true),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Error:    r.NewStyle().Foreground(ColorError),
		Cursor:   r.NewStyle().Foreground(ColorPrimary).Bold(true),
		Hint:     r.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}

// ─── Printer ─────────────────────────────────────────────────────────────────

// Printer writes line-oriented command output.
type Printer struct {
	w     io.Writer
	theme *Theme
}

// NewPrinter returns a Printer writing to w with the given theme.
func NewPrinter(w io.Writer, theme *Theme) *Printer {
	return &Printer{w: w, theme: theme}
}

// Theme returns the printer's styles.
func (p *Printer) Theme() *Theme {
	return p.theme
}

// Header prints a highlighted line.
func (p *Printer) Header(format string, args ...any) {
	p.styled(p.theme.Header, format, args...)
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Raw prints command output as-is, without doubling its trailing newline.
func (p *Printer) Raw(text string) {
	fmt.Fprintln(p.w, strings.TrimRight(text, "\n"))
}

// Verbose prints a plain line only when enabled.
func (p *Printer) Verbose(enabled bool, format string, args ...any) {
	if enabled {
		p.Line(format, args...)
	}
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.styled(p.theme.Warning, IconWarning+" "+format, args...)
}

func (p *Printer) styled(s lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(p.w, s.Render(fmt.Sprintf(format, args...)))
}

// Rule returns a horizontal rule of n dashes.
func Rule(n int) string {
	return strings.Repeat("-", n)
}

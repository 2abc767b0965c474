package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone selects the base color of a formatted line.
type Tone int

const (
	// ToneNormal is plain white text.
	ToneNormal Tone = iota
	// ToneInfo is used for explanatory text.
	ToneInfo
	// ToneError is used for fatal messages.
	ToneError
	// ToneSuccess is used for completion messages.
	ToneSuccess
)

// Printer writes styled console output. All styling is explicit per call;
// there is no "current color" state carried between lines.
type Printer struct {
	out   io.Writer
	quiet bool
	tones map[Tone]lipgloss.Style
	param lipgloss.Style
	dim   lipgloss.Style
}

// NewPrinter creates a Printer writing to out. When noColor is set the
// output carries no escape sequences. When quiet is set only errors print.
func NewPrinter(out io.Writer, noColor, quiet bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{
		out:   out,
		quiet: quiet,
		tones: map[Tone]lipgloss.Style{
			ToneNormal:  r.NewStyle().Foreground(lipgloss.Color("15")),
			ToneInfo:    r.NewStyle().Foreground(lipgloss.Color("10")),
			ToneError:   r.NewStyle().Foreground(lipgloss.Color("9")),
			ToneSuccess: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		},
		param: r.NewStyle().Foreground(lipgloss.Color("11")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Format renders format in the given tone, replacing {N} with args[N]
// highlighted as a parameter. Placeholders without a matching argument are
// kept literally.
func (p *Printer) Format(tone Tone, format string, args ...string) string {
	base := p.tones[tone]

	var b strings.Builder
	for {
		open := strings.IndexByte(format, '{')
		if open < 0 {
			break
		}
		closing := strings.IndexByte(format[open:], '}')
		if closing < 0 {
			break
		}
		closing += open

		idx, err := strconv.Atoi(format[open+1 : closing])
		if err != nil || idx < 0 || idx >= len(args) {
			b.WriteString(renderText(base, format[:closing+1]))
			format = format[closing+1:]
			continue
		}

		b.WriteString(renderText(base, format[:open]))
		b.WriteString(p.param.Render(args[idx]))
		format = format[closing+1:]
	}
	b.WriteString(renderText(base, format))
	return b.String()
}

func renderText(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}

// Line prints a formatted line (see Format).
func (p *Printer) Line(tone Tone, format string, args ...string) {
	if p.quiet && tone != ToneError {
		return
	}
	fmt.Fprintln(p.out, p.Format(tone, format, args...))
}

// Info prints an informational message verbatim.
func (p *Printer) Info(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintln(p.out, renderText(p.tones[ToneNormal], msg))
}

// Success prints a success message.
func (p *Printer) Success(msg string) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.tones[ToneSuccess].Render("✓"), msg)
}

// Error prints an error message. Errors print even in quiet mode.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.tones[ToneError].Render(msg))
}

// Verbose prints a dimmed detail line when verbose is true.
func (p *Printer) Verbose(verbose bool, msg string) {
	if !verbose || p.quiet {
		return
	}
	fmt.Fprintln(p.out, p.dim.Render(msg))
}

// formatBytes formats bytes as human-readable string
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

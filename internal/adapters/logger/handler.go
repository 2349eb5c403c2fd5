package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/hpwbuild/internal/ui/output"
	"go.trai.ch/hpwbuild/internal/ui/style"
)

// stepKey is rendered as a "[name]" prefix instead of a key=value pair.
const stepKey = "step"

// PrettyHandler is a slog.Handler that prints one colored line per record.
// Pipeline progress lines (▶ and ✓) get their own accent colors.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var step string
	pairs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	collect := func(group string, attr slog.Attr) {
		if group == "" && attr.Key == stepKey {
			step = attr.Value.String()
			return
		}
		pairs = append(pairs, formatAttr(group, attr))
	}

	// Handler attrs were added before any WithGroup call.
	for _, attr := range h.attrs {
		collect("", attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		collect(h.group, attr)
		return true
	})

	var b strings.Builder
	icon, color := decorate(r.Level, r.Message)
	if icon != "" {
		b.WriteString(icon + " ")
	}
	if step != "" {
		b.WriteString("[" + step + "] ")
	}
	b.WriteString(r.Message)
	if len(pairs) > 0 {
		b.WriteString(" " + strings.Join(pairs, " "))
	}

	styled := h.out.String(b.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &PrettyHandler{out: h.out, level: h.level, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{out: h.out, level: h.level, attrs: h.attrs, group: name}
}

// decorate picks the icon and color of a line. Warnings and errors are keyed
// by level, info lines by the progress glyph they start with.
func decorate(level slog.Level, msg string) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case strings.HasPrefix(msg, style.Check):
		return "", style.Green
	case strings.HasPrefix(msg, style.Arrow):
		return "", style.Iris
	default:
		return "", style.Slate
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}

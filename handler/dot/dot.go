package dot

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var (
	yellow = color.New(color.FgYellow, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

var _ slog.Handler = (*dotHandler)(nil)

type dotHandler struct {
	handler slog.Handler
	stdout  io.Writer
}

func New(h slog.Handler) slog.Handler {
	return &dotHandler{
		handler: h,
		stdout:  colorable.NewColorableStdout(),
	}
}

func (h *dotHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *dotHandler) Handle(ctx context.Context, r slog.Record) error {
	switch {
	case r.Message == "wrote icon":
		_, _ = h.stdout.Write([]byte(yellow(".")))
	case r.Message == "icon up to date":
		_, _ = h.stdout.Write([]byte(green("=")))
	case r.Message == "icon differs":
		_, _ = h.stdout.Write([]byte(yellow("~")))
	case r.Message == "skipped glyph":
		_, _ = h.stdout.Write([]byte(gray("-")))
	case strings.Contains(r.Message, "failed to"):
		_, _ = h.stdout.Write([]byte(red("!")))
	case strings.HasSuffix(r.Message, "completed"):
		_, _ = h.stdout.Write([]byte("\n"))
	}
	return nil
}

func (h *dotHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dotHandler{handler: h.handler.WithAttrs(attrs), stdout: h.stdout}
}

func (h *dotHandler) WithGroup(name string) slog.Handler {
	return &dotHandler{handler: h.handler.WithGroup(name), stdout: h.stdout}
}

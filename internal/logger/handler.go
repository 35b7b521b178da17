package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// filteringHandler drops records by originating package before handing
// them to the base handler.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil || (h.cfg.enabledPackagesSet == nil && h.cfg.disabledPackagesSet == nil) {
		return h.base.Handle(ctx, r)
	}
	pkg := recordPackage(r)
	if pkg == "" {
		return h.base.Handle(ctx, r)
	}
	if _, found := h.cfg.disabledPackagesSet[pkg]; found {
		return nil
	}
	if h.cfg.enabledPackagesSet != nil {
		if _, found := h.cfg.enabledPackagesSet[pkg]; !found {
			return nil
		}
	}
	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}

// recordPackage returns the lowercased directory of the calling file.
func recordPackage(r slog.Record) string {
	if r.PC == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(filepath.Dir(frame.File)))
}

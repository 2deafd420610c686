package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Aayushjha0128/GraphSense/pkg/observability"
)

// registerHooks routes build, cache, and render events to the logger at
// debug level. The serve command calls this once at startup; one-shot
// commands leave the default no-op hooks in place.
func (c *CLI) registerHooks() {
	observability.SetBuildHooks(&logBuildHooks{logger: c.Logger})
	observability.SetCacheHooks(&logCacheHooks{logger: c.Logger})
	observability.SetRenderHooks(&logRenderHooks{logger: c.Logger})
}

// logBuildHooks logs finished insertions. Start and relax events stay
// silent; the completion line already carries the total duration.
type logBuildHooks struct {
	observability.NoopBuildHooks
	logger *log.Logger
}

func (h *logBuildHooks) OnInsertComplete(id, edges int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("insert failed", "err", err, "duration", duration)
		return
	}
	h.logger.Debug("vertex inserted", "id", id, "edges", edges, "duration", duration)
}

type logCacheHooks struct {
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h *logCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

type logRenderHooks struct {
	observability.NoopRenderHooks
	logger *log.Logger
}

func (h *logRenderHooks) OnRenderComplete(format string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", duration)
}

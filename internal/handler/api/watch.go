package api

import (
	"net/http"

	"courtbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// TargetLister exposes the watcher's configured targets.
type TargetLister interface {
	Targets() []config.WatchTarget
}

type WatchHandler struct {
	lister TargetLister
}

func NewWatchHandler(lister TargetLister) *WatchHandler {
	return &WatchHandler{lister: lister}
}

// ListTargets returns the watch list currently in effect.
func (h *WatchHandler) ListTargets(c *gin.Context) {
	targets := h.lister.Targets()
	if targets == nil {
		targets = []config.WatchTarget{}
	}
	c.JSON(http.StatusOK, gin.H{"targets": targets})
}

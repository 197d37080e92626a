package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/lifequote/internal/adapters/http/dto"
	"github.com/jsamuelsen/lifequote/internal/ports"
)

const (
	maxListedCollections = 10
	maxStoreErrorLen     = 80
)

// DiagnosticsHandler serves GET /test, a human-facing connectivity report
// for the document store.
type DiagnosticsHandler struct {
	store ports.StoreInspector
}

// NewDiagnosticsHandler reports on store.
func NewDiagnosticsHandler(store ports.StoreInspector) *DiagnosticsHandler {
	return &DiagnosticsHandler{store: store}
}

// StoreStatus always answers 200. A store failure shows up in the body,
// not the status, so the report stays readable when the store is down.
func (h *DiagnosticsHandler) StoreStatus(c *gin.Context) {
	ctx := c.Request.Context()

	resp := dto.StoreStatusResponse{
		Backend:     "running",
		Store:       h.store.Name(),
		Collections: []string{},
	}

	if err := h.store.Check(ctx); err != nil {
		resp.Error = clip(err.Error())
		c.JSON(http.StatusOK, resp)

		return
	}

	resp.Connected = true

	names, err := h.store.Collections(ctx)
	if err != nil {
		resp.Error = clip(err.Error())
	} else {
		resp.Collections = append(resp.Collections, names[:min(len(names), maxListedCollections)]...)
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes mounts GET /test.
func (h *DiagnosticsHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/test", h.StoreStatus)
}

func clip(s string) string {
	if len(s) <= maxStoreErrorLen {
		return s
	}

	return s[:maxStoreErrorLen]
}

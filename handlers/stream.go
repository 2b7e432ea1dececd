package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"curbside/middleware"
	"curbside/services/catalog"
	"curbside/services/feed"
	"curbside/utils"
)

// StreamHandler serves live snapshots over SSE. Each connection is one
// multiplexer subscription, cancelled when the client disconnects.
type StreamHandler struct {
	Mux     *feed.Multiplexer
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewStreamHandler(mux *feed.Multiplexer, cat catalog.CatalogService, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{Mux: mux, Catalog: cat, Logger: logger}
}

// TrucksStreamHandler streams the full truck catalog (the map view).
func (h *StreamHandler) TrucksStreamHandler(c *gin.Context) {
	h.stream(c, feed.TrucksKey())
}

// MenuStreamHandler streams one truck's menu.
func (h *StreamHandler) MenuStreamHandler(c *gin.Context) {
	h.stream(c, feed.MenuKey(c.Param("id")))
}

// ReviewsStreamHandler streams one truck's top reviews.
func (h *StreamHandler) ReviewsStreamHandler(c *gin.Context) {
	h.stream(c, feed.ReviewsKey(c.Param("id")))
}

// TruckOrdersStreamHandler streams a truck's orders to its owning vendor.
func (h *StreamHandler) TruckOrdersStreamHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	truckID := c.Param("id")
	truck, err := h.Catalog.GetTruck(c.Request.Context(), truckID)
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to fetch truck", err.Error())
		return
	}
	if truck.VendorID != ident.UID {
		utils.JSONError(c, http.StatusForbidden, "not the owning vendor", "")
		return
	}

	h.stream(c, feed.TruckOrdersKey(truckID))
}

// MyOrdersStreamHandler streams the caller's own orders across all trucks.
func (h *StreamHandler) MyOrdersStreamHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}
	h.stream(c, feed.UserOrdersKey(ident.UID))
}

func (h *StreamHandler) stream(c *gin.Context, key feed.Key) {
	// Every snapshot is the complete member set, so when the client lags
	// the oldest queued snapshot can be dropped without losing the final
	// state; delivery order is preserved.
	snaps := make(chan feed.Snapshot, 8)
	cancel, err := h.Mux.Subscribe(key, func(s feed.Snapshot) {
		for {
			select {
			case snaps <- s:
				return
			default:
				select {
				case <-snaps:
				default:
				}
			}
		}
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to open stream", err.Error())
		return
	}
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case s := <-snaps:
			c.SSEvent("snapshot", s.Docs)
			return true
		case <-clientGone:
			return false
		}
	})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"curbside/middleware"
	"curbside/models"
	"curbside/services/catalog"
	"curbside/utils"
)

// CatalogHandler exposes truck and menu management for vendors plus the
// public truck read path.
type CatalogHandler struct {
	Service catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Service: svc, Logger: logger}
}

// CreateTruckHandler publishes a new truck owned by the calling vendor.
func (h *CatalogHandler) CreateTruckHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var input struct {
		Name        string  `json:"name"`
		Cuisine     string  `json:"cuisine"`
		Description string  `json:"description"`
		Lat         float64 `json:"lat"`
		Lng         float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	truck, err := h.Service.CreateTruck(c.Request.Context(), ident.UID, models.Truck{
		Name:        input.Name,
		Cuisine:     input.Cuisine,
		Description: input.Description,
		Lat:         input.Lat,
		Lng:         input.Lng,
	})
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to create truck", err.Error())
		return
	}
	c.JSON(http.StatusCreated, truck)
}

// UpdateTruckHandler changes descriptive fields on a truck the caller owns.
func (h *CatalogHandler) UpdateTruckHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var upd models.TruckUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateTruck(c.Request.Context(), ident.UID, c.Param("id"), upd); err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to update truck", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

// GetTruckHandler returns one truck, including its current rating aggregate.
func (h *CatalogHandler) GetTruckHandler(c *gin.Context) {
	truck, err := h.Service.GetTruck(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to fetch truck", err.Error())
		return
	}
	c.JSON(http.StatusOK, truck)
}

// MyTrucksHandler lists the calling vendor's trucks.
func (h *CatalogHandler) MyTrucksHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	trucks, err := h.Service.VendorTrucks(c.Request.Context(), ident.UID)
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to list trucks", err.Error())
		return
	}
	c.JSON(http.StatusOK, trucks)
}

// AddMenuItemHandler appends an item to a truck's menu.
func (h *CatalogHandler) AddMenuItemHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var input struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	item, err := h.Service.AddMenuItem(c.Request.Context(), ident.UID, c.Param("id"), input.Name, input.Price)
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to add menu item", err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetMenuHandler returns a truck's current menu.
func (h *CatalogHandler) GetMenuHandler(c *gin.Context) {
	items, err := h.Service.ListMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to list menu", err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

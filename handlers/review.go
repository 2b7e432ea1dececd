package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"curbside/middleware"
	"curbside/models"
	"curbside/services/rating"
	"curbside/utils"
)

// RatingHandler exposes the rating upsert and the top-reviews read path.
type RatingHandler struct {
	Service rating.RatingService
	Logger  *zap.Logger
}

func NewRatingHandler(svc rating.RatingService, logger *zap.Logger) *RatingHandler {
	return &RatingHandler{Service: svc, Logger: logger}
}

// UpsertRatingHandler records the caller's rating for a truck. A repeat call
// from the same user replaces their previous rating.
func (h *RatingHandler) UpsertRatingHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "")
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Service.UpsertRating(c.Request.Context(), models.RatingInput{
		TruckID:  c.Param("id"),
		UserID:   ident.UID,
		UserName: ident.Name,
		Rating:   input.Rating,
		Comment:  input.Comment,
	})
	if err != nil {
		if utils.IsConflict(err) {
			h.Logger.Warn("rating contention", zap.String("truckId", c.Param("id")), zap.Error(err))
		}
		utils.JSONError(c, utils.ErrorStatus(err), "failed to submit rating", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"submitted": true})
}

// TopReviewsHandler returns at most the 5 most recently updated reviews.
func (h *RatingHandler) TopReviewsHandler(c *gin.Context) {
	reviews, err := h.Service.TopReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, utils.ErrorStatus(err), "failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}

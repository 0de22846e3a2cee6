package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelr/internal/models/request_models"
	"travelr/internal/services"
	"travelr/pkg/utils"
)

type WishlistController struct {
	wishlistService services.WishlistServiceInterface
}

func NewWishlistController(wishlistService services.WishlistServiceInterface) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

func (w *WishlistController) SaveHandler(c *gin.Context) {
	var req request_models.SaveWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := w.wishlistService.Save(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Added to wishlist successfully")
}

// UpdateHandler is the auto-save path; the client calls it after every
// section edit, packing-list tick or strike toggle.
func (w *WishlistController) UpdateHandler(c *gin.Context) {
	var req request_models.SaveWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	err := w.wishlistService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Wishlist entry updated")
}

func (w *WishlistController) GetHandler(c *gin.Context) {
	entry, err := w.wishlistService.Get(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Wishlist item loaded")
}

func (w *WishlistController) ListHandler(c *gin.Context) {
	entries, err := w.wishlistService.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Wishlist fetched successfully")
}

func (w *WishlistController) RemoveHandler(c *gin.Context) {
	err := w.wishlistService.Remove(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Removed from wishlist")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelr/internal/models/request_models"
	"travelr/internal/services"
	"travelr/pkg/utils"
)

type PackingListController struct {
	packingService services.PackingServiceInterface
}

func NewPackingListController(packingService services.PackingServiceInterface) *PackingListController {
	return &PackingListController{
		packingService: packingService,
	}
}

func (p *PackingListController) GeneratePackingListHandler(c *gin.Context) {
	var req request_models.GeneratePackingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	packingList, err := p.packingService.GeneratePackingList(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, packingList, "Packing list generated successfully")
}

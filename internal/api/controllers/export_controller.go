package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/internal/services"
	"travelr/pkg/utils"
)

type ExportController struct {
	wishlistService services.WishlistServiceInterface
	exportService   services.ExportServiceInterface
}

func NewExportController(
	wishlistService services.WishlistServiceInterface,
	exportService services.ExportServiceInterface,
) *ExportController {
	return &ExportController{
		wishlistService: wishlistService,
		exportService:   exportService,
	}
}

func (e *ExportController) ExportPDFHandler(c *gin.Context) {
	entry, form, err := e.loadEntry(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := e.exportService.RenderPDF(entry, form)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("itinerary-%s-%s.pdf", form.Destination, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (e *ExportController) WhatsAppShareHandler(c *gin.Context) {
	entry, form, err := e.loadEntry(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	link := e.exportService.WhatsAppShareLink(entry, form)
	utils.RespondSuccess(c, gin.H{"url": link}, "Share link generated")
}

func (e *ExportController) loadEntry(c *gin.Context) (*response_models.WishlistEntryResponse, services.TripSummary, error) {
	entry, err := e.wishlistService.Get(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		return nil, services.TripSummary{}, err
	}

	var form request_models.TripRequest
	if len(entry.FormData) > 0 {
		// Stored form data is best-effort; exports still work without it.
		_ = json.Unmarshal(entry.FormData, &form)
	}

	return entry, services.TripSummary{
		Destination:   form.Destination,
		Days:          form.Days,
		TravelerCount: form.TravelerCount,
		StartDate:     form.StartDate,
	}, nil
}

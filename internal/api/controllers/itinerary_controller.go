package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/internal/services"
	"travelr/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItineraryHandler serves POST /api/generate-itinerary. The same
// endpoint covers all three variants; the optional regeneration fields in the
// body pick which one runs.
func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()

	switch services.PromptModeFor(req) {
	case services.PromptModeSectionReplacement:
		doc, struck, err := i.itineraryService.ReplaceSection(ctx, req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, response_models.SectionReplacementResponse{
			Document:       doc,
			StruckOffItems: struck,
		}, "Alternative suggestion generated")
	case services.PromptModeDayRegeneration:
		doc, err := i.itineraryService.RegenerateDay(ctx, req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, doc, "Day regenerated successfully")
	default:
		doc, err := i.itineraryService.GenerateItinerary(ctx, req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, doc, "Itinerary generated successfully")
	}
}

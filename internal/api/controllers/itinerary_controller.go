package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	logger           *zap.Logger
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface, logger *zap.Logger) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		logger:           logger.Named("itinerary_controller"),
	}
}

// GET /api/itinerary?cities=Paris,Lyon&days=3
func (ic *ItineraryController) GetItineraryHandler(c *gin.Context) {
	query := request_models.ItineraryQuery{
		Cities: c.Query("cities"),
		Days:   c.Query("days"),
	}

	req, err := query.ToTripRequest()
	resp := response_models.ItineraryResponse{
		Cities:      req.Cities,
		Days:        req.Days,
		Itineraries: response_models.ItineraryGroups{Combined: response_models.NewDayGroups()},
	}
	if err != nil {
		resp.Error = utils.HandleServiceError(c, ic.logger, err)
		utils.RespondInBand(c, resp)
		return
	}

	itinerary, err := ic.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		resp.Error = utils.HandleServiceError(c, ic.logger, err)
		utils.RespondInBand(c, resp)
		return
	}

	resp.Itineraries.Combined = itinerary.Combined()
	utils.RespondInBand(c, resp)
}

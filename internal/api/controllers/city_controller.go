package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type CityController struct {
	cityService services.CityServiceInterface
	logger      *zap.Logger
}

func NewCityController(cityService services.CityServiceInterface, logger *zap.Logger) *CityController {
	return &CityController{
		cityService: cityService,
		logger:      logger.Named("city_controller"),
	}
}

// GET /api/suggest-cities?country=Japan
func (cc *CityController) SuggestCitiesHandler(c *gin.Context) {
	country := c.Query("country")

	cities, err := cc.cityService.SuggestCities(c.Request.Context(), country)
	resp := response_models.SuggestCitiesResponse{
		Country:         country,
		SuggestedCities: cities,
	}
	if err != nil {
		resp.SuggestedCities = []string{}
		resp.Error = utils.HandleServiceError(c, cc.logger, err)
	}

	utils.RespondInBand(c, resp)
}

// GET /api/validate-city?country=Japan&city=Kyoto
func (cc *CityController) ValidateCityHandler(c *gin.Context) {
	country := c.Query("country")
	city := c.Query("city")

	valid, err := cc.cityService.ValidateCity(c.Request.Context(), country, city)
	resp := response_models.ValidateCityResponse{
		Country: country,
		City:    city,
		Valid:   valid,
	}
	if err != nil {
		resp.Valid = false
		resp.Error = utils.HandleServiceError(c, cc.logger, err)
	}

	utils.RespondInBand(c, resp)
}

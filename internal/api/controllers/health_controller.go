package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

// Version is overridden at build time with -ldflags "-X itinera/internal/api/controllers.Version=...".
var Version = "dev"

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (hc *HealthController) HealthCheckHandler(c *gin.Context) {
	utils.RespondInBand(c, response_models.HealthResponse{
		Status:  "ok",
		Version: Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}

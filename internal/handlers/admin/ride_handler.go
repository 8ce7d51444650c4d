package handlers

import (
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rideService services.RideService
	logger      *logger.Logger
}

func NewRideHandler(rideService services.RideService, logger *logger.Logger) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		logger:      logger,
	}
}

func (h *RideHandler) GetRides(c *gin.Context) {
	rides, err := h.rideService.ListRides(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "getRides", err, utils.MsgNoRidesFound)
		return
	}

	utils.JSONResponse(c, rides)
}

// GetRidesByName matches the driver or the passenger name
func (h *RideHandler) GetRidesByName(c *gin.Context) {
	rides, err := h.rideService.SearchRides(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "getRidebyDriver", err, utils.MsgNoRidesFound)
		return
	}

	utils.JSONResponse(c, rides)
}

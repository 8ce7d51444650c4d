package handlers

import (
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type EmergencyHandler struct {
	emergencyService services.EmergencyService
	logger           *logger.Logger
}

func NewEmergencyHandler(emergencyService services.EmergencyService, logger *logger.Logger) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyService: emergencyService,
		logger:           logger,
	}
}

func (h *EmergencyHandler) GetEmergencies(c *gin.Context) {
	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "getEmergencies", err, utils.MsgNoEmergenciesFound)
		return
	}

	utils.JSONResponse(c, emergencies)
}

func (h *EmergencyHandler) GetEmergenciesByName(c *gin.Context) {
	emergencies, err := h.emergencyService.SearchEmergencies(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "getEmergenciesByName", err, utils.MsgNoEmergenciesFound)
		return
	}

	utils.JSONResponse(c, emergencies)
}

package handlers

import (
	"rideadmin/internal/models"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/internal/validators"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FareControlHandler struct {
	fareControlService services.FareControlService
	logger             *logger.Logger
}

func NewFareControlHandler(fareControlService services.FareControlService, logger *logger.Logger) *FareControlHandler {
	return &FareControlHandler{
		fareControlService: fareControlService,
		logger:             logger,
	}
}

func (h *FareControlHandler) GetFareControls(c *gin.Context) {
	controls, err := h.fareControlService.GetFareControls(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "getControls", err, utils.MsgControlsNotFound)
		return
	}

	utils.JSONResponse(c, controls)
}

// UpdateFareControls merges the supplied values; anything absent, null, zero or empty is kept.
func (h *FareControlHandler) UpdateFareControls(c *gin.Context) {
	body, err := readJSONObject(c)
	if err != nil {
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	update := models.ParseFareControlsUpdate(body)
	if errs := validators.ValidateStruct(update); len(errs) > 0 {
		h.logger.WithMethod("updateFare").WithField("validation", errs.Error()).Info("Rejected fare update")
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	controls, err := h.fareControlService.UpdateFareControls(c.Request.Context(), update)
	if err != nil {
		respondError(c, h.logger, "updateFare", err, utils.MsgControlsNotFound)
		return
	}

	utils.JSONResponse(c, controls)
}

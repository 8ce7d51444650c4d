package handlers

import (
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FraudHandler struct {
	fraudService services.FraudService
	logger       *logger.Logger
}

func NewFraudHandler(fraudService services.FraudService, logger *logger.Logger) *FraudHandler {
	return &FraudHandler{
		fraudService: fraudService,
		logger:       logger,
	}
}

func (h *FraudHandler) GetFrauds(c *gin.Context) {
	frauds, err := h.fraudService.ListFrauds(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "getFrauds", err, utils.MsgNoFraudsFound)
		return
	}

	utils.JSONResponse(c, frauds)
}

func (h *FraudHandler) GetFraudsByName(c *gin.Context) {
	frauds, err := h.fraudService.SearchFrauds(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "getFraudsByName", err, utils.MsgNoFraudsFound)
		return
	}

	utils.JSONResponse(c, frauds)
}

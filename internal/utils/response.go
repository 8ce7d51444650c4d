package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Admin dashboards consume bare JSON bodies and plain-text errors, so no
// envelope is added around payloads.

func JSONResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func TextResponse(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	TextResponse(c, http.StatusNotFound, message)
}

func BadRequestResponse(c *gin.Context, message string) {
	TextResponse(c, http.StatusBadRequest, message)
}

func InternalServerErrorResponse(c *gin.Context) {
	TextResponse(c, http.StatusInternalServerError, ErrInternalServer)
}

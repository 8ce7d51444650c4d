package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the plain-text responses dashboards expect.
func respondError(c *gin.Context, log *logger.Logger, method string, err error, notFoundMessage string) {
	if errors.Is(err, services.ErrNotFound) {
		log.WithMethod(method).Info(notFoundMessage)
		utils.NotFoundResponse(c, notFoundMessage)
		return
	}

	log.WithContext(c.Request.Context()).WithMethod(method).WithError(err).Error("Request failed")
	utils.InternalServerErrorResponse(c)
}

// readJSONObject decodes an optional JSON object body. An empty body is an empty object.
func readJSONObject(c *gin.Context) (map[string]interface{}, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, nil
}

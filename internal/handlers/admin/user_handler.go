package handlers

import (
	"rideadmin/internal/models"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/internal/validators"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	logger      *logger.Logger
}

func NewUserHandler(userService services.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetUsers lists every user with their fraud count
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "getUsers", err, utils.MsgNoUsersFound)
		return
	}

	utils.JSONResponse(c, users)
}

// GetUser fetches a single user by document id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	if !validators.IsValidDocumentID(userID) {
		utils.NotFoundResponse(c, utils.MsgUserNotFound)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "getUserbyID", err, utils.MsgUserNotFound)
		return
	}

	utils.JSONResponse(c, user)
}

// GetUserByName does a case-insensitive partial match on first or last name
func (h *UserHandler) GetUserByName(c *gin.Context) {
	users, err := h.userService.SearchUsers(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, h.logger, "getUsersByName", err, utils.MsgNoUsersFound)
		return
	}

	utils.JSONResponse(c, users)
}

// BanUser sets or clears the ban flag. Only a literal true bans.
func (h *UserHandler) BanUser(c *gin.Context) {
	body, err := readJSONObject(c)
	if err != nil {
		utils.BadRequestResponse(c, utils.MsgInvalidRequestBody)
		return
	}

	userID := c.Param("id")
	if !validators.IsValidDocumentID(userID) {
		utils.NotFoundResponse(c, utils.MsgUserNotFound)
		return
	}

	req := models.ParseBanUserRequest(body)
	if err := h.userService.BanUser(c.Request.Context(), userID, req); err != nil {
		respondError(c, h.logger, "banUser", err, utils.MsgUserNotFound)
		return
	}

	if req.IsBanned {
		utils.MessageResponse(c, utils.MsgUserBanned)
		return
	}
	utils.MessageResponse(c, utils.MsgUserUnbanned)
}

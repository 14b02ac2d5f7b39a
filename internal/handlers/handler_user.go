package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the authenticated user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// getCurrentUser godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response[dto.UserResponse]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/current [get]
// @Router /users/profile [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "User not found")
		return
	}

	respond(c, http.StatusOK, "Current user", dto.ToUserResponse(user))
}

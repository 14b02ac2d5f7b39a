package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{userService: us, tokenService: ts}
}

// Login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT access token.
// @Tags users
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response[dto.LoginResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Email or password is wrong"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request body")
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login rejected")
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Email or password is wrong"})
			return
		}
		respondError(c, logger, err, "")
		return
	}

	issued, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	respond(c, http.StatusOK, "Login success", dto.LoginResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags users
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.Response[dto.UserResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email in use"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request body")
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Registration with taken email")
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Email in use"})
			return
		}
		respondError(c, logger, err, "")
		return
	}

	respond(c, http.StatusCreated, "User registered", dto.ToUserResponse(newUser))
}

// Logout godoc
// @Summary User logout
// @Description Revokes the access token used for this request.
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response[any]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	tokenID, expiresAt, ok := middleware.GetTokenFromContext(c)
	if !ok {
		logger.Warn("Logout with a token that has no id")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid token claims"})
		return
	}

	if err := h.tokenService.RevokeToken(c.Request.Context(), userID, tokenID, expiresAt); err != nil {
		respondError(c, logger, err, "")
		return
	}

	respond[any](c, http.StatusOK, "Logout success", nil)
}

package handlers

import (
	"errors"
	"net/http"

	"chenu2/internal/common"
	"chenu2/internal/repositories"
	"chenu2/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers serves admin login, token refresh and the identity endpoint.
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{authService: authService, userRepo: userRepo}
}

// Login handles POST /api/auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	req := &struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	tokens, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return common.SendServerError(c, "Login failed")
	}
	return c.JSON(http.StatusOK, tokens)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandlers) Refresh(c echo.Context) error {
	req := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}
	if err := c.Bind(req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "refresh_token is required")
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRefreshToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid refresh token")
		}
		return common.SendServerError(c, "Token refresh failed")
	}
	return c.JSON(http.StatusOK, tokens)
}

// Me handles GET /api/auth/me
func (h *AuthHandlers) Me(c echo.Context) error {
	userID, ok := common.GetUserIDFromContext(c.Request().Context())
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	user, err := h.userRepo.GetByID(c.Request().Context(), userID)
	if err != nil {
		return common.SendServerError(c, "Failed to load user")
	}
	if user == nil {
		return common.SendNotFoundError(c, "User")
	}
	return c.JSON(http.StatusOK, user)
}

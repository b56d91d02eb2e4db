package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asphaltlabs/asphalt-companion/internal/user"
)

const INVALID_REQUEST = "invalid request"

type UserHandler struct {
	users *user.UserService
}

func RegisterUserRoutes(g *echo.Group, users *user.UserService) {
	h := &UserHandler{users: users}
	g.POST("/register", h.RegisterHandler)
	g.POST("/token", h.TokenHandler)
}

func (h *UserHandler) RegisterHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := h.users.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":       created.ID,
		"username": created.Username,
	})
}

func (h *UserHandler) TokenHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	token, err := h.users.Login(creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/asphaltlabs/asphalt-companion/api/middleware"
	"github.com/asphaltlabs/asphalt-companion/internal/match"
	"github.com/asphaltlabs/asphalt-companion/internal/user"
)

type MatchHandler struct {
	matches *match.MatchService
	users   *user.UserService
}

// RegisterMatchRoutes mounts the upload path; the group is expected to carry
// the JWT middleware.
func RegisterMatchRoutes(g *echo.Group, matches *match.MatchService, users *user.UserService) {
	h := &MatchHandler{matches: matches, users: users}
	g.POST("/matches/upload", h.UploadHandler)
}

// RegisterStatsRoutes mounts the public stats read path.
func RegisterStatsRoutes(g *echo.Group, matches *match.MatchService) {
	h := &MatchHandler{matches: matches}
	g.GET("/users/:id/stats", h.StatsHandler)
}

func (h *MatchHandler) UploadHandler(c echo.Context) error {
	subject, ok := api_middleware.SubjectID(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	// a signed token whose subject no longer exists must not ingest
	if _, err := h.users.ResolveSubject(subject); err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}
	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
	}
	defer f.Close()

	res, err := h.matches.Ingest(f, subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"created": res.Created})
}

func (h *MatchHandler) StatsHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	stats, err := h.matches.StatsFor(uint(id))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

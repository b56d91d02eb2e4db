package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/asphaltlabs/asphalt-companion/internal/catalog"
)

type CarHandler struct {
	cars *catalog.CatalogService
}

// RegisterCarRoutes mounts the administrative car write path. The group is
// expected to carry the JWT middleware.
func RegisterCarRoutes(g *echo.Group, cars *catalog.CatalogService) {
	h := &CarHandler{cars: cars}
	g.POST("/cars", h.AddCarHandler)
}

func (h *CarHandler) AddCarHandler(c echo.Context) error {
	var req catalog.CarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	car, err := h.cars.AddCar(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":   car.ID,
		"name": car.Name,
	})
}

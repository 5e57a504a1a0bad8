package httpapi

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/zipcast/zipcast/internal/common"
	"github.com/zipcast/zipcast/internal/export"
	"github.com/zipcast/zipcast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/daily", func(c *fiber.Ctx) error {
		var q dailyQuery
		if err := q.bind(c, service); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec, err := service.Export(c.Context(), q.Zip, q.Date)
		if err != nil {
			if errors.Is(err, weather.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("no data for %s", q.Date))
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read weather record")
		}

		return c.JSON(export.FromDailyRecord(rec))
	})
}

// dailyQuery holds query parameters for the daily lookup endpoint.
type dailyQuery struct {
	Zip  string `validate:"required,numeric,len=5"`
	Date string `validate:"required"`
}

func (q *dailyQuery) bind(c *fiber.Ctx, service *weather.Service) error {
	q.Zip = c.Query("zip")

	// Date defaults to today in the service's local timezone.
	q.Date = c.Query("date", service.Today())
	normalized, err := common.ParseDate(q.Date)
	if err != nil {
		return err
	}
	q.Date = normalized

	return validate.Struct(q)
}

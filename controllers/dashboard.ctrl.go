package controllers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/getbrick/brickhub.go/lib/responses"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// DashboardController : DashboardController struct
type DashboardController struct {
	svc *service.BrickhubService
}

func NewDashboardController(svc *service.BrickhubService) *DashboardController {
	return &DashboardController{svc: svc}
}

// Dashboard : Dashboard Controller
func (controller *DashboardController) Dashboard(c echo.Context) error {
	dashboard, err := controller.svc.FindDashboard(c.Request().Context())
	if err != nil {
		// nothing seeded yet, an empty object rather than an error
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusOK, echo.Map{})
		}
		c.Logger().Errorf("Failed to load dashboard: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.StoreError(err))
	}
	return c.JSON(http.StatusOK, dashboard)
}

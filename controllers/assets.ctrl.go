package controllers

import (
	"net/http"

	"github.com/getbrick/brickhub.go/lib/responses"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// AssetsController : AssetsController struct
type AssetsController struct {
	svc *service.BrickhubService
}

func NewAssetsController(svc *service.BrickhubService) *AssetsController {
	return &AssetsController{svc: svc}
}

// Assets : Asset catalog Controller
func (controller *AssetsController) Assets(c echo.Context) error {
	assets, err := controller.svc.ListAssets(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Failed to list assets: %v", err)
		return c.JSON(http.StatusInternalServerError, responses.StoreError(err))
	}
	return c.JSON(http.StatusOK, assets)
}

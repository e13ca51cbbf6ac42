package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getbrick/brickhub.go/lib/responses"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

// InvestController : Invest controller struct
type InvestController struct {
	svc *service.BrickhubService
}

func NewInvestController(svc *service.BrickhubService) *InvestController {
	return &InvestController{svc: svc}
}

type InvestRequestBody struct {
	AssetID     int64 `json:"assetId" validate:"required,gt=0"`
	TokensToBuy int64 `json:"tokensToBuy" validate:"required,gt=0"`
}

type InvestResponseBody struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    *service.InvestResult `json:"data"`
}

// Invest : Invest Controller
func (controller *InvestController) Invest(c echo.Context) error {
	reqBody := InvestRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load invest request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid invest request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result, err := controller.svc.Invest(c.Request().Context(), reqBody.AssetID, reqBody.TokensToBuy)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssetNotFound):
			return c.JSON(http.StatusBadRequest, responses.AssetNotFoundError)
		case errors.Is(err, service.ErrNotEnoughTokens):
			return c.JSON(http.StatusBadRequest, responses.NotEnoughTokensError)
		case errors.Is(err, service.ErrInsufficientBalance):
			return c.JSON(http.StatusBadRequest, responses.NotEnoughBalanceError)
		}
		c.Logger().Errorf("Investment failed asset_id:%v error: %v", reqBody.AssetID, err)
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.StoreError(err))
	}

	return c.JSON(http.StatusOK, &InvestResponseBody{
		Success: true,
		Message: fmt.Sprintf("Purchased %d tokens", reqBody.TokensToBuy),
		Data:    result,
	})
}

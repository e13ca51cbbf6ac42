package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body returned to clients. Business rejections
// carry only the error message; infrastructure failures also carry details.
type ErrorResponse struct {
	Error          string `json:"error"`
	Details        string `json:"details,omitempty"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          "Valid assetId and tokensToBuy are required",
	HttpStatusCode: 400,
}

var AssetNotFoundError = ErrorResponse{
	Error:          "Asset not found",
	HttpStatusCode: 400,
}

var NotEnoughTokensError = ErrorResponse{
	Error:          "Not enough tokens available",
	HttpStatusCode: 400,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          "Insufficient wallet balance",
	HttpStatusCode: 400,
}

// StoreError wraps an unexpected store failure into a 500 response.
func StoreError(err error) ErrorResponse {
	return ErrorResponse{
		Error:          "database error",
		Details:        err.Error(),
		HttpStatusCode: 500,
	}
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}

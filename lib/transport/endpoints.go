package transport

import (
	"github.com/getbrick/brickhub.go/controllers"
	"github.com/getbrick/brickhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.BrickhubService, e *echo.Echo, strictRateLimitMiddleware echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/dashboard", controllers.NewDashboardController(svc).Dashboard, logMw)
	e.GET("/assets", controllers.NewAssetsController(svc).Assets, logMw)
	// the only mutating endpoint gets the strict rate limit
	e.POST("/invest", controllers.NewInvestController(svc).Invest, strictRateLimitMiddleware, logMw)
}

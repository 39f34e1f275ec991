// File: internal/router/router.go
package router

import (
	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/database"
	"pizza-delivery/internal/events"
	"pizza-delivery/internal/handler"
	"pizza-delivery/internal/handler/auth"
	"pizza-delivery/internal/handler/orders"
	"pizza-delivery/internal/metrics"
	"pizza-delivery/internal/middleware"
	"pizza-delivery/internal/service"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, tc service.TokenConfig, pub events.Publisher) {
	requireAuth := middleware.RequireAuth(tc)

	// 健康檢查與指標
	e.GET("/ping", handler.PingHandler(db, cch))
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// 註冊、登入、換發 token
	apiAuth := e.Group("/auth")
	apiAuth.GET("/", auth.HelloHandler(), requireAuth)
	apiAuth.POST("/signup", auth.SignupHandler(db))
	apiAuth.POST("/login", auth.LoginHandler(db, cch, tc))
	apiAuth.GET("/refresh", auth.RefreshHandler(db, cch, tc))

	// 訂單；staff 與擁有者的權限由 service 判斷
	apiOrder := e.Group("/order")
	apiOrder.GET("/", orders.HelloHandler(), requireAuth)
	apiOrder.POST("/order", orders.PlaceOrderHandler(db, pub), requireAuth)
	apiOrder.GET("/order", orders.ListOrdersHandler(db), requireAuth)
	apiOrder.GET("/order/:id", orders.GetOrderHandler(db), requireAuth)
	apiOrder.GET("/user/order", orders.ListMyOrdersHandler(db), requireAuth)
	apiOrder.GET("/user/order/:id", orders.GetMyOrderHandler(db), requireAuth)
	apiOrder.PUT("/order/update/:id", orders.UpdateOrderHandler(db, pub), requireAuth)
	apiOrder.GET("/order/update/:id", orders.UpdateOrderHandler(db, pub), requireAuth)
	apiOrder.PATCH("/order/update/:id", orders.UpdateOrderStatusHandler(db, pub), requireAuth)
	apiOrder.DELETE("/order/delete/:id/", orders.DeleteOrderHandler(db, pub), requireAuth)
}

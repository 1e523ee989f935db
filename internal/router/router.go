package router // package router registers the HTTP routes of the admin API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/config"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/handler"
	"github.com/aysha-dheesan-banu/hospital-managelment-system/internal/middleware"
)

// Register wires every route of the admin API onto the Echo instance.
//
// The CRUD groups under /v1 are deliberately unauthenticated: the admin
// console is the only intended caller and authentication is handled by the
// deployment perimeter.  /v1/auth/login and /v1/me exist for external UIs
// that need to verify the credentials maintained here.
func Register(e *echo.Echo, admin *handler.AdminHandler, auth *handler.AuthHandler, rdb *redis.Client, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	v1.Use(middleware.ListCache(config.LoadCacheConfig(), rdb))

	v1.GET("/hospitals", admin.ListHospitals)
	v1.GET("/hospitals/:id", admin.GetHospital)
	v1.POST("/hospitals", admin.CreateHospital)
	v1.PUT("/hospitals/:id", admin.UpdateHospital)
	v1.DELETE("/hospitals/:id", admin.DeleteHospital)

	v1.GET("/roles", admin.ListRoles)
	v1.GET("/roles/:id", admin.GetRole)
	v1.POST("/roles", admin.CreateRole)
	v1.PUT("/roles/:id", admin.UpdateRole)
	v1.DELETE("/roles/:id", admin.DeleteRole)

	v1.GET("/users", admin.ListUsers)
	v1.GET("/users/:id", admin.GetUser)
	v1.POST("/users", admin.CreateUser)
	v1.PUT("/users/:id", admin.UpdateUser)
	v1.DELETE("/users/:id", admin.DeleteUser)

	v1.GET("/doctors", admin.ListDoctors)
	v1.GET("/doctors/:id", admin.GetDoctor)
	v1.POST("/doctors", admin.CreateDoctor)
	v1.PUT("/doctors/:id", admin.UpdateDoctor)
	v1.DELETE("/doctors/:id", admin.DeleteDoctor)

	v1.POST("/auth/login", auth.Login)

	me := e.Group("/v1/me")
	me.Use(middleware.JWTAuth(jwtSecret))
	me.GET("", auth.Me)
}

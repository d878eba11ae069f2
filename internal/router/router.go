// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/examhall/seatwise/internal/config"
	"github.com/examhall/seatwise/internal/handler"
	"github.com/examhall/seatwise/internal/middleware"
	"github.com/examhall/seatwise/internal/repository"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes. Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid access token.
// Logout deliberately skips the JWT middleware so an expired session can
// still revoke its refresh token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleAdmin, repository.RoleViewer),
	)
	auth.GET("/me", a.Me)
}

// RegisterSeating registers the hall, seat, student, department and report
// endpoints. Reads are open to both roles and sit behind the Redis response
// cache; mutations require ADMIN. The token-bucket limiter covers the whole
// /v1 surface.
func RegisterSeating(
	e *echo.Echo,
	halls *handler.HallHandler,
	seats *handler.SeatHandler,
	students *handler.StudentHandler,
	departments *handler.DepartmentHandler,
	reports *handler.ReportHandler,
	jwtSecret string,
	cacheCfg config.CacheConfig,
	rlCfg config.RateLimitConfig,
	rdb *redis.Client,
) {
	limiter := middleware.NewTokenBucket(rlCfg, rdb)
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	read := e.Group("/v1",
		limiter,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleAdmin, repository.RoleViewer),
		cache,
	)
	read.GET("/halls", halls.List)
	read.GET("/halls/:id", halls.Get)
	read.GET("/halls/:id/seats", halls.Seats)
	read.GET("/students", students.List)
	read.GET("/students/search", students.Search)
	read.GET("/students/assigned-registers", students.AssignedRegisters)
	read.GET("/departments", departments.List)
	read.GET("/reports/assignments", reports.Assignments)

	write := e.Group("/v1",
		limiter,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(repository.RoleAdmin),
	)
	write.POST("/halls", halls.Create)
	write.DELETE("/halls/:id", halls.Delete)
	write.PUT("/halls/:id/seats", seats.Update)
	write.POST("/halls/:id/seats/assign", seats.Assign)
	write.POST("/halls/:id/seats/clear", seats.Clear)
	write.POST("/students", students.Create)
	write.POST("/students/bulk", students.Bulk)
	write.POST("/students/import", students.Import)
	write.DELETE("/students/:id", students.Delete)
	write.POST("/departments", departments.Create)
	write.DELETE("/departments/:id", departments.Delete)
}

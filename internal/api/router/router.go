package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"turnusplan/backend/config"
	"turnusplan/backend/internal/api/handler"
	"turnusplan/backend/internal/api/middleware"
	"turnusplan/backend/pkg/jwt"
	"turnusplan/backend/pkg/redis"
)

const (
	maxBodyBytes   = 6 << 20 // absence calendar uploads stay under 5MB
	loginRateLimit = 10
	loginRateWin   = time.Minute
)

// Setup builds the gin engine and registers every route.
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// liveness and diagnostics
	r.GET("/", h.System.Root)
	r.GET("/test", h.System.Test)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWin), h.Auth.Login)

			authed := auth.Group("", middleware.JWTAuth(jwtMgr, rdb))
			{
				authed.POST("/logout", h.Auth.Logout)
				authed.GET("/me", h.Auth.GetCurrentUser)
			}
		}

		api.POST("/municipalities", h.Org.CreateMunicipality)
		api.GET("/municipalities", h.Org.ListMunicipalities)

		api.POST("/departments", h.Org.CreateDepartment)
		api.GET("/departments", h.Org.ListDepartments)

		// gin requires one wildcard name per position, so :id carries the
		// department id on the list route and the employee id elsewhere
		api.POST("/employees", h.Employee.Create)
		api.GET("/employees/:id", h.Employee.ListByDepartment)
		api.PUT("/employees/:id/preferences", h.Employee.UpdatePreferences)
		api.POST("/employees/:id/absences/import", h.Employee.ImportAbsences)

		api.POST("/ai/interpret", h.Interpret.Interpret)

		api.POST("/schedule/generate", h.Schedule.Generate)
		api.GET("/schedule/:department_id/:year/:month", h.Schedule.Get)
		api.GET("/schedule/:department_id/:year/:month/export", h.Schedule.Export)
	}

	return r
}

// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orgdesk/orgdesk/controller"
	"github.com/orgdesk/orgdesk/middleware"
	"github.com/orgdesk/orgdesk/service"
)

func SetupRouter(
	controllers *controller.Controllers,
	sessions service.ISessionService,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	public := router.Group("/api")
	controllers.Session.RegisterPublicRoutes(public)

	api := router.Group("/api")
	api.Use(middleware.SessionAuth(sessions))

	controllers.Session.RegisterRoutes(api)
	controllers.Navigation.RegisterRoutes(api)
	controllers.Resource.RegisterRoutes(api)
	controllers.Leave.RegisterRoutes(api)
	controllers.Dashboard.RegisterRoutes(api)

	return router
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/binzaridot/binzari-backend/config"
	"github.com/binzaridot/binzari-backend/internal/app/controller"
	"github.com/binzaridot/binzari-backend/internal/middleware"
)

type Router struct {
	authController        *controller.AuthController
	mapController         *controller.MapController
	collegeAuthController *controller.CollegeAuthController
	dashboardController   *controller.DashboardController
	storeController       *controller.StoreController
	partnerController     *controller.PartnerController
	partnershipController *controller.PartnershipController
	authMiddleware        *middleware.AuthMiddleware
	uploadMiddleware      *middleware.UploadMiddleware
	config                *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	mapController *controller.MapController,
	collegeAuthController *controller.CollegeAuthController,
	dashboardController *controller.DashboardController,
	storeController *controller.StoreController,
	partnerController *controller.PartnerController,
	partnershipController *controller.PartnershipController,
	authMiddleware *middleware.AuthMiddleware,
	uploadMiddleware *middleware.UploadMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:        authController,
		mapController:         mapController,
		collegeAuthController: collegeAuthController,
		dashboardController:   dashboardController,
		storeController:       storeController,
		partnerController:     partnerController,
		partnershipController: partnershipController,
		authMiddleware:        authMiddleware,
		uploadMiddleware:      uploadMiddleware,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "BINZARI API is running",
		})
	})

	// Uploaded images are served statically under the same paths their
	// public URLs point at.
	router.Static("/uploads/users", r.config.Upload.UsersDir)
	router.Static("/uploads/partners", r.config.Upload.PartnersDir)

	api := router.Group("/api")
	{
		api.POST("/login", r.authController.Login)
		api.GET("/refresh", r.authMiddleware.AuthenticateRefresh(), r.authController.Refresh)
		api.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		api.GET("/getUserCollege", r.authMiddleware.Authenticate(), r.authController.GetUserCollege)

		api.GET("/map", r.authMiddleware.AuthenticateWhenPresent(), r.mapController.Page)
		api.POST("/logUserClick", r.authMiddleware.Authenticate(), r.mapController.LogClick)

		api.POST("/college-auth/request",
			r.authMiddleware.Authenticate(),
			r.uploadMiddleware.SaveUserImage(),
			r.collegeAuthController.Request,
		)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.POST("/login", r.dashboardController.Login)

		authed := dashboard.Group("")
		authed.Use(r.authMiddleware.Authenticate())
		{
			authed.GET("/main", r.dashboardController.Main)
			authed.PATCH("/college_auths/:user_id", r.collegeAuthController.Decide)

			authed.POST("/stores", r.storeController.Create)
			authed.PUT("/stores/:id", r.storeController.Update)
			authed.DELETE("/stores/:id", r.storeController.Delete)

			authed.POST("/partners",
				r.uploadMiddleware.SavePartnerImage(),
				r.partnerController.Create,
			)
			authed.PUT("/partners/:id",
				r.uploadMiddleware.SavePartnerImage(),
				r.partnerController.Update,
			)
			authed.DELETE("/partners/:id", r.partnerController.Delete)

			authed.POST("/partnerships", r.partnershipController.Create)
			authed.PUT("/partnerships/:id", r.partnershipController.Update)
			authed.DELETE("/partnerships/:id", r.partnershipController.Delete)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

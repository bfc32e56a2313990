package http

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/sm8ta/webike_theft_registry/internal/config"
	"github.com/sm8ta/webike_theft_registry/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

type Handlers struct {
	Bike        *BikeHandler
	Report      *ReportHandler
	Alert       *AlertHandler
	Search      *SearchHandler
	Achievement *AchievementHandler
	Profile     *ProfileHandler
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	profileService ports.ProfileService,
	searchLimiter *IPRateLimiter,
	logger ports.LoggerPort,
	h Handlers,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Binding errors report json field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				name = strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			}
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS
	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := AuthMiddleware(tokenService, profileService, logger)

	// Bikes routes
	bikes := router.Group("/bikes")
	bikes.Use(auth)
	{
		bikes.GET("", h.Bike.ListBikes)
		bikes.POST("", h.Bike.RegisterBike)
		bikes.GET("/available", h.Bike.ListAvailableBikes)
		bikes.GET("/:id", h.Bike.GetBike)
		bikes.PATCH("/:id", h.Bike.UpdateBike)
		bikes.POST("/:id/images", h.Bike.AttachImages)
	}

	// Theft reports routes
	reports := router.Group("/reports")
	reports.Use(auth)
	{
		reports.GET("", h.Report.ListReports)
		reports.POST("", h.Report.FileReport)
		reports.GET("/:id", h.Report.GetReport)
		reports.PATCH("/:id/resolve", h.Report.ResolveReport)
	}

	// Alerts routes
	alerts := router.Group("/alerts")
	alerts.Use(auth)
	{
		alerts.GET("", h.Alert.ListAlerts)
		alerts.PATCH("/:id/read", h.Alert.MarkRead)
	}

	// Public search
	search := router.Group("/search")
	if searchLimiter != nil {
		search.Use(searchLimiter.Middleware())
	}
	search.GET("", h.Search.Search)

	// Badges and achievements routes
	badges := router.Group("/badges")
	{
		badges.GET("", h.Achievement.ListBadges)
		badges.GET("/:id", h.Achievement.GetBadge)
		badges.POST("", auth, AdminOnly(), h.Achievement.CreateBadge)
	}
	achievements := router.Group("/achievements")
	achievements.Use(auth)
	{
		achievements.GET("", h.Achievement.ListAchievements)
		achievements.POST("/check", h.Achievement.CheckAchievements)
	}

	// Profile routes
	profile := router.Group("/profile")
	profile.Use(auth)
	{
		profile.GET("", h.Profile.GetProfile)
		profile.PATCH("", h.Profile.UpdateProfile)
		profile.POST("/password", h.Profile.ChangePassword)
	}

	return &Router{router: router}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}

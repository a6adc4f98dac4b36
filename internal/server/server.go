package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gbenitez/multatrack/config"
	"github.com/gbenitez/multatrack/internal/handlers"
	"github.com/gbenitez/multatrack/internal/logger"
	"github.com/gbenitez/multatrack/internal/middleware"
)

func Start() error {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info("server listening", zap.String("port", port))
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/v1")
	{
		public.POST("/login", handlers.Login)
		public.POST("/logout", handlers.Logout)
		public.GET("/status", handlers.Status)
		public.GET("/check", handlers.CheckSession)
	}

	protected := r.Group("/v1")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/dashboard-stats", handlers.DashboardStats)

		drivers := protected.Group("/drivers")
		{
			drivers.GET("", handlers.ListDrivers)
			drivers.POST("", handlers.CreateDriver)
			drivers.GET("/search/:dni", handlers.SearchDriver)
			drivers.DELETE("/:id", handlers.DeleteDriver)
		}

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", handlers.ListVehicles)
			vehicles.POST("", handlers.CreateVehicle)
			vehicles.GET("/search/:plate", handlers.SearchVehicle)
			vehicles.DELETE("/:id", handlers.DeleteVehicle)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.GET("", handlers.ListTickets)
			tickets.POST("", handlers.CreateTicket)
			tickets.POST("/:id/pay", handlers.PayTicket)
			tickets.GET("/driver/:dni", handlers.ListTicketsByDriver)
			tickets.GET("/suggestions", handlers.TicketSuggestions)
		}
	}
}

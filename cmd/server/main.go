package main

import (
	"log"
	"strconv"
	"time"

	"contest-backend/internal/clock"
	"contest-backend/internal/config"
	"contest-backend/internal/database"
	"contest-backend/internal/handlers"
	"contest-backend/internal/middleware"
	"contest-backend/internal/scheduler"
	"contest-backend/internal/services"
	"contest-backend/internal/store"
	"contest-backend/internal/ws"

	_ "contest-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Weekly Contest API
// @version         1.0
// @description     Weekly contest scheduler and participation ledger
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	clk := clock.System()
	storeTimeout := parseSeconds(cfg.StoreTimeout, 5)
	contests := store.NewContestStore(db, clk, storeTimeout)
	ledger := store.NewParticipationLedger(db, clk, storeTimeout)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	participationService := services.NewParticipationService(contests, ledger, clk, hub)
	queryService := services.NewQueryService(contests, ledger)

	tickInterval := parseSeconds(cfg.TickInterval, 60)
	windowDays, _ := strconv.Atoi(cfg.ContestWindowDays)
	if windowDays <= 0 {
		windowDays = 7
	}
	engine := scheduler.NewEngine(contests, clk, tickInterval, time.Duration(windowDays)*24*time.Hour)
	engine.Start()
	defer engine.Stop()

	authHandler := handlers.NewAuthHandler(authService)
	contestHandler := handlers.NewContestHandler(queryService, participationService)
	schedulerHandler := handlers.NewSchedulerHandler(engine)
	adminHandler := handlers.NewAdminHandler(contests)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-API-Key"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/contests/:id", wsHandler.HandleWebSocket)
	r.GET("/scheduler/status", schedulerHandler.GetStatus)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	weekly := r.Group("/contests/weekly")
	{
		weekly.GET("/current", contestHandler.GetCurrent)
		weekly.GET("/stats", contestHandler.GetStats)
		weekly.GET("/history", contestHandler.GetHistory)
		weekly.POST("/participate", middleware.JWTAuth(authService), contestHandler.Participate)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.AdminAPIKey))
	{
		admin.GET("/contests", adminHandler.ListContests)
		admin.PUT("/contests/:id", adminHandler.UpdateContest)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func parseSeconds(val string, fallback int) time.Duration {
	sec, err := strconv.Atoi(val)
	if err != nil || sec <= 0 {
		sec = fallback
	}
	return time.Duration(sec) * time.Second
}

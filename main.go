package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	apirest "github.com/statforge/habitquest/api/rest"
	"github.com/statforge/habitquest/audit"
	"github.com/statforge/habitquest/cache"
	"github.com/statforge/habitquest/config"
	dbadapter "github.com/statforge/habitquest/db"
	"github.com/statforge/habitquest/game/rollover"
	mw "github.com/statforge/habitquest/middleware"
	"github.com/statforge/habitquest/model"
	"github.com/statforge/habitquest/scheduler"
	"github.com/statforge/habitquest/store"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	cfgPath := "config/config.yaml"
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// ---- Logger ----
	var logger *zap.Logger
	var logErr error
	if cfg.Server.Debug {
		logger, logErr = zap.NewDevelopment()
	} else {
		logger, logErr = zap.NewProduction()
	}
	if logErr != nil {
		log.Fatalf("logger: %v", logErr)
	}
	defer logger.Sync()

	if cfg.Security.JWTSecret == "" {
		logger.Warn("security.jwt_secret is not set; tokens are signed with an empty key")
	}

	// ---- Database ----
	db, err := dbadapter.Open(cfg.Database)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	logger.Info("DB initialized", zap.String("mode", cfg.Database.Mode))

	// ---- Cache ----
	c, err := cache.New(cache.Config{
		RedisAddr:       cfg.Cache.RedisAddr,
		RedisPassword:   cfg.Cache.RedisPassword,
		RedisDB:         cfg.Cache.RedisDB,
		LocalGCInterval: cfg.Cache.LocalGCInterval,
	})
	if err != nil {
		log.Fatalf("cache: %v", err)
	}
	logger.Info("Cache initialized")

	// ---- Audit ----
	auditSvc := audit.New(db, logger)
	defer auditSvc.Stop(context.Background())

	// ---- Stores ----
	chars := store.NewCharacters(db, c, cfg.Cache.CharacterTTL, logger)
	avatars := store.NewAvatars(db)

	// ---- Scheduler: day rollover ----
	sched := scheduler.New(logger)
	defer sched.Stop()
	roll := rollover.New(chars, logger)
	sched.AddTicker("daily_rollover", cfg.Game.RolloverInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		roll.Run(ctx, time.Now())
	})

	// ---- Gin HTTP Server ----
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(mw.TraceID(), mw.Logger(logger), mw.Recovery(logger))
	r.Use(mw.RateLimit(rate.Limit(cfg.Security.RateLimitRPS), cfg.Security.RateLimitBurst))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	authH := apirest.NewAuthHandler(db, c, chars, auditSvc, cfg.Security)
	charH := apirest.NewCharacterHandler(chars, auditSvc, cfg.Game)
	taskH := apirest.NewTaskHandler(chars, auditSvc)
	avatarH := apirest.NewAvatarHandler(avatars)
	quizH := apirest.NewQuizHandler()

	api := r.Group("/api")
	{
		authG := api.Group("/auth")
		authG.POST("/signup", authH.Signup)
		authG.POST("/login", authH.Login)
		authG.POST("/logout", mw.Auth(cfg.Security, c), authH.Logout)

		// Question sets are public: the quiz runs before a character exists.
		api.GET("/quiz/:stat", quizH.Questions)

		charG := api.Group("/character")
		charG.Use(mw.Auth(cfg.Security, c))
		charG.GET("", charH.Get)
		charG.POST("", charH.Create)
		charG.GET("/stats", charH.Stats)
		charG.POST("/habits", taskH.AddHabit)
		charG.POST("/habits/:id/toggle", taskH.ToggleHabit)
		charG.POST("/dailies", taskH.AddDaily)
		charG.POST("/dailies/:id/complete", taskH.CompleteDaily)
		charG.POST("/todos", taskH.AddTodo)
		charG.POST("/todos/:id/complete", taskH.CompleteTodo)

		avatarG := api.Group("/avatar")
		avatarG.Use(mw.Auth(cfg.Security, c))
		avatarG.GET("", avatarH.Get)
		avatarG.POST("", avatarH.Save)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

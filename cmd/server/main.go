package main

import (
	"fmt"

	"medconsult/internal/app/config"
	"medconsult/internal/app/dsn"
	"medconsult/internal/app/handler"
	"medconsult/internal/app/middleware"
	"medconsult/internal/app/pkg/auth"
	"medconsult/internal/app/pkg/storage"
	"medconsult/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	repo := repository.New(db)

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)
	sessionSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer sessionSvc.Close()

	minioBase := fmt.Sprintf("http://%s:%s", cfg.MinIOHost, cfg.MinIOPort)
	store, err := storage.NewMinIO(
		fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort),
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket,
		false, minioBase,
	)
	if err != nil {
		log.Fatalf("failed to connect minio: %v", err)
	}

	h := handler.NewHandler(repo, cfg, jwtSvc, sessionSvc, store)
	authSvc := &middleware.AuthService{JWT: jwtSvc, Session: sessionSvc}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	h.RegisterHandler(router, authSvc)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.Infof("server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1) Config
	_ = godotenv.Load()

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// 2) DB
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "quiz.db"
	}
	db, err := OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// 3) Seed (if empty)
	if isEmpty, _ := IsQuestionTableEmpty(db); isEmpty {
		path := "data/questions.json"
		if _, err := os.Stat(path); err == nil {
			if err := SeedFromJSON(db, path); err != nil {
				log.Fatalf("seed: %v", err)
			}
			log.Printf("Seeded questions from %s", path)
		} else {
			log.Printf("No seed file at %s; running with empty DB", path)
		}
	}

	// 4) Router
	r := gin.Default()

	// --- CORS: allow the configured frontend + any localhost:port ---
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if frontendOrigin != "" && origin == frontendOrigin {
				return true
			}
			// allow any http://localhost:PORT during development
			return strings.HasPrefix(origin, "http://localhost:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Optional health check
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// --- API routes ---
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", Register(db, secret))
		auth.POST("/login", Login(db, secret))
		auth.GET("/me", RequireAuth(db, secret), GetMe())

		questions := api.Group("/questions", RequireAuth(db, secret))
		questions.GET("/next", NextQuestion(db))
		questions.POST("/:id/answer", SubmitAnswer(db))

		progress := api.Group("/progress", RequireAuth(db, secret))
		progress.GET("/dashboard", Dashboard(db))
	}

	// --- Server ---
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Listening on :%s (FrontendOrigin=%s)", port, frontendOrigin)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("run: %v", err)
	}
}

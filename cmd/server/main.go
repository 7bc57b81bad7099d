package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/enotalexnot/ztk-catalog/internal/auth"
	"github.com/enotalexnot/ztk-catalog/internal/config"
	"github.com/enotalexnot/ztk-catalog/internal/server"
	"github.com/enotalexnot/ztk-catalog/internal/store"
	"github.com/enotalexnot/ztk-catalog/internal/upload"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := st.Seed(); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	srv := server.New(st, auth.NewService(st), upload.NewHandler(cfg.UploadDir), cfg)
	r := srv.SetupRouter()

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

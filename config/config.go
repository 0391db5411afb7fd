package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gourmet-express/api/models"
)

type Config struct {
	Port                     string
	GinMode                  string
	Environment              string
	JWTSecret                string
	AccessTokenExpireMinutes int
	CORSAllowOrigins         []string
	DatabaseDSN              string
}

// Load reads settings from the environment, with a .env file as fallback.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
	return Config{
		Port:                     getEnv("PORT", "8080"),
		GinMode:                  getEnv("GIN_MODE", ""),
		Environment:              getEnv("ENVIRONMENT", "local"),
		JWTSecret:                getEnv("SECRET_KEY", "dev-secret-key-change-me"),
		AccessTokenExpireMinutes: getIntEnv("ACCESS_TOKEN_EXPIRE_MINUTES", 60),
		CORSAllowOrigins:         strings.Split(getEnv("CORS_ALLOW_ORIGINS", "*"), ","),
		DatabaseDSN:              getEnv("DATABASE_DSN", "file::memory:?cache=shared"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// InitDB opens the database, migrates the schema and seeds the demo catalog.
// The default DSN keeps everything memory-resident; pointing it at a file is
// the seam for real persistence.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.IssuedToken{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Subscription{},
	); err != nil {
		return nil, err
	}
	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Seed loads the demo restaurants and menu items. It is a no-op when the
// catalog already has rows.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	restaurants := []models.Restaurant{
		{ID: "r_1", Name: "Pasta Palace", Cuisine: "Italian", Rating: 4.7, IsOpen: true},
		{ID: "r_2", Name: "Sushi Central", Cuisine: "Japanese", Rating: 4.6, IsOpen: true},
		{ID: "r_3", Name: "Spice Route", Cuisine: "Indian", Rating: 4.5, IsOpen: true},
	}
	items := []models.MenuItem{
		{ID: "m_1", RestaurantID: "r_1", Name: "Spaghetti Carbonara", Price: 12.5, Available: true},
		{ID: "m_2", RestaurantID: "r_1", Name: "Margherita Pizza", Price: 10.0, Available: true},
		{ID: "m_3", RestaurantID: "r_2", Name: "Salmon Nigiri", Price: 8.0, Available: true},
		{ID: "m_4", RestaurantID: "r_2", Name: "California Roll", Price: 7.5, Available: true},
		{ID: "m_5", RestaurantID: "r_3", Name: "Butter Chicken", Price: 13.0, Available: true},
		{ID: "m_6", RestaurantID: "r_3", Name: "Paneer Tikka", Price: 11.0, Available: true},
	}

	if err := db.Create(&restaurants).Error; err != nil {
		return err
	}
	return db.Create(&items).Error
}

package config

import (
	"os"

	"cafe-orders-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// AdminEmail is the single identity allowed on the admin surface.
var AdminEmail string

// Razorpay credentials for the hosted checkout.
var RazorpayKeyID string
var RazorpayKeySecret string

// MenuFile is the static catalog definition loaded at boot.
var MenuFile string

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and resolves all configuration values.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", "cafe_orders_super_secret_2024"))
	AdminEmail = getEnv("ADMIN_EMAIL", "admin@mamascafe.in")
	RazorpayKeyID = os.Getenv("RAZORPAY_KEY_ID")
	RazorpayKeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	MenuFile = getEnv("MENU_FILE", "menu.yaml")
}

// Open connects to a sqlite database and migrates all persisted models.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.OrderLine{},
		&models.OrderStatusHistory{},
	)
}

func InitDB() {
	var err error
	DB, err = Open(getEnv("DB_PATH", "cafe_orders.db"))
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	logrus.Println("✅ Database connected and migrated successfully")
}

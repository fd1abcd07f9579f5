package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backoffice/models"
)

var DB *gorm.DB

// DBConfig is populated from the environment (optionally via a .env file).
type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	Name     string `envconfig:"DB_NAME" default:"backoffice"`
}

func Connection() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment as-is")
	}

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("invalid database configuration")
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}

	DB = db
}

package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jarodreyes/prize-survey/internal/config"
	"github.com/jarodreyes/prize-survey/internal/models"
)

// Connect opens the postgres store. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey at write sites.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	log.Println("database connected")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Session{},
		&models.Participant{},
		&models.Response{},
		&models.ActivityEntry{},
	); err != nil {
		return err
	}
	log.Println("database migrated")
	return nil
}

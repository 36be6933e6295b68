package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/anjiri1684/kids_learning/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database url is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), Options())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

// Options is the gorm configuration shared by the server and the test helpers.
func Options() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 NewLogger(),
	}
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Parent{},
		&models.Child{},
		&models.Lesson{},
		&models.Module{},
		&models.Test{},
		&models.Question{},
		&models.MultipleChoice{},
		&models.Option{},
		&models.FillInTheBlank{},
		&models.PhotoQuestion{},
		&models.TestResult{},
		&models.LessonCompletion{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("✅ Database migration successful")
	return nil
}

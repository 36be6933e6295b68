package database_test

import (
	"testing"

	"github.com/anjiri1684/kids_learning/database"
	"github.com/anjiri1684/kids_learning/database/dbtest"
	"github.com/anjiri1684/kids_learning/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormLogger "gorm.io/gorm/logger"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := dbtest.New(t)

	for _, model := range []interface{}{
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
	} {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
	assert.True(t, db.Migrator().HasIndex(&models.LessonCompletion{}, "idx_completion_child_lesson"))
}

func TestConnectDBRejectsEmptyURL(t *testing.T) {
	_, err := database.ConnectDB("")
	require.Error(t, err)
}

func TestLoggerLogModeReturnsCopy(t *testing.T) {
	base := database.NewLogger()
	silent := base.LogMode(gormLogger.Silent)

	assert.Equal(t, gormLogger.Warn, base.(*database.Logger).LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.(*database.Logger).LogLevel)
}

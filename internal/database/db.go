package database

import (
	"github.com/campushire/campushire/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection and runs migrations. TranslateError
// lets callers match gorm.ErrDuplicatedKey instead of driver error codes.
func Connect(dsn string, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connection established")

	logger.Info("Running Migrations...")
	if err := Migrate(db); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}
	return db
}

// Migrate creates/updates the schema for every model. Shared with the tests,
// which run it against in-memory SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.CompanySocialLink{},
		&models.CompanyJob{},
		&models.JobType{},
		&models.JobBenefit{},
		&models.JobLanguage{},
		&models.JobShift{},
		&models.JobQuestion{},
		&models.JobApplication{},
		&models.Profile{},
		&models.Education{},
		&models.Experience{},
		&models.Certification{},
		&models.Skill{},
		&models.UserSkill{},
		&models.University{},
		&models.Department{},
		&models.Program{},
		&models.Facility{},
		&models.Placement{},
		&models.Ranking{},
		&models.ResearchWork{},
	)
}

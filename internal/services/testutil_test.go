package services

import (
	"fmt"
	"testing"

	"github.com/campushire/campushire/internal/database"
	"github.com/campushire/campushire/internal/media"
	"github.com/campushire/campushire/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema; no
// external services required.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named in-memory database per test, shared across the pool's
	// connections but isolated between tests.
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", nextUserSeq())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Test " + role,
		Email:        fmt.Sprintf("%s-%d@example.com", role, nextUserSeq()),
		PasswordHash: "x",
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create %s user: %v", role, err)
	}
	return user
}

var userSeq int

func nextUserSeq() int {
	userSeq++
	return userSeq
}

// fakeStore records stored and deleted objects without touching disk.
type fakeStore struct {
	saved   map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: map[string][]byte{}}
}

func (f *fakeStore) Save(filename string, data []byte) (string, error) {
	f.saved[filename] = data
	return "/uploads/" + filename, nil
}

func (f *fakeStore) Delete(url string) error {
	f.deleted = append(f.deleted, url)
	delete(f.saved, url[len("/uploads/"):])
	return nil
}

func newTestMedia(store media.Store) *media.Service {
	return media.NewService(store, zap.NewNop())
}

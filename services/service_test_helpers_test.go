package services

import (
	"fmt"
	"testing"

	"quickly.link/configs/configslog"
	"quickly.link/database"
	"quickly.link/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	configslog.InitLogger()
}

// newTestDB her test için izole bir in-memory veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// In-memory sqlite bağlantı başına ayrı veritabanı açar; havuz tek
	// bağlantıya sabitlenir ki tüm sorgular aynı veriyi görsün.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test Kullanıcısı",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

var cardSeq int

func createTestCard(t *testing.T, db *gorm.DB, status string) *models.Card {
	t.Helper()
	cardSeq++
	card := &models.Card{
		CardUID: fmt.Sprintf("QK-TEST%04d", cardSeq),
		Status:  status,
	}
	require.NoError(t, db.Create(card).Error)
	return card
}

func createTestActivation(t *testing.T, db *gorm.DB, cardID uint, code string) *models.CardActivation {
	t.Helper()
	activation := &models.CardActivation{
		ActivationCode: code,
		CardID:         cardID,
	}
	require.NoError(t, db.Create(activation).Error)
	return activation
}

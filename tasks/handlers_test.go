package tasks

import (
	"context"
	"testing"
	"time"

	"quickly.link/configs/configslog"
	"quickly.link/database"
	"quickly.link/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	configslog.InitLogger()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=private"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrationsInOrder(db))
	return db
}

func TestHandleLinkClick_InsertsAndIncrementsCounter(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "tik@example.com", PasswordHash: "x", FullName: "Tık Testi", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	link := &models.Link{UserID: user.ID, Title: "Takipli", URL: "https://example.com", IsActive: true}
	require.NoError(t, db.Create(link).Error)

	handler := NewHandler(db)
	task, err := NewLinkClickTask(LinkClickPayload{
		LinkID:    link.ID,
		OwnerID:   user.ID,
		Referrer:  "https://google.com",
		ClickedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, handler.HandleLinkClick(context.Background(), task))
	require.NoError(t, handler.HandleLinkClick(context.Background(), task))

	var clickCount int64
	require.NoError(t, db.Model(&models.LinkClick{}).Where("link_id = ?", link.ID).Count(&clickCount).Error)
	assert.EqualValues(t, 2, clickCount)

	var stored models.Link
	require.NoError(t, db.First(&stored, link.ID).Error)
	assert.Equal(t, 2, stored.ClicksCount)
}

func TestHandleLinkClick_DeletedLinkKeepsClickRecord(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "silinmis@example.com", PasswordHash: "x", FullName: "Silinmiş Link", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	link := &models.Link{UserID: user.ID, Title: "Kısa Ömürlü", URL: "https://example.com", IsActive: true}
	require.NoError(t, db.Create(link).Error)

	handler := NewHandler(db)
	task, err := NewLinkClickTask(LinkClickPayload{
		LinkID:    link.ID,
		OwnerID:   user.ID,
		ClickedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	// Link kuyruğa yazıldıktan sonra silinmiş: görev hatasız biter,
	// tıklama kaydı yine de tutulur.
	require.NoError(t, db.Delete(link).Error)
	require.NoError(t, handler.HandleLinkClick(context.Background(), task))

	var clickCount int64
	require.NoError(t, db.Model(&models.LinkClick{}).Where("link_id = ?", link.ID).Count(&clickCount).Error)
	assert.EqualValues(t, 1, clickCount)
}

func TestHandlePageView(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "goruntulenme@example.com", PasswordHash: "x", FullName: "Görüntülenme", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	handler := NewHandler(db)
	task, err := NewPageViewTask(PageViewPayload{
		OwnerID:  user.ID,
		Referrer: "https://twitter.com",
		ViewedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NoError(t, handler.HandlePageView(context.Background(), task))

	var viewCount int64
	require.NoError(t, db.Model(&models.PageView{}).Where("user_id = ?", user.ID).Count(&viewCount).Error)
	assert.EqualValues(t, 1, viewCount)
}

func TestHandleLinkClick_MalformedPayload(t *testing.T) {
	db := newTestDB(t)
	handler := NewHandler(db)

	task := asynq.NewTask(TypeLinkClick, []byte("json değil"))
	err := handler.HandleLinkClick(context.Background(), task)
	assert.Error(t, err)
}

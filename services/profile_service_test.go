package services

import (
	"context"
	"testing"

	"quickly.link/models"
	"quickly.link/pkg/pagecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func TestUpdateProfile_SetsUsername(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "profil@example.com")
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	svc := NewProfileService(db, pagecache.NoopInvalidator{})
	err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
		FullName:   "Ayşe Yılmaz",
		Username:   "ayseyilmaz",
		Bio:        "Merhaba!",
		TemplateID: models.TemplateClassic,
	})
	require.NoError(t, err)

	var stored models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&stored).Error)
	require.NotNil(t, stored.Username)
	assert.Equal(t, "ayseyilmaz", *stored.Username)
}

func TestUpdateProfile_UsernameConflict(t *testing.T) {
	db := newTestDB(t)
	first := createTestUser(t, db, "once@example.com")
	second := createTestUser(t, db, "sonra@example.com")
	taken := "kapilmis"
	require.NoError(t, db.Create(&models.Profile{UserID: first.ID, Username: &taken, TemplateID: models.TemplateClassic, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: second.ID, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	svc := NewProfileService(db, pagecache.NoopInvalidator{})
	err := svc.UpdateProfile(context.Background(), second.ID, ProfileInput{
		FullName:   "Deneme",
		Username:   "kapilmis",
		TemplateID: models.TemplateClassic,
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Kendi kullanıcı adını korumak çatışma sayılmaz.
	err = svc.UpdateProfile(context.Background(), first.ID, ProfileInput{
		FullName:   "Aynı Kişi",
		Username:   "kapilmis",
		TemplateID: models.TemplateClassic,
	})
	assert.NoError(t, err)
}

func TestUpdateProfile_UsernameFormat(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "format@example.com")
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	svc := NewProfileService(db, pagecache.NoopInvalidator{})

	for _, bad := range []string{"ab", "boşluk var", "çokuzunkullaniciadi1234567890123", "nokta.li"} {
		err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
			FullName:   "Test",
			Username:   bad,
			TemplateID: models.TemplateClassic,
		})
		assert.ErrorIs(t, err, ErrProfileUsernameInvalid, "username: %q", bad)
	}
}

func TestCheckUsernameAvailability(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "kontrol@example.com")
	taken := "mevcutad"
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Username: &taken, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	other := createTestUser(t, db, "baskasi@example.com")
	svc := NewProfileService(db, pagecache.NoopInvalidator{})

	available, _ := svc.CheckUsernameAvailability(context.Background(), other.ID, "mevcutad")
	assert.False(t, available)

	available, _ = svc.CheckUsernameAvailability(context.Background(), other.ID, "bambaskaad")
	assert.True(t, available)

	// Sahibi kendi adını sorgularsa müsait görünür.
	available, _ = svc.CheckUsernameAvailability(context.Background(), user.ID, "mevcutad")
	assert.True(t, available)
}

func TestGetPublicProfile(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "public@example.com")
	username := "halkaacik"
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Username: &username, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	linkSvc := NewLinkService(db, pagecache.NoopInvalidator{})
	visible, err := linkSvc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Görünür", URL: "https://example.com/gorunur", IsActive: true})
	require.NoError(t, err)
	_, err = linkSvc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Gizli", URL: "https://example.com/gizli", IsActive: false})
	require.NoError(t, err)

	svc := NewProfileService(db, pagecache.NoopInvalidator{})
	profile, links, err := svc.GetPublicProfile(context.Background(), "halkaacik")
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)
	require.Len(t, links, 1)
	assert.Equal(t, visible.ID, links[0].ID)

	// Pasif profil public görünümde bulunamaz.
	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Update("is_active", false).Error)
	_, _, err = svc.GetPublicProfile(context.Background(), "halkaacik")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

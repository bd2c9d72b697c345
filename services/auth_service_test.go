package services

import (
	"context"
	"testing"

	"quickly.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUserAndEmptyProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Yeni@Example.com",
		Password: "cokgizli123",
		FullName: "Yeni Üye",
	})
	require.NoError(t, err)
	assert.Equal(t, "yeni@example.com", user.Email)
	assert.NotEqual(t, "cokgizli123", user.PasswordHash)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Nil(t, profile.Username)
	assert.Equal(t, models.TemplateClassic, profile.TemplateID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "ayni@example.com", Password: "sifre1234", FullName: "Birinci"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "AYNI@example.com", Password: "sifre1234", FullName: "İkinci"})
	assert.ErrorIs(t, err, ErrAuthEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "epostadegil", Password: "sifre1234", FullName: "Test"})
	assert.ErrorIs(t, err, ErrAuthEmailInvalid)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "kisa@example.com", Password: "kisa", FullName: "Test"})
	assert.ErrorIs(t, err, ErrAuthPasswordTooShort)

	_, err = svc.Register(context.Background(), RegisterInput{Email: "isim@example.com", Password: "sifre1234", FullName: " "})
	assert.ErrorIs(t, err, ErrAuthNameTooShort)
}

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register(context.Background(), RegisterInput{Email: "giris@example.com", Password: "dogrusifre1", FullName: "Giriş Testi"})
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), "giris@example.com", "dogrusifre1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Yanlış şifre ve bilinmeyen e-posta aynı hatayı döner.
	_, err = svc.Authenticate(context.Background(), "giris@example.com", "yanlissifre")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
	_, err = svc.Authenticate(context.Background(), "tanimsiz@example.com", "dogrusifre1")
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}

func TestAuthenticate_DisabledAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register(context.Background(), RegisterInput{Email: "pasif@example.com", Password: "sifre1234", FullName: "Pasif Üye"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = svc.Authenticate(context.Background(), "pasif@example.com", "sifre1234")
	assert.ErrorIs(t, err, ErrAuthAccountDisabled)
}

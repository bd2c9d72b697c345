package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"quickly.link/models"
	"quickly.link/pkg/pagecache"
	"quickly.link/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)


func TestActivateCard_Success(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "aktiv@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "ABC123XYZ")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	cardUID, err := svc.ActivateCard(context.Background(), user.ID, "ABC123XYZ")
	require.NoError(t, err)
	assert.Equal(t, card.CardUID, cardUID)

	var updated models.Card
	require.NoError(t, db.First(&updated, card.ID).Error)
	assert.Equal(t, models.CardStatusAssigned, updated.Status)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, user.ID, *updated.AssignedTo)
	assert.NotNil(t, updated.ActivatedAt)

	var activation models.CardActivation
	require.NoError(t, db.Where("activation_code = ?", "ABC123XYZ").First(&activation).Error)
	assert.True(t, activation.IsUsed)
	require.NotNil(t, activation.UserID)
	assert.Equal(t, user.ID, *activation.UserID)
}

func TestActivateCard_CodeTooShort(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "kisa@example.com")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := svc.ActivateCard(context.Background(), user.ID, "AB1")
	assert.ErrorIs(t, err, ErrActivationCodeLength)
}

func TestActivateCard_UnknownCode(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "yok@example.com")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := svc.ActivateCard(context.Background(), user.ID, "HICYOKBUKOD")
	assert.ErrorIs(t, err, ErrInvalidOrUsedCode)
}

func TestActivateCard_UsedCodeIsNotReusable(t *testing.T) {
	db := newTestDB(t)
	first := createTestUser(t, db, "ilk@example.com")
	second := createTestUser(t, db, "ikinci@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "TEKKULLANIM")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := svc.ActivateCard(context.Background(), first.ID, "TEKKULLANIM")
	require.NoError(t, err)

	// Aynı kod ikinci kez bilinmeyen kodla aynı hatayı verir.
	_, err = svc.ActivateCard(context.Background(), second.ID, "TEKKULLANIM")
	assert.ErrorIs(t, err, ErrInvalidOrUsedCode)

	// Kartın sahibi değişmemiştir.
	var updated models.Card
	require.NoError(t, db.First(&updated, card.ID).Error)
	require.NotNil(t, updated.AssignedTo)
	assert.Equal(t, first.ID, *updated.AssignedTo)
}

func TestActivateCard_CardNotInStock(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "stok@example.com")
	card := createTestCard(t, db, models.CardStatusDisabled)
	createTestActivation(t, db, card.ID, "PASIFKART99")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := svc.ActivateCard(context.Background(), user.ID, "PASIFKART99")
	assert.ErrorIs(t, err, ErrCardNotAvailable)

	// Bilet kullanılmamış kalır, tekrar denenebilir.
	var activation models.CardActivation
	require.NoError(t, db.Where("activation_code = ?", "PASIFKART99").First(&activation).Error)
	assert.False(t, activation.IsUsed)
}

func TestActivateCard_InvalidCodeLeavesNoTrace(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "iz@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "DOGRUKOD123")

	svc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := svc.ActivateCard(context.Background(), user.ID, "YANLISKOD99")
	require.ErrorIs(t, err, ErrInvalidOrUsedCode)

	var updated models.Card
	require.NoError(t, db.First(&updated, card.ID).Error)
	assert.Equal(t, models.CardStatusInStock, updated.Status)
	assert.Nil(t, updated.AssignedTo)
}

// failingActivationRepo MarkUsed adımını bilerek patlatır; telafi
// yazmasının kartı eski haline döndürdüğünü doğrulamak için kullanılır.
type failingActivationRepo struct {
	repositories.ICardActivationRepository
}

func (f *failingActivationRepo) MarkUsed(ctx context.Context, id uint, userID uint, usedAt time.Time) error {
	return errors.New("bilet güncellenemedi")
}

func TestActivateCard_CompensationRestoresCard(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "telafi@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "TELAFI12345")

	svc := &CardService{
		repo:           repositories.NewCardRepository(db),
		activationRepo: &failingActivationRepo{repositories.NewCardActivationRepository(db)},
		profileRepo:    repositories.NewProfileRepository(db),
		cache:          pagecache.NoopInvalidator{},
	}

	_, err := svc.ActivateCard(context.Background(), user.ID, "TELAFI12345")
	assert.ErrorIs(t, err, ErrActivationFailed)

	// Telafi yazması kartı aktivasyon öncesi durumuna döndürmüş olmalı.
	var updated models.Card
	require.NoError(t, db.First(&updated, card.ID).Error)
	assert.Equal(t, models.CardStatusInStock, updated.Status)
	assert.Nil(t, updated.AssignedTo)
	assert.Nil(t, updated.ActivatedAt)

	// Bilet de kullanılmamış kalır.
	var activation models.CardActivation
	require.NoError(t, db.Where("activation_code = ?", "TELAFI12345").First(&activation).Error)
	assert.False(t, activation.IsUsed)
}

func TestResolveCardUID(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "cozum@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "COZUMKOD123")

	svc := NewCardService(db, pagecache.NoopInvalidator{})

	// Atanmamış kart bulunamadı sayılır.
	_, err := svc.ResolveCardUID(context.Background(), card.CardUID)
	assert.ErrorIs(t, err, ErrCardNotFound)

	_, err = svc.ActivateCard(context.Background(), user.ID, "COZUMKOD123")
	require.NoError(t, err)

	// Profil kullanıcı adı yoksa kurulum eksik hatası döner.
	_, err = svc.ResolveCardUID(context.Background(), card.CardUID)
	assert.ErrorIs(t, err, ErrProfileNotSetup)

	username := "cozumkisi"
	require.NoError(t, db.Create(&models.Profile{UserID: user.ID, Username: &username, TemplateID: models.TemplateClassic, IsActive: true}).Error)

	resolved, err := svc.ResolveCardUID(context.Background(), card.CardUID)
	require.NoError(t, err)
	assert.Equal(t, "cozumkisi", resolved)
}

package services

import (
	"context"
	"testing"

	"quickly.link/models"
	"quickly.link/pkg/pagecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisionCards_CreatesCardsWithActivations(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "yonetici@example.com")

	svc := NewCardInventoryService(db)
	provisioned, err := svc.ProvisionCards(context.Background(), admin.ID, 5)
	require.NoError(t, err)
	require.Len(t, provisioned, 5)

	seenUIDs := map[string]bool{}
	seenCodes := map[string]bool{}
	for _, p := range provisioned {
		assert.False(t, seenUIDs[p.CardUID], "tekrar eden UID: %s", p.CardUID)
		assert.False(t, seenCodes[p.ActivationCode], "tekrar eden kod: %s", p.ActivationCode)
		seenUIDs[p.CardUID] = true
		seenCodes[p.ActivationCode] = true
		assert.GreaterOrEqual(t, len(p.ActivationCode), 6)
	}

	var cardCount, activationCount int64
	require.NoError(t, db.Model(&models.Card{}).Count(&cardCount).Error)
	require.NoError(t, db.Model(&models.CardActivation{}).Count(&activationCount).Error)
	assert.EqualValues(t, 5, cardCount)
	assert.EqualValues(t, 5, activationCount)

	// Üretilen kartlar stokta başlar ve aktive edilebilir.
	cardSvc := NewCardService(db, pagecache.NoopInvalidator{})
	uid, err := cardSvc.ActivateCard(context.Background(), admin.ID, provisioned[0].ActivationCode)
	require.NoError(t, err)
	assert.Equal(t, provisioned[0].CardUID, uid)
}

func TestProvisionCards_CountLimits(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "limit@example.com")

	svc := NewCardInventoryService(db)
	_, err := svc.ProvisionCards(context.Background(), admin.ID, 0)
	assert.ErrorIs(t, err, ErrInvProvisionCount)

	_, err = svc.ProvisionCards(context.Background(), admin.ID, 501)
	assert.ErrorIs(t, err, ErrInvProvisionCount)
}

func TestSetCardStatus(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "durum@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)

	svc := NewCardInventoryService(db)

	require.NoError(t, svc.SetCardStatus(context.Background(), admin.ID, card.ID, models.CardStatusDisabled))
	var stored models.Card
	require.NoError(t, db.First(&stored, card.ID).Error)
	assert.Equal(t, models.CardStatusDisabled, stored.Status)

	require.NoError(t, svc.SetCardStatus(context.Background(), admin.ID, card.ID, models.CardStatusInStock))

	// assigned durumu bu uç üzerinden verilemez.
	err := svc.SetCardStatus(context.Background(), admin.ID, card.ID, models.CardStatusAssigned)
	assert.ErrorIs(t, err, ErrInvInvalidStatus)
}

func TestSetCardStatus_AssignedCardCannotReturnToStock(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "atanmis@example.com")
	user := createTestUser(t, db, "sahibi@example.com")
	card := createTestCard(t, db, models.CardStatusInStock)
	createTestActivation(t, db, card.ID, "ATANMISKOD1")

	cardSvc := NewCardService(db, pagecache.NoopInvalidator{})
	_, err := cardSvc.ActivateCard(context.Background(), user.ID, "ATANMISKOD1")
	require.NoError(t, err)

	svc := NewCardInventoryService(db)
	err = svc.SetCardStatus(context.Background(), admin.ID, card.ID, models.CardStatusInStock)
	assert.ErrorIs(t, err, ErrInvCardAssigned)
}

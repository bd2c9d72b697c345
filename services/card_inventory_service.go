package services

import (
	"context"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/queryparams"
	"quickly.link/repositories"
	"quickly.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryServiceError özel servis hataları
type InventoryServiceError string

func (e InventoryServiceError) Error() string { return string(e) }

const (
	ErrInvProvisionCount  InventoryServiceError = "üretilecek kart sayısı 1 ile 500 arasında olmalıdır"
	ErrInvProvisionFailed InventoryServiceError = "kartlar üretilemedi"
	ErrInvCardNotFound    InventoryServiceError = "kart bulunamadı"
	ErrInvInvalidStatus   InventoryServiceError = "geçersiz kart durumu"
	ErrInvCardAssigned    InventoryServiceError = "atanmış kartın durumu stoğa çekilemez"
)

const provisionMaxBatch = 500

// ProvisionedCard üretim sonucunda basıma gidecek UID + kod ikilisidir.
type ProvisionedCard struct {
	CardUID        string `json:"card_uid"`
	ActivationCode string `json:"activation_code"`
}

// ICardInventoryService kart envanterinin yönetim işlemleri için arayüz.
type ICardInventoryService interface {
	ProvisionCards(ctx context.Context, adminUserID uint, count int) ([]ProvisionedCard, error)
	SetCardStatus(ctx context.Context, adminUserID uint, cardID uint, status string) error
	GetCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
}

// CardInventoryService ICardInventoryService arayüzünü uygular.
type CardInventoryService struct {
	repo repositories.ICardRepository
	db   *gorm.DB // üretim batch'i tek transaction'da koşar
}

// NewCardInventoryService bağımlılıkları enjekte ederek servis oluşturur.
func NewCardInventoryService(db *gorm.DB) ICardInventoryService {
	return &CardInventoryService{
		repo: repositories.NewCardRepository(db),
		db:   db,
	}
}

// ProvisionCards n adet kartı in_stock durumunda, her biri için bir adet
// kullanılmamış aktivasyon biletiyle birlikte üretir. Aktivasyon akışının
// aksine üretim tek bir transaction içinde yapılır: yarım basılmış seri
// istemeyiz ve burada eşzamanlılık penceresi diye bir gereksinim yoktur.
func (s *CardInventoryService) ProvisionCards(ctx context.Context, adminUserID uint, count int) ([]ProvisionedCard, error) {
	if count <= 0 || count > provisionMaxBatch {
		return nil, ErrInvProvisionCount
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	result := make([]ProvisionedCard, 0, count)

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		cardRepoTx := repositories.NewCardRepositoryTx(tx)
		activationRepoTx := repositories.NewCardActivationRepository(tx)

		for i := 0; i < count; i++ {
			uid, err := utils.GenerateCardUID()
			if err != nil {
				return ErrInvProvisionFailed
			}
			code, err := utils.GenerateSecureRandomString(12)
			if err != nil {
				return ErrInvProvisionFailed
			}

			card := &models.Card{
				CardUID: uid,
				Status:  models.CardStatusInStock,
			}
			if err := cardRepoTx.Create(ctxWithUser, card); err != nil {
				configslog.Log.Error("ProvisionCards: kart kaydı başarısız", zap.String("card_uid", uid), zap.Error(err))
				return ErrInvProvisionFailed
			}

			activation := &models.CardActivation{
				ActivationCode: code,
				CardID:         card.ID,
			}
			if err := activationRepoTx.Create(ctxWithUser, activation); err != nil {
				configslog.Log.Error("ProvisionCards: bilet kaydı başarısız", zap.String("card_uid", uid), zap.Error(err))
				return ErrInvProvisionFailed
			}

			result = append(result, ProvisionedCard{CardUID: uid, ActivationCode: code})
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	configslog.SLog.Infof("%d adet kart üretildi (yönetici: %d)", count, adminUserID)
	return result, nil
}

// SetCardStatus bir kartı yönetici yetkisiyle pasife alır veya stoğa döndürür.
// Atanmış kart in_stock yapılamaz; sahibinden koparmak ayrı bir operasyondur.
func (s *CardInventoryService) SetCardStatus(ctx context.Context, adminUserID uint, cardID uint, status string) error {
	if status != models.CardStatusInStock && status != models.CardStatusDisabled {
		return ErrInvInvalidStatus
	}

	card, err := s.repo.FindByID(ctx, cardID)
	if err != nil {
		return ErrInvCardNotFound
	}
	if card.Status == models.CardStatusAssigned && status == models.CardStatusInStock {
		return ErrInvCardAssigned
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, adminUserID)
	if err := s.repo.UpdateFields(ctxWithUser, cardID, map[string]interface{}{"status": status}); err != nil {
		configslog.Log.Error("SetCardStatus: güncelleme başarısız", zap.Uint("card_id", cardID), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Kart durumu güncellendi: %s -> %s (yönetici: %d)", card.CardUID, status, adminUserID)
	return nil
}

// GetCardsPaginated envanteri sayfalayarak listeler.
func (s *CardInventoryService) GetCardsPaginated(ctx context.Context, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	if params.SortBy == "" {
		params.SortBy = "created_at"
	}

	cards, totalCount, err := s.repo.FindAllPaginated(ctx, params)
	if err != nil {
		configslog.Log.Error("GetCardsPaginated: listeleme başarısız", zap.Error(err))
		return nil, err
	}

	return &queryparams.PaginatedResult{
		Data: cards,
		Meta: queryparams.PaginationMeta{
			CurrentPage: params.Page,
			PerPage:     params.PerPage,
			TotalItems:  totalCount,
			TotalPages:  queryparams.CalculateTotalPages(totalCount, params.PerPage),
		},
	}, nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardInventoryService = (*CardInventoryService)(nil)

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/pagecache"
	"quickly.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError özel servis hataları
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotAuthenticated CardServiceError = "oturum açmanız gerekiyor"
	ErrActivationCodeLength CardServiceError = "aktivasyon kodu en az 6 karakter olmalıdır"
	ErrInvalidOrUsedCode    CardServiceError = "geçersiz veya daha önce kullanılmış aktivasyon kodu"
	ErrCardNotAvailable     CardServiceError = "kart aktivasyona uygun değil"
	ErrCardAssignFailed     CardServiceError = "kart aktive edilemedi"
	ErrActivationFailed     CardServiceError = "aktivasyon tamamlanamadı"
	ErrCardNotFound         CardServiceError = "kart bulunamadı"
	ErrProfileNotSetup      CardServiceError = "kart sahibinin profili henüz kurulmamış"
)

// Aktivasyon kodu uzunluk sınırları. Kod ambalaja basıldığı için eski
// serilerdeki kısa kodlar da geçerli kalmalı; alt sınır 6'dır.
const (
	activationCodeMinLen = 6
	activationCodeMaxLen = 50
)

// ICardService kart aktivasyonu ve kart sorguları için arayüz.
type ICardService interface {
	ActivateCard(ctx context.Context, userID uint, code string) (string, error)
	GetUserCards(ctx context.Context, userID uint) ([]models.Card, error)
	ResolveCardUID(ctx context.Context, cardUID string) (string, error)
}

// CardService ICardService arayüzünü uygular.
type CardService struct {
	repo           repositories.ICardRepository
	activationRepo repositories.ICardActivationRepository
	profileRepo    repositories.IProfileRepository
	cache          pagecache.Invalidator
}

// NewCardService bağımlılıkları enjekte ederek yeni bir CardService oluşturur.
func NewCardService(db *gorm.DB, cache pagecache.Invalidator) ICardService {
	return &CardService{
		repo:           repositories.NewCardRepository(db),
		activationRepo: repositories.NewCardActivationRepository(db),
		profileRepo:    repositories.NewProfileRepository(db),
		cache:          cache,
	}
}

// ActivateCard tek kullanımlık kod ile boştaki bir kartı kullanıcıya bağlar.
//
// Akış iki ayrı yazmadan oluşur ve BİLEREK tek bir transaction değildir:
// adım A kartı atar, adım B bileti kullanıldı yapar; B başarısız olursa
// telafi yazması kartı aktivasyon öncesi haline döndürür. A ile B arasındaki
// dar pencerede kart atanmış ama bilet hâlâ kullanılmamış görünür; aynı
// karta eşzamanlı ikinci bir deneme kilitle değil, 2. adımdaki status
// kontrolüyle engellenir. Bu pencere kabul edilmiş bir zayıf tutarlılıktır.
func (s *CardService) ActivateCard(ctx context.Context, userID uint, code string) (string, error) {
	if userID == 0 {
		return "", ErrCardNotAuthenticated
	}

	// 1. Girdi validasyonu: depoya dokunmadan önce uzunluk kontrolü.
	code = strings.TrimSpace(code)
	if len(code) < activationCodeMinLen || len(code) > activationCodeMaxLen {
		return "", ErrActivationCodeLength
	}

	// 2. Kullanılmamış bileti bul. Kodun hiç olmaması ile kullanılmış
	// olması çağırana aynı hatayla döner (kod varlığı sızdırılmaz).
	activation, err := s.activationRepo.FindUnusedByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrInvalidOrUsedCode
		}
		configslog.Log.Error("ActivateCard: aktivasyon sorgusu başarısız", zap.Error(err))
		return "", err
	}

	// 3. Kartı çöz ve uygunluğunu doğrula. Bilet kullanılmamış görünse
	// bile kart in_stock değilse (eşzamanlı aktivasyon yarışı ya da
	// pasife alınmış kart) işlem reddedilir.
	card, err := s.repo.FindByID(ctx, activation.CardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Tutarsız veri: bilet var ama kart yok",
				zap.Uint("activation_id", activation.ID), zap.Uint("card_id", activation.CardID))
			return "", ErrInvalidOrUsedCode
		}
		return "", err
	}
	if card.Status != models.CardStatusInStock {
		configslog.Log.Warn("Uygun olmayan karta aktivasyon denemesi",
			zap.String("card_uid", card.CardUID), zap.String("status", card.Status), zap.Uint("user_id", userID))
		return "", ErrCardNotAvailable
	}

	now := time.Now().UTC()
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)

	// 4. Yazma adımı A: kartı kullanıcıya ata.
	err = s.repo.UpdateFields(ctxWithUser, card.ID, map[string]interface{}{
		"status":       models.CardStatusAssigned,
		"assigned_to":  userID,
		"activated_at": now,
	})
	if err != nil {
		configslog.Log.Error("ActivateCard: kart atama yazması başarısız",
			zap.String("card_uid", card.CardUID), zap.Uint("user_id", userID), zap.Error(err))
		return "", ErrCardAssignFailed
	}

	// 5. Yazma adımı B: bileti kullanıldı yap. Başarısızlıkta telafi
	// yazması kartı tam olarak eski haline (in_stock, sahipsiz) döndürür.
	if err := s.activationRepo.MarkUsed(ctxWithUser, activation.ID, userID, now); err != nil {
		configslog.Log.Error("ActivateCard: bilet işaretlenemedi, kart geri alınıyor",
			zap.Uint("activation_id", activation.ID), zap.String("card_uid", card.CardUID), zap.Error(err))

		compErr := s.repo.UpdateFields(ctxWithUser, card.ID, map[string]interface{}{
			"status":       models.CardStatusInStock,
			"assigned_to":  nil,
			"activated_at": nil,
		})
		if compErr != nil {
			// Telafi de başarısızsa kart askıda kalır; operasyonel müdahale gerekir.
			configslog.Log.Error("ActivateCard: TELAFİ YAZMASI BAŞARISIZ, kart tutarsız durumda",
				zap.String("card_uid", card.CardUID), zap.Error(compErr))
		}
		return "", ErrActivationFailed
	}

	// 6. Başarılı: kullanıcının kart listesi görünümünü düşür.
	s.cache.InvalidatePanelCards(ctx, userID)
	configslog.SLog.Infof("Kart aktive edildi: %s (kullanıcı: %d)", card.CardUID, userID)
	return card.CardUID, nil
}

// GetUserCards kullanıcıya atanmış kartları aktivasyon tarihine göre listeler.
func (s *CardService) GetUserCards(ctx context.Context, userID uint) ([]models.Card, error) {
	if userID == 0 {
		return nil, ErrCardNotAuthenticated
	}
	return s.repo.FindAssignedToUser(ctx, userID)
}

// ResolveCardUID karta basılı UID'den public profil kullanıcı adını çözer.
// Kart yoksa ya da atanmamışsa ErrCardNotFound, sahibinin kullanıcı adı
// henüz yoksa ErrProfileNotSetup döner.
func (s *CardService) ResolveCardUID(ctx context.Context, cardUID string) (string, error) {
	card, err := s.repo.FindByUID(ctx, cardUID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrCardNotFound
		}
		return "", err
	}
	if card.AssignedTo == nil {
		return "", ErrCardNotFound
	}

	profile, err := s.profileRepo.FindByUserID(ctx, *card.AssignedTo)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", ErrProfileNotSetup
		}
		return "", err
	}
	if profile.Username == nil || *profile.Username == "" {
		return "", ErrProfileNotSetup
	}
	return *profile.Username, nil
}

// Arayüz uyumluluğu kontrolü
var _ ICardService = (*CardService)(nil)

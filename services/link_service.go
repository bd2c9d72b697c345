package services

import (
	"context"
	"errors"
	"sync"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/pagecache"
	"quickly.link/repositories"
	"quickly.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkServiceError özel servis hataları
type LinkServiceError string

func (e LinkServiceError) Error() string { return string(e) }

const (
	ErrLinkNotAuthenticated LinkServiceError = "oturum açmanız gerekiyor"
	ErrLinkTitleRequired    LinkServiceError = "başlık zorunludur"
	ErrLinkTitleTooLong     LinkServiceError = "başlık en fazla 100 karakter olabilir"
	ErrLinkURLRequired      LinkServiceError = "url zorunludur"
	ErrLinkURLInvalid       LinkServiceError = "geçersiz url formatı"
	ErrLinkNotFound         LinkServiceError = "link bulunamadı"
	ErrLinkInvalidInput     LinkServiceError = "geçersiz link girdisi"
	ErrLinkStorageFailed    LinkServiceError = "link kaydedilemedi"
)

// LinkInput create/update işlemlerinin girdi alanlarıdır.
type LinkInput struct {
	Title    string `json:"title" form:"title"`
	URL      string `json:"url" form:"url"`
	Icon     string `json:"icon" form:"icon"`
	IsActive bool   `json:"is_active" form:"is_active"`
}

// ILinkService sıralı, sahibine skoplu link koleksiyonunu yönetir.
type ILinkService interface {
	CreateLink(ctx context.Context, userID uint, input LinkInput) (*models.Link, error)
	UpdateLink(ctx context.Context, userID uint, linkID uint, input LinkInput) error
	ToggleLink(ctx context.Context, userID uint, linkID uint) error
	DeleteLink(ctx context.Context, userID uint, linkID uint) error
	ReorderLinks(ctx context.Context, userID uint, orderedIDs []uint) error
	GetLinksForUser(ctx context.Context, userID uint) ([]models.Link, error)
}

// LinkService ILinkService arayüzünü uygular.
type LinkService struct {
	repo        repositories.ILinkRepository
	profileRepo repositories.IProfileRepository
	cache       pagecache.Invalidator
}

// NewLinkService bağımlılıkları enjekte ederek yeni bir LinkService oluşturur.
func NewLinkService(db *gorm.DB, cache pagecache.Invalidator) ILinkService {
	return &LinkService{
		repo:        repositories.NewLinkRepository(db),
		profileRepo: repositories.NewProfileRepository(db),
		cache:       cache,
	}
}

// validateLinkInput URL'i temizler ve alan validasyonlarını uygular.
// Tehlikeli şemalar (javascript:/data:/vbscript:) SanitizeURL'de boş
// string'e düşer ve burada "url zorunludur" hatasına takılır.
func validateLinkInput(input *LinkInput) error {
	input.URL = utils.SanitizeURL(input.URL)

	if input.Title == "" {
		return ErrLinkTitleRequired
	}
	if len(input.Title) > 100 {
		return ErrLinkTitleTooLong
	}
	if input.URL == "" {
		return ErrLinkURLRequired
	}
	if !utils.IsValidURL(input.URL) {
		return ErrLinkURLInvalid
	}
	return nil
}

// invalidateViews link mutasyonlarının ortak yan etkisidir: sahibin
// panel görünümü ve (kullanıcı adı varsa) public profil sayfası düşürülür.
func (s *LinkService) invalidateViews(ctx context.Context, userID uint) {
	s.cache.InvalidatePanelLinks(ctx, userID)

	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil || profile.Username == nil {
		return
	}
	s.cache.InvalidatePublicProfile(ctx, *profile.Username)
}

// CreateLink yeni linki listenin sonuna (max sort_order + 1) ekler.
func (s *LinkService) CreateLink(ctx context.Context, userID uint, input LinkInput) (*models.Link, error) {
	if userID == 0 {
		return nil, ErrLinkNotAuthenticated
	}
	if err := validateLinkInput(&input); err != nil {
		return nil, err
	}

	maxOrder, err := s.repo.MaxSortOrder(ctx, userID)
	if err != nil {
		configslog.Log.Error("CreateLink: sort_order sorgusu başarısız", zap.Uint("user_id", userID), zap.Error(err))
		return nil, ErrLinkStorageFailed
	}

	link := &models.Link{
		UserID:    userID,
		Title:     input.Title,
		URL:       input.URL,
		Icon:      input.Icon,
		IsActive:  input.IsActive,
		SortOrder: maxOrder + 1,
	}
	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	if err := s.repo.Create(ctxWithUser, link); err != nil {
		configslog.Log.Error("CreateLink: kayıt başarısız", zap.Uint("user_id", userID), zap.Error(err))
		return nil, ErrLinkStorageFailed
	}

	s.invalidateViews(ctx, userID)
	configslog.SLog.Infof("Link oluşturuldu: ID %d (kullanıcı: %d, sıra: %d)", link.ID, userID, link.SortOrder)
	return link, nil
}

// UpdateLink alanları sahibi skopunda günceller. Kayıt başka kullanıcıya
// aitse sıfır satır etkilenir ve işlem sessiz no-op olarak başarı döner;
// bu davranış bilinçli olarak korunur (satır varlığı sızdırılmaz).
func (s *LinkService) UpdateLink(ctx context.Context, userID uint, linkID uint, input LinkInput) error {
	if userID == 0 {
		return ErrLinkNotAuthenticated
	}
	if linkID == 0 {
		return ErrLinkInvalidInput
	}
	if err := validateLinkInput(&input); err != nil {
		return err
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	rows, err := s.repo.UpdateScoped(ctxWithUser, linkID, userID, map[string]interface{}{
		"title":     input.Title,
		"url":       input.URL,
		"icon":      input.Icon,
		"is_active": input.IsActive,
	})
	if err != nil {
		return ErrLinkStorageFailed
	}
	if rows == 0 {
		configslog.SLog.Debugf("UpdateLink: satır etkilenmedi (link %d, kullanıcı %d)", linkID, userID)
	}

	s.invalidateViews(ctx, userID)
	return nil
}

// ToggleLink is_active değerini okur, tersler ve geri yazar. Oku-yaz
// arası atomik değildir: iki sekmeden eşzamanlı toggle aynı başlangıcı
// okursa sonuç başlangıç değerine döner. Bu alan için güçlü tutarlılık
// hedeflenmediğinden anomali kabul edilir.
func (s *LinkService) ToggleLink(ctx context.Context, userID uint, linkID uint) error {
	if userID == 0 {
		return ErrLinkNotAuthenticated
	}

	link, err := s.repo.FindByIDForUser(ctx, linkID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLinkNotFound
		}
		return err
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	if _, err := s.repo.UpdateScoped(ctxWithUser, linkID, userID, map[string]interface{}{
		"is_active": !link.IsActive,
	}); err != nil {
		return ErrLinkStorageFailed
	}

	s.invalidateViews(ctx, userID)
	return nil
}

// DeleteLink linki sahibi skopunda siler. Sahip olmayan çağrı sessiz no-op'tur.
func (s *LinkService) DeleteLink(ctx context.Context, userID uint, linkID uint) error {
	if userID == 0 {
		return ErrLinkNotAuthenticated
	}
	if linkID == 0 {
		return ErrLinkInvalidInput
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	rows, err := s.repo.DeleteScoped(ctxWithUser, linkID, userID)
	if err != nil {
		return ErrLinkStorageFailed
	}
	if rows == 0 {
		configslog.SLog.Debugf("DeleteLink: satır etkilenmedi (link %d, kullanıcı %d)", linkID, userID)
	}

	s.invalidateViews(ctx, userID)
	return nil
}

// ReorderLinks verilen sıradaki her id'ye pozisyon indeksini yazar.
// Yazmalar eşzamanlı gönderilir ve hepsi beklenir; kısmi başarısızlık
// sort_order'ı yarım uygulanmış bırakır ve geri alınmaz. Görüntüleme
// sırası için bu best-effort davranış kabul edilmiş bir tavizdir.
func (s *LinkService) ReorderLinks(ctx context.Context, userID uint, orderedIDs []uint) error {
	if userID == 0 {
		return ErrLinkNotAuthenticated
	}
	if len(orderedIDs) == 0 {
		return ErrLinkInvalidInput
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)

	var wg sync.WaitGroup
	for index, id := range orderedIDs {
		wg.Add(1)
		go func(id uint, index int) {
			defer wg.Done()
			_, err := s.repo.UpdateScoped(ctxWithUser, id, userID, map[string]interface{}{
				"sort_order": index,
			})
			if err != nil {
				configslog.Log.Warn("ReorderLinks: yazma başarısız",
					zap.Uint("link_id", id), zap.Int("index", index), zap.Uint("user_id", userID), zap.Error(err))
			}
		}(id, index)
	}
	wg.Wait()

	s.invalidateViews(ctx, userID)
	return nil
}

// GetLinksForUser kullanıcının linklerini görüntüleme sırasıyla döndürür.
func (s *LinkService) GetLinksForUser(ctx context.Context, userID uint) ([]models.Link, error) {
	if userID == 0 {
		return nil, ErrLinkNotAuthenticated
	}
	return s.repo.FindAllByUser(ctx, userID)
}

// Arayüz uyumluluğu kontrolü
var _ ILinkService = (*LinkService)(nil)

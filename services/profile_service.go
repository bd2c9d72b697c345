package services

import (
	"context"
	"errors"
	"strings"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/pkg/pagecache"
	"quickly.link/repositories"
	"quickly.link/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileServiceError özel servis hataları
type ProfileServiceError string

func (e ProfileServiceError) Error() string { return string(e) }

const (
	ErrProfileNotFound        ProfileServiceError = "profil bulunamadı"
	ErrProfileNameTooLong     ProfileServiceError = "isim en fazla 100 karakter olabilir"
	ErrProfileBioTooLong      ProfileServiceError = "biyografi en fazla 500 karakter olabilir"
	ErrProfileUsernameInvalid ProfileServiceError = "kullanıcı adı 3-30 karakter arası harf, rakam, tire ve alt çizgi içerebilir"
	ErrUsernameTaken          ProfileServiceError = "bu kullanıcı adı zaten alınmış"
	ErrProfileUpdateFailed    ProfileServiceError = "profil güncellenemedi"
	ErrProfileTemplateInvalid ProfileServiceError = "geçersiz şablon"
)

// ProfileInput profil güncelleme girdisidir. Username boş string ise
// kullanıcı adı kaldırılır (public sayfa kapanır).
type ProfileInput struct {
	FullName     string `json:"full_name" form:"full_name"`
	Username     string `json:"username" form:"username"`
	Bio          string `json:"bio" form:"bio"`
	ContactEmail string `json:"contact_email" form:"contact_email"`
	ContactPhone string `json:"contact_phone" form:"contact_phone"`
	Location     string `json:"location" form:"location"`
	TemplateID   string `json:"template_id" form:"template_id"`
}

// IProfileService profil yönetimi ve public profil sorguları için arayüz.
type IProfileService interface {
	GetProfileForUser(ctx context.Context, userID uint) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error
	CheckUsernameAvailability(ctx context.Context, userID uint, username string) (bool, string)
	GetPublicProfile(ctx context.Context, username string) (*models.Profile, []models.Link, error)
}

// ProfileService IProfileService arayüzünü uygular.
type ProfileService struct {
	repo     repositories.IProfileRepository
	linkRepo repositories.ILinkRepository
	cache    pagecache.Invalidator
}

// NewProfileService bağımlılıkları enjekte ederek servis oluşturur.
func NewProfileService(db *gorm.DB, cache pagecache.Invalidator) IProfileService {
	return &ProfileService{
		repo:     repositories.NewProfileRepository(db),
		linkRepo: repositories.NewLinkRepository(db),
		cache:    cache,
	}
}

func validateProfileInput(input *ProfileInput) error {
	input.Username = strings.TrimSpace(input.Username)

	if len(input.FullName) > 100 {
		return ErrProfileNameTooLong
	}
	if len(input.Bio) > 500 {
		return ErrProfileBioTooLong
	}
	if input.Username != "" && !utils.IsValidUsername(input.Username) {
		return ErrProfileUsernameInvalid
	}
	if input.TemplateID != "" &&
		input.TemplateID != models.TemplateClassic &&
		input.TemplateID != models.TemplateCard &&
		input.TemplateID != models.TemplateSplit {
		return ErrProfileTemplateInvalid
	}
	return nil
}

// GetProfileForUser kullanıcının kendi profilini döndürür.
func (s *ProfileService) GetProfileForUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateProfile profili günceller. Kullanıcı adı değişiyorsa benzersizlik
// kontrolü yapılır; eski ve yeni public sayfa anahtarları düşürülür.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) error {
	if err := validateProfileInput(&input); err != nil {
		return err
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	oldUsername := ""
	if profile.Username != nil {
		oldUsername = *profile.Username
	}

	if input.Username != "" && input.Username != oldUsername {
		taken, err := s.repo.UsernameExists(ctx, input.Username, userID)
		if err != nil {
			return ErrProfileUpdateFailed
		}
		if taken {
			return ErrUsernameTaken
		}
	}

	profile.FullName = input.FullName
	profile.Bio = input.Bio
	profile.ContactEmail = input.ContactEmail
	profile.ContactPhone = input.ContactPhone
	profile.Location = input.Location
	if input.TemplateID != "" {
		profile.TemplateID = input.TemplateID
	}
	if input.Username == "" {
		profile.Username = nil
	} else {
		username := input.Username
		profile.Username = &username
	}

	ctxWithUser := context.WithValue(ctx, models.ContextUserIDKey, userID)
	if err := s.repo.Save(ctxWithUser, profile); err != nil {
		configslog.Log.Error("UpdateProfile: kayıt başarısız", zap.Uint("user_id", userID), zap.Error(err))
		return ErrProfileUpdateFailed
	}

	if oldUsername != "" {
		s.cache.InvalidatePublicProfile(ctx, oldUsername)
	}
	if profile.Username != nil {
		s.cache.InvalidatePublicProfile(ctx, *profile.Username)
	}
	configslog.SLog.Infof("Profil güncellendi (kullanıcı: %d)", userID)
	return nil
}

// CheckUsernameAvailability kullanıcı adının alınabilir olup olmadığını ve
// kullanıcıya gösterilecek mesajı döndürür.
func (s *ProfileService) CheckUsernameAvailability(ctx context.Context, userID uint, username string) (bool, string) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return false, "kullanıcı adı çok kısa"
	}
	if !utils.IsValidUsername(username) {
		return false, string(ErrProfileUsernameInvalid)
	}
	taken, err := s.repo.UsernameExists(ctx, username, userID)
	if err != nil {
		configslog.Log.Error("CheckUsernameAvailability: sorgu başarısız", zap.Error(err))
		return false, "kontrol sırasında bir sorun oluştu"
	}
	if taken {
		return false, string(ErrUsernameTaken)
	}
	return true, ""
}

// GetPublicProfile public sayfa için profili ve aktif linkleri döndürür.
// Pasif profiller dışarıdan görünmez.
func (s *ProfileService) GetPublicProfile(ctx context.Context, username string) (*models.Profile, []models.Link, error) {
	profile, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil, ErrProfileNotFound
		}
		return nil, nil, err
	}
	if !profile.IsActive {
		return nil, nil, ErrProfileNotFound
	}

	links, err := s.linkRepo.FindActiveByUser(ctx, profile.UserID)
	if err != nil {
		return nil, nil, err
	}
	return profile, links, nil
}

// Arayüz uyumluluğu kontrolü
var _ IProfileService = (*ProfileService)(nil)

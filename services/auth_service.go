package services

import (
	"context"
	"errors"
	"strings"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthEmailInvalid       AuthServiceError = "geçersiz e-posta adresi"
	ErrAuthPasswordTooShort   AuthServiceError = "şifre en az 8 karakter olmalıdır"
	ErrAuthNameTooShort       AuthServiceError = "isim en az 2 karakter olmalıdır"
	ErrAuthEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrAuthInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrAuthAccountDisabled    AuthServiceError = "hesabınız pasif durumda"
	ErrAuthRegisterFailed     AuthServiceError = "kayıt tamamlanamadı"
)

// RegisterInput kayıt formunun girdisidir.
type RegisterInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	FullName string `json:"full_name" form:"full_name"`
}

// IAuthService hesap kaydı ve oturum doğrulama için arayüz.
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthService IAuthService arayüzünü uygular.
type AuthService struct {
	repo        repositories.IUserRepository
	profileRepo repositories.IProfileRepository
	db          *gorm.DB // kayıt user+profile ikilisini tek transaction'da yazar
}

// NewAuthService bağımlılıkları enjekte ederek servis oluşturur.
func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{
		repo:        repositories.NewUserRepository(db),
		profileRepo: repositories.NewProfileRepository(db),
		db:          db,
	}
}

// Register yeni hesabı ve boş profilini tek transaction içinde oluşturur.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if !strings.Contains(input.Email, "@") || len(input.Email) < 5 {
		return nil, ErrAuthEmailInvalid
	}
	if len(input.Password) < 8 {
		return nil, ErrAuthPasswordTooShort
	}
	if len(strings.TrimSpace(input.FullName)) < 2 {
		return nil, ErrAuthNameTooShort
	}

	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, ErrAuthRegisterFailed
	}
	if exists {
		return nil, ErrAuthEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Register: şifre hash'lenemedi", zap.Error(err))
		return nil, ErrAuthRegisterFailed
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(input.FullName),
		IsActive:     true,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		userRepoTx := repositories.NewUserRepository(tx)
		profileRepoTx := repositories.NewProfileRepository(tx)

		if err := userRepoTx.Create(ctx, user); err != nil {
			return err
		}
		profile := &models.Profile{
			UserID:     user.ID,
			FullName:   user.FullName,
			TemplateID: models.TemplateClassic,
			IsActive:   true,
		}
		return profileRepoTx.Create(ctx, profile)
	})
	if txErr != nil {
		configslog.Log.Error("Register: transaction başarısız", zap.Error(txErr))
		return nil, ErrAuthRegisterFailed
	}

	configslog.SLog.Infof("Yeni hesap oluşturuldu: %d", user.ID)
	return user, nil
}

// Authenticate e-posta/şifre ikilisini doğrular. Hesap yoksa da şifre
// yanlışsa da aynı hata döner.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrAuthInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAuthAccountDisabled
	}
	return user, nil
}

// GetUserByID oturum middleware'inin kullanıcıyı çözmesi için.
func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAuthService = (*AuthService)(nil)

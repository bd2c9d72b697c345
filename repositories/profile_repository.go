package repositories

import (
	"context"
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IProfileRepository profil veritabanı işlemleri için arayüz.
type IProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	FindByUsername(ctx context.Context, username string) (*models.Profile, error)
	UsernameExists(ctx context.Context, username string, excludeUserID uint) (bool, error)
	Save(ctx context.Context, profile *models.Profile) error
}

// ProfileRepository IProfileRepository arayüzünü uygular.
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository verilen bağlantı ile ProfileRepository oluşturur.
func NewProfileRepository(db *gorm.DB) IProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return errors.New("oluşturulacak profil nil olamaz")
	}
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	if userID == 0 {
		return nil, errors.New("geçersiz kullanıcı ID")
	}
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("ProfileRepository.FindByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// FindByUsername public kullanıcı adı ile profili bulur.
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	if username == "" {
		return nil, ErrNotFound
	}
	var profile models.Profile
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		configslog.Log.Error("ProfileRepository.FindByUsername: DB error", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

// UsernameExists kullanıcı adının başka bir hesapta kayıtlı olup olmadığını
// kontrol eder. excludeUserID kullanıcının kendi mevcut adını hariç tutar.
func (r *ProfileRepository) UsernameExists(ctx context.Context, username string, excludeUserID uint) (bool, error) {
	if username == "" {
		return false, errors.New("kontrol edilecek kullanıcı adı boş olamaz")
	}
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Profile{}).Where("username = ?", username)
	if excludeUserID != 0 {
		query = query.Where("user_id <> ?", excludeUserID)
	}
	if err := query.Count(&count).Error; err != nil {
		configslog.Log.Error("ProfileRepository.UsernameExists: DB error", zap.String("username", username), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Save profili alanlarıyla birlikte kaydeder (hook'lar çalışır).
func (r *ProfileRepository) Save(ctx context.Context, profile *models.Profile) error {
	if profile == nil || profile.ID == 0 {
		return errors.New("kaydedilecek profil geçerli değil")
	}
	return r.db.WithContext(ctx).Save(profile).Error
}

// Arayüz uyumluluğu kontrolü
var _ IProfileRepository = (*ProfileRepository)(nil)

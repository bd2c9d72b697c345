package seeders

import (
	"errors"
	"os"

	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSystemUser yönetim paneline girebilen sistem kullanıcısını oluşturur.
// Kimlik bilgileri ortamdan okunur; kullanıcı zaten varsa dokunulmaz.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	if email == "" {
		email = "admin@quickly.link"
	}
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if password == "" {
		configslog.SLog.Warn("SYSTEM_USER_PASSWORD tanımlı değil, varsayılan şifre kullanılıyor.")
		password = "ChangeMe123!"
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Info("Sistem kullanıcısı zaten mevcut, oluşturma atlanıyor.")
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Sistem kullanıcısı kontrol edilirken veritabanı hatası", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Sistem kullanıcısı şifresi hash'lenemedi", zap.Error(err))
		return err
	}

	systemUser := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Sistem Yöneticisi",
		IsSystem:     true,
		IsActive:     true,
	}
	if err := db.Create(&systemUser).Error; err != nil {
		configslog.Log.Error("Sistem kullanıcısı oluşturulamadı", zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Sistem kullanıcısı oluşturuldu (ID: %d).", systemUser.ID)
	return nil
}

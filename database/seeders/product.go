package seeders

import (
	"context"
	"errors"

	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedProducts satışa sunulan kart ürünlerini oluşturur. Fiyatlar kuruş
// cinsindendir. Mevcut ürünler güncellenmez.
func SeedProducts(db *gorm.DB) error {
	systemUserID := uint(1)
	ctx := context.WithValue(context.Background(), models.ContextUserIDKey, systemUserID)

	productsToSeed := []models.Product{
		{Name: "Quickly Kart - Standart", Description: "NFC özellikli PVC dijital kartvizit", Price: 49900, IsActive: true},
		{Name: "Quickly Kart - Metal", Description: "NFC özellikli fırçalanmış metal kartvizit", Price: 129900, IsActive: true},
		{Name: "Quickly Kart - Bambu", Description: "NFC özellikli bambu kartvizit", Price: 89900, IsActive: true},
	}

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Ürün seed işlemi başlıyor...")

	for _, productToSeed := range productsToSeed {
		var existing models.Product
		result := db.Where("name = ?", productToSeed.Name).First(&existing)

		if result.Error == nil {
			configslog.SLog.Debugf("Ürün '%s' zaten mevcut, oluşturma atlanıyor.", productToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Ürün kontrol edilirken veritabanı hatası",
				zap.String("product_name", productToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.WithContext(ctx).Create(&productToSeed).Error; err != nil {
			configslog.Log.Error("Ürün oluşturulamadı",
				zap.String("product_name", productToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni ürün seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm ürünler zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("ürünler seed edilirken en az bir hata oluştu")
	}
	return nil
}

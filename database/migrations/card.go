package migrations

import (
	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCardsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating cards & card_activations tables...")
	err := db.AutoMigrate(&models.Card{}, &models.CardActivation{})
	if err != nil {
		configslog.Log.Error("Failed to migrate cards & card_activations tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Cards & card_activations tables migrated successfully")
	return nil
}

package migrations

import (
	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateOrdersTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating products & orders tables...")
	err := db.AutoMigrate(&models.Product{}, &models.Order{})
	if err != nil {
		configslog.Log.Error("Failed to migrate products & orders tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Products & orders tables migrated successfully")
	return nil
}

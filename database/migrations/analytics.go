package migrations

import (
	"quickly.link/configs/configslog"
	"quickly.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAnalyticsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating link_clicks & page_views tables...")
	err := db.AutoMigrate(&models.LinkClick{}, &models.PageView{})
	if err != nil {
		configslog.Log.Error("Failed to migrate link_clicks & page_views tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Link_clicks & page_views tables migrated successfully")
	return nil
}

package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/repositories"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler analitik kuyruğundaki görevleri işler. İstek yolundan koparılmış
// bu yazmalar kaybolursa (kuyruk düşerse) veri best-effort olarak eksik
// kalır; sayaçlar için güçlü tutarlılık hedeflenmez.
type Handler struct {
	db            *gorm.DB
	analyticsRepo repositories.IAnalyticsRepository
	linkRepo      repositories.ILinkRepository
}

// NewHandler verilen bağlantı ile görev işleyicisini oluşturur.
func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		db:            db,
		analyticsRepo: repositories.NewAnalyticsRepository(db),
		linkRepo:      repositories.NewLinkRepository(db),
	}
}

// RegisterHandlers görev tiplerini mux'a bağlar.
func (h *Handler) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeLinkClick, h.HandleLinkClick)
	mux.HandleFunc(TypePageView, h.HandlePageView)
}

// HandleLinkClick tıklama kaydını ekler ve linkin denormalize sayacını
// artırır. Sayaç artışı oku-sonra-yaz şeklindedir; eşzamanlı tıklamalarda
// nadir kayıp güncelleme kabul edilen bir anomalidir.
func (h *Handler) HandleLinkClick(ctx context.Context, t *asynq.Task) error {
	var payload LinkClickPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("link_click payload çözülemedi: %w", err)
	}

	click := &models.LinkClick{
		LinkID:    payload.LinkID,
		UserID:    payload.OwnerID,
		Referrer:  payload.Referrer,
		ClickedAt: payload.ClickedAt,
	}
	if err := h.analyticsRepo.InsertClick(ctx, click); err != nil {
		configslog.Log.Error("Tıklama kaydı eklenemedi", zap.Uint("link_id", payload.LinkID), zap.Error(err))
		return err
	}

	link, err := h.linkRepo.FindByID(ctx, payload.LinkID)
	if err != nil {
		// Link bu arada silinmiş olabilir; tıklama kaydı yine de tutulur.
		configslog.Log.Warn("Sayaç artırılamadı: link bulunamadı", zap.Uint("link_id", payload.LinkID), zap.Error(err))
		return nil
	}
	_, err = h.linkRepo.UpdateScoped(ctx, link.ID, link.UserID, map[string]interface{}{
		"clicks_count": link.ClicksCount + 1,
	})
	if err != nil {
		configslog.Log.Error("Tıklama sayacı güncellenemedi", zap.Uint("link_id", payload.LinkID), zap.Error(err))
		return err
	}
	return nil
}

// HandlePageView profil görüntülenme kaydını ekler.
func (h *Handler) HandlePageView(ctx context.Context, t *asynq.Task) error {
	var payload PageViewPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("page_view payload çözülemedi: %w", err)
	}

	view := &models.PageView{
		UserID:   payload.OwnerID,
		Referrer: payload.Referrer,
		ViewedAt: payload.ViewedAt,
	}
	if err := h.analyticsRepo.InsertView(ctx, view); err != nil {
		configslog.Log.Error("Görüntülenme kaydı eklenemedi", zap.Uint("owner_id", payload.OwnerID), zap.Error(err))
		return err
	}
	return nil
}

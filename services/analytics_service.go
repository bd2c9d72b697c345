package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"quickly.link/configs/configslog"
	"quickly.link/models"
	"quickly.link/repositories"
	"quickly.link/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnalyticsServiceError özel servis hataları
type AnalyticsServiceError string

func (e AnalyticsServiceError) Error() string { return string(e) }

const (
	ErrAnalyticsLinkNotFound AnalyticsServiceError = "link bulunamadı"
	ErrAnalyticsInvalidRange AnalyticsServiceError = "geçersiz zaman aralığı"
)

// TopLink analitik özetindeki en çok tıklanan link satırıdır.
type TopLink struct {
	Link  models.Link `json:"link"`
	Count int         `json:"count"`
}

// AnalyticsSummary kullanıcının zaman aralığındaki özet metrikleridir.
type AnalyticsSummary struct {
	TotalViews  int               `json:"total_views"`
	TotalClicks int               `json:"total_clicks"`
	TopLinks    []TopLink         `json:"top_links"`
	ViewsByDate map[string]int    `json:"views_by_date"`
	RecentViews []models.PageView `json:"recent_views"`
}

// IAnalyticsService tıklama/görüntülenme takibi ve özet raporları için arayüz.
type IAnalyticsService interface {
	TrackLinkClick(ctx context.Context, linkID uint, referrer string) error
	RecordPageView(ctx context.Context, ownerUserID uint, referrer string)
	GetAnalytics(ctx context.Context, userID uint, rangeDays int) (*AnalyticsSummary, error)
}

// AnalyticsService IAnalyticsService arayüzünü uygular. Yazmalar asynq
// kuyruğu üzerinden fire-and-forget gider; kuyruğa yazma başarısızlığı
// ziyaretçi akışını bozmaz, sadece loglanır.
type AnalyticsService struct {
	repo     repositories.IAnalyticsRepository
	linkRepo repositories.ILinkRepository
	client   *asynq.Client
}

// NewAnalyticsService bağımlılıkları enjekte ederek servis oluşturur.
// client nil verilirse yazmalar kuyruk yerine doğrudan veritabanına gider
// (worker'sız küçük kurulumlar için).
func NewAnalyticsService(db *gorm.DB, client *asynq.Client) IAnalyticsService {
	return &AnalyticsService{
		repo:     repositories.NewAnalyticsRepository(db),
		linkRepo: repositories.NewLinkRepository(db),
		client:   client,
	}
}

// TrackLinkClick tıklamayı kuyruğa bırakır. Link sahibi burada çözülür ki
// worker tarafında ekstra sorguya gerek kalmasın.
func (s *AnalyticsService) TrackLinkClick(ctx context.Context, linkID uint, referrer string) error {
	if linkID == 0 {
		return ErrAnalyticsLinkNotFound
	}
	link, err := s.linkRepo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAnalyticsLinkNotFound
		}
		return err
	}

	payload := tasks.LinkClickPayload{
		LinkID:    link.ID,
		OwnerID:   link.UserID,
		Referrer:  referrer,
		ClickedAt: time.Now().UTC(),
	}

	if s.client == nil {
		s.recordClickDirect(ctx, payload)
		return nil
	}

	task, err := tasks.NewLinkClickTask(payload)
	if err != nil {
		configslog.Log.Error("TrackLinkClick: görev oluşturulamadı", zap.Error(err))
		return nil
	}
	if _, err := s.client.EnqueueContext(ctx, task); err != nil {
		configslog.Log.Warn("TrackLinkClick: kuyruğa yazılamadı, doğrudan kaydediliyor", zap.Error(err))
		s.recordClickDirect(ctx, payload)
	}
	return nil
}

// recordClickDirect kuyruk yokken veya düşmüşken senkron kayıt düşer.
func (s *AnalyticsService) recordClickDirect(ctx context.Context, payload tasks.LinkClickPayload) {
	click := &models.LinkClick{
		LinkID:    payload.LinkID,
		UserID:    payload.OwnerID,
		Referrer:  payload.Referrer,
		ClickedAt: payload.ClickedAt,
	}
	if err := s.repo.InsertClick(ctx, click); err != nil {
		configslog.Log.Error("Tıklama doğrudan kaydedilemedi", zap.Uint("link_id", payload.LinkID), zap.Error(err))
		return
	}
	link, err := s.linkRepo.FindByID(ctx, payload.LinkID)
	if err != nil {
		return
	}
	_, _ = s.linkRepo.UpdateScoped(ctx, link.ID, link.UserID, map[string]interface{}{
		"clicks_count": link.ClicksCount + 1,
	})
}

// RecordPageView profil görüntülenmesini kuyruğa bırakır; hata ziyaretçiye yansımaz.
func (s *AnalyticsService) RecordPageView(ctx context.Context, ownerUserID uint, referrer string) {
	if ownerUserID == 0 {
		return
	}
	payload := tasks.PageViewPayload{
		OwnerID:  ownerUserID,
		Referrer: referrer,
		ViewedAt: time.Now().UTC(),
	}

	if s.client == nil {
		view := &models.PageView{UserID: payload.OwnerID, Referrer: payload.Referrer, ViewedAt: payload.ViewedAt}
		if err := s.repo.InsertView(ctx, view); err != nil {
			configslog.Log.Error("Görüntülenme doğrudan kaydedilemedi", zap.Uint("owner_id", ownerUserID), zap.Error(err))
		}
		return
	}

	task, err := tasks.NewPageViewTask(payload)
	if err != nil {
		configslog.Log.Error("RecordPageView: görev oluşturulamadı", zap.Error(err))
		return
	}
	if _, err := s.client.EnqueueContext(ctx, task, asynq.Queue("low")); err != nil {
		configslog.Log.Warn("RecordPageView: kuyruğa yazılamadı", zap.Error(err))
	}
}

// GetAnalytics kullanıcının son rangeDays günlük özetini üretir.
// rangeDays yalnızca 7, 30 veya 90 olabilir.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, userID uint, rangeDays int) (*AnalyticsSummary, error) {
	if rangeDays != 7 && rangeDays != 30 && rangeDays != 90 {
		return nil, ErrAnalyticsInvalidRange
	}
	since := time.Now().UTC().AddDate(0, 0, -rangeDays)

	views, err := s.repo.FindViewsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	clicks, err := s.repo.FindClicksSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	// Link başına tıklama sayımı ve ilk 5.
	clickCounts := make(map[uint]*TopLink)
	for _, click := range clicks {
		entry, ok := clickCounts[click.LinkID]
		if !ok {
			entry = &TopLink{Link: click.Link}
			clickCounts[click.LinkID] = entry
		}
		entry.Count++
	}
	topLinks := make([]TopLink, 0, len(clickCounts))
	for _, entry := range clickCounts {
		topLinks = append(topLinks, *entry)
	}
	sort.Slice(topLinks, func(i, j int) bool { return topLinks[i].Count > topLinks[j].Count })
	if len(topLinks) > 5 {
		topLinks = topLinks[:5]
	}

	// Görüntülenmeleri güne göre grupla.
	viewsByDate := make(map[string]int)
	for _, view := range views {
		viewsByDate[view.ViewedAt.Format("2006-01-02")]++
	}

	recent := views
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &AnalyticsSummary{
		TotalViews:  len(views),
		TotalClicks: len(clicks),
		TopLinks:    topLinks,
		ViewsByDate: viewsByDate,
		RecentViews: recent,
	}, nil
}

// Arayüz uyumluluğu kontrolü
var _ IAnalyticsService = (*AnalyticsService)(nil)

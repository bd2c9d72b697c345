package services

import (
	"context"
	"testing"

	"quickly.link/models"
	"quickly.link/pkg/pagecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Testlerde kuyruk istemcisi nil verilir; yazmalar doğrudan tabana düşer.

func TestTrackLinkClick_DirectWrite(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "analitik@example.com")
	linkSvc := NewLinkService(db, pagecache.NoopInvalidator{})
	link, err := linkSvc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Takipli", URL: "https://example.com", IsActive: true})
	require.NoError(t, err)

	svc := NewAnalyticsService(db, nil)
	require.NoError(t, svc.TrackLinkClick(context.Background(), link.ID, "https://google.com"))
	require.NoError(t, svc.TrackLinkClick(context.Background(), link.ID, ""))

	var stored models.Link
	require.NoError(t, db.First(&stored, link.ID).Error)
	assert.Equal(t, 2, stored.ClicksCount)

	var clicks int64
	require.NoError(t, db.Model(&models.LinkClick{}).Where("link_id = ?", link.ID).Count(&clicks).Error)
	assert.EqualValues(t, 2, clicks)
}

func TestTrackLinkClick_UnknownLink(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(db, nil)
	err := svc.TrackLinkClick(context.Background(), 31337, "")
	assert.ErrorIs(t, err, ErrAnalyticsLinkNotFound)
}

func TestGetAnalytics_Summary(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ozet@example.com")
	linkSvc := NewLinkService(db, pagecache.NoopInvalidator{})

	popular, err := linkSvc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Popüler", URL: "https://example.com/p", IsActive: true})
	require.NoError(t, err)
	quiet, err := linkSvc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Sakin", URL: "https://example.com/s", IsActive: true})
	require.NoError(t, err)

	svc := NewAnalyticsService(db, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.TrackLinkClick(context.Background(), popular.ID, ""))
	}
	require.NoError(t, svc.TrackLinkClick(context.Background(), quiet.ID, ""))
	svc.RecordPageView(context.Background(), user.ID, "https://instagram.com")
	svc.RecordPageView(context.Background(), user.ID, "")

	summary, err := svc.GetAnalytics(context.Background(), user.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalViews)
	assert.Equal(t, 4, summary.TotalClicks)
	require.NotEmpty(t, summary.TopLinks)
	assert.Equal(t, popular.ID, summary.TopLinks[0].Link.ID)
	assert.Equal(t, 3, summary.TopLinks[0].Count)
	assert.Len(t, summary.RecentViews, 2)

	// Günlük kırılımda bugünün tarihi 2 görüntülenme taşır.
	total := 0
	for _, n := range summary.ViewsByDate {
		total += n
	}
	assert.Equal(t, 2, total)
}

func TestGetAnalytics_InvalidRange(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "aralik@example.com")

	svc := NewAnalyticsService(db, nil)
	_, err := svc.GetAnalytics(context.Background(), user.ID, 14)
	assert.ErrorIs(t, err, ErrAnalyticsInvalidRange)
}

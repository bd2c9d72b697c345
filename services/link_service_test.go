package services

import (
	"context"
	"testing"

	"quickly.link/models"
	"quickly.link/pkg/pagecache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLink_SortOrderAppendsToEnd(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "sira@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	first, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Birinci", URL: "https://example.com/1", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 0, first.SortOrder)

	second, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "İkinci", URL: "https://example.com/2", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 1, second.SortOrder)
}

func TestCreateLink_DangerousSchemeRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "tehlike@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	// javascript: şeması temizlenir ve zorunlu alan hatasına düşer.
	_, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "XSS", URL: "javascript:alert(1)"})
	assert.ErrorIs(t, err, ErrLinkURLRequired)

	_, err = svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "XSS", URL: "JaVaScRiPt:alert(1)"})
	assert.ErrorIs(t, err, ErrLinkURLRequired)
}

func TestCreateLink_SchemelessURLGetsHTTPS(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "sema@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	link, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Site", URL: "example.com/sayfa"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/sayfa", link.URL)
}

func TestCreateLink_TitleValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "baslik@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	_, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "", URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrLinkTitleRequired)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.CreateLink(context.Background(), user.ID, LinkInput{Title: string(long), URL: "https://example.com"})
	assert.ErrorIs(t, err, ErrLinkTitleTooLong)
}

func TestUpdateLink_OtherUsersLinkIsSilentNoop(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip@example.com")
	intruder := createTestUser(t, db, "davetsiz@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	link, err := svc.CreateLink(context.Background(), owner.ID, LinkInput{Title: "Benim", URL: "https://example.com", IsActive: true})
	require.NoError(t, err)

	// Başkasının linkini güncellemek hata vermez ama hiçbir şeyi değiştirmez.
	err = svc.UpdateLink(context.Background(), intruder.ID, link.ID, LinkInput{Title: "Ele geçirildi", URL: "https://evil.example", IsActive: true})
	require.NoError(t, err)

	var stored models.Link
	require.NoError(t, db.First(&stored, link.ID).Error)
	assert.Equal(t, "Benim", stored.Title)
	assert.Equal(t, owner.ID, stored.UserID)
}

func TestDeleteLink_OtherUsersLinkIsSilentNoop(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip2@example.com")
	intruder := createTestUser(t, db, "davetsiz2@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	link, err := svc.CreateLink(context.Background(), owner.ID, LinkInput{Title: "Kalıcı", URL: "https://example.com", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteLink(context.Background(), intruder.ID, link.ID))

	var count int64
	require.NoError(t, db.Model(&models.Link{}).Where("id = ?", link.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestToggleLink_DoubleToggleRestoresState(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "toggle@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	link, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: "Anahtar", URL: "https://example.com", IsActive: true})
	require.NoError(t, err)

	require.NoError(t, svc.ToggleLink(context.Background(), user.ID, link.ID))
	var stored models.Link
	require.NoError(t, db.First(&stored, link.ID).Error)
	assert.False(t, stored.IsActive)

	require.NoError(t, svc.ToggleLink(context.Background(), user.ID, link.ID))
	require.NoError(t, db.First(&stored, link.ID).Error)
	assert.True(t, stored.IsActive)
}

func TestToggleLink_NotFoundForOtherUser(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "sahip3@example.com")
	intruder := createTestUser(t, db, "davetsiz3@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	link, err := svc.CreateLink(context.Background(), owner.ID, LinkInput{Title: "Gizli", URL: "https://example.com", IsActive: true})
	require.NoError(t, err)

	err = svc.ToggleLink(context.Background(), intruder.ID, link.ID)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

func TestReorderLinks_AppliesPermutation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "yenidensirala@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	var ids []uint
	for _, title := range []string{"A", "B", "C"} {
		link, err := svc.CreateLink(context.Background(), user.ID, LinkInput{Title: title, URL: "https://example.com/" + title, IsActive: true})
		require.NoError(t, err)
		ids = append(ids, link.ID)
	}

	// C, A, B sırasına çevir.
	require.NoError(t, svc.ReorderLinks(context.Background(), user.ID, []uint{ids[2], ids[0], ids[1]}))

	links, err := svc.GetLinksForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "C", links[0].Title)
	assert.Equal(t, "A", links[1].Title)
	assert.Equal(t, "B", links[2].Title)
}

func TestReorderLinks_EmptyListRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bos@example.com")
	svc := NewLinkService(db, pagecache.NoopInvalidator{})

	err := svc.ReorderLinks(context.Background(), user.ID, nil)
	assert.ErrorIs(t, err, ErrLinkInvalidInput)
}

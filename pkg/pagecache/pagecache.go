package pagecache

import (
	"context"
	"fmt"

	"quickly.link/configs/configslog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Invalidator render edilmiş sayfa cache'lerini düşürür. Linkler, kartlar
// veya profil değiştiğinde ilgili görünümlerin anahtarları silinir.
// Cache'in kendisi dış katmanın (edge/render) sorumluluğudur; burası
// yalnızca invalidasyon sözleşmesini taşır.
type Invalidator interface {
	InvalidatePanelLinks(ctx context.Context, userID uint)
	InvalidatePanelCards(ctx context.Context, userID uint)
	InvalidatePublicProfile(ctx context.Context, username string)
}

// RedisInvalidator Invalidator'ın redis üzerindeki gerçeklemesidir.
type RedisInvalidator struct {
	client *redis.Client
}

// NewRedisInvalidator verilen redis client'ı ile invalidator oluşturur.
func NewRedisInvalidator(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

func (r *RedisInvalidator) InvalidatePanelLinks(ctx context.Context, userID uint) {
	r.del(ctx, fmt.Sprintf("page:panel:links:%d", userID))
}

func (r *RedisInvalidator) InvalidatePanelCards(ctx context.Context, userID uint) {
	r.del(ctx, fmt.Sprintf("page:panel:cards:%d", userID))
}

func (r *RedisInvalidator) InvalidatePublicProfile(ctx context.Context, username string) {
	if username == "" {
		return
	}
	r.del(ctx, "page:u:"+username)
}

// del anahtarı siler; hata durumunda istek akışını bozmaz, sadece loglar.
func (r *RedisInvalidator) del(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		configslog.Log.Warn("Cache invalidasyonu başarısız", zap.String("key", key), zap.Error(err))
	}
}

// NoopInvalidator cache altyapısı olmayan ortamlar (testler, worker) için.
type NoopInvalidator struct{}

func (NoopInvalidator) InvalidatePanelLinks(context.Context, uint)      {}
func (NoopInvalidator) InvalidatePanelCards(context.Context, uint)      {}
func (NoopInvalidator) InvalidatePublicProfile(context.Context, string) {}

var (
	_ Invalidator = (*RedisInvalidator)(nil)
	_ Invalidator = NoopInvalidator{}
)

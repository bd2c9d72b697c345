package configsredis

import (
	"context"
	"os"
	"time"

	"quickly.link/configs/configslog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Addr REDIS_HOST/REDIS_PORT ortam değişkenlerinden redis adresini üretir.
// Hem cache client'ı hem asynq aynı adresi kullanır.
func Addr() string {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	return host + ":" + port
}

// Password REDIS_PASSWORD değerini döndürür (boş olabilir).
func Password() string {
	return os.Getenv("REDIS_PASSWORD")
}

// NewClient yeni bir redis client'ı açar ve bağlantıyı ping ile doğrular.
func NewClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     Addr(),
		Password: Password(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		// Cache erişilemezse uygulama çalışmaya devam eder; invalidasyonlar loglanır.
		configslog.Log.Warn("Redis bağlantısı doğrulanamadı", zap.String("addr", Addr()), zap.Error(err))
	} else {
		configslog.SLog.Info("Redis bağlantısı kuruldu.")
	}
	return client
}

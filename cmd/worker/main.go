package main

import (
	"quickly.link/configs/configsdatabase"
	"quickly.link/configs/configslog"
	"quickly.link/pkg/queue"
	"quickly.link/tasks"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Worker süreci analitik kayıtlarını kuyruktan tüketir. Web sunucusundan
// bağımsız ölçeklenir; tıklama yoğunluğu istek gecikmesini etkilemez.
func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()
	db := configsdatabase.GetDB()

	srv := queue.NewServer(10)

	mux := asynq.NewServeMux()
	handler := tasks.NewHandler(db)
	handler.RegisterHandlers(mux)

	configslog.SLog.Info("Analitik worker başlatılıyor...")
	if err := srv.Run(mux); err != nil {
		configslog.Log.Fatal("Worker başlatılamadı", zap.Error(err))
	}
}

package queue

import (
	"github.com/hibiken/asynq"

	"quickly.link/configs/configsredis"
)

// NewClient analitik görevlerini kuyruğa yazan asynq client'ını oluşturur.
func NewClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     configsredis.Addr(),
		Password: configsredis.Password(),
	})
}

// NewServer worker process'inin asynq sunucusunu oluşturur.
func NewServer(concurrency int) *asynq.Server {
	if concurrency <= 0 {
		concurrency = 10
	}
	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     configsredis.Addr(),
			Password: configsredis.Password(),
		},
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 5,
				"low":     1,
			},
		},
	)
}

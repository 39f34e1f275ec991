// Package events 將訂單生命週期事件以 JSON 發布到 Redis pub/sub
package events

import (
	"context"
	"encoding/json"
	"time"

	"pizza-delivery/internal/cache"
	"pizza-delivery/internal/metrics"
	"pizza-delivery/internal/model"
	"pizza-delivery/internal/worker"

	"github.com/sirupsen/logrus"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderUpdated       = "order.updated"
	TypeOrderStatusChanged = "order.status_changed"
	TypeOrderDeleted       = "order.deleted"
)

const publishTimeout = 3 * time.Second

type OrderEvent struct {
	Type       string      `json:"type"`
	Actor      string      `json:"actor"`
	Order      model.Order `json:"order"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher 發布事件；實作不得阻塞呼叫端
type Publisher interface {
	Publish(ctx context.Context, e OrderEvent)
}

type RedisPublisher struct {
	cache   cache.Cache
	pool    worker.Pool
	channel string
	log     logrus.FieldLogger
}

var jsonMarshal = json.Marshal

func NewRedisPublisher(c cache.Cache, pool worker.Pool, channel string, log logrus.FieldLogger) *RedisPublisher {
	return &RedisPublisher{cache: c, pool: pool, channel: channel, log: log}
}

// Publish 將事件交給 worker pool；佇列已滿或已停止時丟棄事件並記錄
func (p *RedisPublisher) Publish(_ context.Context, e OrderEvent) {
	entry := p.log.WithFields(logrus.Fields{
		"event":    e.Type,
		"order_id": e.Order.ID,
		"channel":  p.channel,
	})

	payload, err := jsonMarshal(e)
	if err != nil {
		metrics.RecordEvent("failed")
		entry.WithError(err).Error("encode order event")
		return
	}

	err = p.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.cache.Publish(ctx, p.channel, payload).Err(); err != nil {
			metrics.RecordEvent("failed")
			entry.WithError(err).Warn("publish order event")
			return
		}
		metrics.RecordEvent("ok")
	})
	if err != nil {
		metrics.RecordEvent("dropped")
		entry.WithError(err).Warn("drop order event")
	}
}

type FakePublisher struct {
	PublishFn func(ctx context.Context, e OrderEvent)
}

// Publish 未設定 PublishFn 時為 no-op
func (f *FakePublisher) Publish(ctx context.Context, e OrderEvent) {
	if f.PublishFn != nil {
		f.PublishFn(ctx, e)
	}
}

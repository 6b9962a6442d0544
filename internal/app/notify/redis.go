package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"pem/internal/app/domains/entity/etalert"
	"pem/internal/app/infra/persistence/redis"
)

// RedisNotifier Redis Pub/Sub 通知通道
// 告警序列化为 JSON 后发布到固定 channel，供看板等订阅方实时消费
type RedisNotifier struct {
	client  *redis.PubSubClient
	channel string
}

// NewRedisNotifier 创建 Redis 通道
func NewRedisNotifier(client *redis.PubSubClient, channel string) *RedisNotifier {
	if channel == "" {
		channel = "expiration_alerts"
	}
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

// Name 实现 Notifier 接口
func (n *RedisNotifier) Name() string {
	return "redis"
}

// Notify 发布告警
func (n *RedisNotifier) Notify(ctx context.Context, alert *etalert.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshal alert failed: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, string(payload)); err != nil {
		return fmt.Errorf("publish alert to redis failed: %w", err)
	}
	return nil
}

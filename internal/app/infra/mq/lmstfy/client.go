package lmstfy

import (
	"fmt"

	"github.com/bitleak/lmstfy/client"
)

// Client Lmstfy 客户端封装
// 邮件告警不在本进程内发送，只把组装好的告警投到队列，由邮件 worker 消费
type Client struct {
	cli       *client.LmstfyClient
	namespace string
}

// NewClient 创建 Lmstfy 客户端
func NewClient(host string, port int, namespace string, token string) (*Client, error) {
	cli := client.NewLmstfyClient(host, port, namespace, token)
	return &Client{
		cli:       cli,
		namespace: namespace,
	}, nil
}

// Publish 发布消息
// ttl: 消息存活时间（秒），delay: 延迟时间（秒）
func (c *Client) Publish(queue string, data []byte, ttl, delay uint32) error {
	_, err := c.cli.Publish(queue, data, ttl, 3, delay)
	if err != nil {
		return fmt.Errorf("lmstfy publish failed: %w", err)
	}
	return nil
}

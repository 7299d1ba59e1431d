package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"bookswap_server/internal/config"
)

// KafkaEventWriter EventWriter 的 Kafka 实现
// 按 TargetId 哈希分区，保证同一用户的事件有序
type KafkaEventWriter struct {
	writer *kafka.Writer
}

// NewKafkaEventWriter 创建 Kafka 事件写入器
func NewKafkaEventWriter(cfg config.KafkaConfig) *KafkaEventWriter {
	return &KafkaEventWriter{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.HostPort),
			Topic:                  cfg.EventTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           time.Duration(cfg.Timeout) * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
	}
}

// WriteEvent 写入一条事件
func (k *KafkaEventWriter) WriteEvent(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TargetId),
		Value: value,
	})
}

// Close 关闭底层 writer
func (k *KafkaEventWriter) Close() error {
	if err := k.writer.Close(); err != nil {
		zap.L().Error(err.Error())
		return err
	}
	return nil
}

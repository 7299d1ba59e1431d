package mq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookswap_server/internal/config"
)

// NewEventWriter 根据配置创建事件写入器
// eventMode 为 "kafka" 时写 Kafka，否则使用进程内通道
func NewEventWriter(cfg config.KafkaConfig) EventWriter {
	if cfg.EventMode == "kafka" {
		zap.L().Info("event writer mode: kafka", zap.String("topic", cfg.EventTopic))
		return NewKafkaEventWriter(cfg)
	}
	zap.L().Info("event writer mode: channel")
	return NewChannelEventWriter()
}

// Publish 构造并写入一条领域事件
// 发布失败只记日志：事件流是通知通道，不参与业务事务
func Publish(writer EventWriter, eventType, actorId, targetId string, payload any) {
	if writer == nil {
		return
	}
	var payloadStr string
	if payload != nil {
		if data, err := json.Marshal(payload); err == nil {
			payloadStr = string(data)
		}
	}
	event := Event{
		Uuid:       uuid.NewString(),
		Type:       eventType,
		ActorId:    actorId,
		TargetId:   targetId,
		Payload:    payloadStr,
		OccurredAt: time.Now(),
	}
	if err := writer.WriteEvent(context.Background(), event); err != nil {
		zap.L().Error("publish event failed",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

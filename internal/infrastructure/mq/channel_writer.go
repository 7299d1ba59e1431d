package mq

import (
	"context"

	"go.uber.org/zap"

	"bookswap_server/pkg/constants"
)

// ChannelEventWriter EventWriter 的进程内实现
// 单机部署或测试时使用，事件进入缓冲通道由后台协程消费
type ChannelEventWriter struct {
	events chan Event
	done   chan struct{}
}

// NewChannelEventWriter 创建进程内事件写入器并启动消费协程
func NewChannelEventWriter() *ChannelEventWriter {
	w := &ChannelEventWriter{
		events: make(chan Event, constants.CHANNEL_SIZE),
		done:   make(chan struct{}),
	}
	go w.consume()
	return w
}

// consume 后台消费循环
// 目前仅结构化记录事件，后续可在此接入站内通知投递
func (w *ChannelEventWriter) consume() {
	for {
		select {
		case event := <-w.events:
			zap.L().Info("domain event",
				zap.String("uuid", event.Uuid),
				zap.String("type", event.Type),
				zap.String("actor", event.ActorId),
				zap.String("target", event.TargetId),
			)
		case <-w.done:
			return
		}
	}
}

// WriteEvent 写入一条事件
// 通道已满时丢弃并记日志，不阻塞业务请求
func (w *ChannelEventWriter) WriteEvent(ctx context.Context, event Event) error {
	select {
	case w.events <- event:
	default:
		zap.L().Warn("event channel full, dropping event", zap.String("type", event.Type))
	}
	return nil
}

// Close 停止消费协程
func (w *ChannelEventWriter) Close() error {
	close(w.done)
	return nil
}

// Package mq 提供领域事件的发布通道
// 好友申请、交换状态流转、私信发送等事件在此异步分发，
// 不参与请求的事务语义：事件发布失败只记日志，不影响业务结果
package mq

import (
	"context"
	"time"
)

// 事件类型
const (
	EventFriendshipRequested = "friendship.requested"
	EventFriendshipAccepted  = "friendship.accepted"
	EventFriendshipDeclined  = "friendship.declined"
	EventExchangeRequested   = "exchange.requested"
	EventExchangeTransition  = "exchange.transition"
	EventMessageSent         = "message.sent"
)

// Event 领域事件
type Event struct {
	Uuid       string    `json:"uuid"`        // 事件唯一标识
	Type       string    `json:"type"`        // 事件类型，见上方常量
	ActorId    string    `json:"actor_id"`    // 触发者 uuid
	TargetId   string    `json:"target_id"`   // 受影响用户 uuid（消息分区键）
	Payload    string    `json:"payload"`     // 附加数据（JSON 字符串）
	OccurredAt time.Time `json:"occurred_at"` // 发生时间
}

// EventWriter 事件写入接口
// 有 Kafka 和进程内通道两种实现，由配置 eventMode 决定
type EventWriter interface {
	// WriteEvent 写入一条事件
	WriteEvent(ctx context.Context, event Event) error
	// Close 关闭底层资源
	Close() error
}

// Package message 用户私信业务逻辑
// 私信内容创建后不可变，已读时间仅在首次标记时写入；
// 删除是单方视角的标记，对方的收件箱不受影响
package message

import (
	"database/sql"
	"strconv"
	"time"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/dto/respond"
	"bookswap_server/internal/infrastructure/mq"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/snowflake"
)

// Service 私信服务
type Service struct {
	repos  *repository.Repositories
	events mq.EventWriter
}

// NewService 创建私信服务
func NewService(repos *repository.Repositories, events mq.EventWriter) *Service {
	return &Service{repos: repos, events: events}
}

// SendMessage 发送私信
// 给自己发信和双方存在拉黑时拒绝
func (s *Service) SendMessage(actorId string, req *request.SendMessageRequest) (*respond.MessageRespond, error) {
	if actorId == req.RecipientId {
		return nil, errorx.New(errorx.CodeSelfReference, "不能给自己发私信")
	}
	if _, err := s.repos.User.FindByUuid(req.RecipientId); err != nil {
		return nil, err
	}

	blocked, err := s.repos.Blocked.ExistsBetween(actorId, req.RecipientId)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, errorx.New(errorx.CodeNotAllowed, "无法向该用户发送私信")
	}

	msg := &model.PrivateMessage{
		Uuid:          snowflake.GenerateID(),
		SenderId:      actorId,
		RecipientId:   req.RecipientId,
		Subject:       req.Subject,
		Content:       req.Content,
		RelatedBookId: req.RelatedBookId,
	}
	if err := s.repos.Message.Create(msg); err != nil {
		return nil, err
	}

	mq.Publish(s.events, mq.EventMessageSent, actorId, req.RecipientId, map[string]string{
		"message_id": strconv.FormatInt(msg.Uuid, 10),
	})
	return messageToRespond(msg), nil
}

// GetConversation 与某用户的往来私信（时间正序）
// 过滤掉自己已删除的消息
func (s *Service) GetConversation(actorId, otherId string) ([]respond.MessageRespond, error) {
	messages, err := s.repos.Message.FindConversation(actorId, otherId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		msg := &messages[i]
		if msg.SenderId == actorId && msg.IsDeletedBySender {
			continue
		}
		if msg.RecipientId == actorId && msg.IsDeletedByRecipient {
			continue
		}
		list = append(list, *messageToRespond(msg))
	}
	return list, nil
}

// GetInbox 收件箱
func (s *Service) GetInbox(actorId string) ([]respond.MessageRespond, error) {
	messages, err := s.repos.Message.FindInbox(actorId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		list = append(list, *messageToRespond(&messages[i]))
	}
	return list, nil
}

// MarkRead 标记私信已读
// 只有接收方能标记；read_at 只在首次标记时写入，重复标记是幂等空操作
func (s *Service) MarkRead(actorId string, req *request.MarkMessageReadRequest) error {
	msg, err := s.repos.Message.FindByUuid(req.MessageId)
	if err != nil {
		return err
	}
	if msg.RecipientId != actorId {
		return errorx.New(errorx.CodeNotAllowed, "只有接收方可以标记已读")
	}
	if msg.IsRead {
		return nil
	}
	msg.IsRead = true
	msg.ReadAt = sql.NullTime{Time: time.Now(), Valid: true}
	return s.repos.Message.Update(msg)
}

// DeleteMessage 从自己的视角删除私信
func (s *Service) DeleteMessage(actorId string, req *request.DeleteMessageRequest) error {
	msg, err := s.repos.Message.FindByUuid(req.MessageId)
	if err != nil {
		return err
	}
	switch actorId {
	case msg.SenderId:
		msg.IsDeletedBySender = true
	case msg.RecipientId:
		msg.IsDeletedByRecipient = true
	default:
		return errorx.New(errorx.CodeNotAllowed, "只有收发双方可以删除私信")
	}
	return s.repos.Message.Update(msg)
}

func messageToRespond(m *model.PrivateMessage) *respond.MessageRespond {
	r := &respond.MessageRespond{
		Uuid:          m.Uuid,
		SenderId:      m.SenderId,
		RecipientId:   m.RecipientId,
		Subject:       m.Subject,
		Content:       m.Content,
		RelatedBookId: m.RelatedBookId,
		IsRead:        m.IsRead,
		SentAt:        m.CreatedAt.Format(time.RFC3339),
	}
	if m.ReadAt.Valid {
		r.ReadAt = m.ReadAt.Time.Format(time.RFC3339)
	}
	return r
}

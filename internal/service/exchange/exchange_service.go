// Package exchange 图书交换业务逻辑
// 交换请求是账本式记录：创建后只允许沿状态机单向推进，
// 每次推进由对应角色触发，并附带藏书状态的联动更新
package exchange

import (
	"database/sql"
	"strconv"
	"time"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/dto/respond"
	"bookswap_server/internal/infrastructure/mq"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/enum/book/user_book_status_enum"
	"bookswap_server/pkg/enum/exchange/exchange_status_enum"
	"bookswap_server/pkg/enum/exchange/exchange_type_enum"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/snowflake"
)

// Service 交换服务
type Service struct {
	repos  *repository.Repositories
	events mq.EventWriter
}

// NewService 创建交换服务
func NewService(repos *repository.Repositories, events mq.EventWriter) *Service {
	return &Service{repos: repos, events: events}
}

// CreateExchange 发起交换请求
// 被请求的藏书必须处于可交换状态；临时借阅必须指定借阅时长；
// 提供交换的藏书（如有）必须属于发起方且同样可交换
func (s *Service) CreateExchange(actorId string, req *request.CreateExchangeRequest) (*respond.ExchangeRespond, error) {
	requested, err := s.repos.UserBook.FindByUuid(req.RequestedBookId)
	if err != nil {
		return nil, err
	}
	if requested.OwnerId == actorId {
		return nil, errorx.New(errorx.CodeSelfReference, "不能与自己交换图书")
	}
	if !requested.AvailableForExchange() {
		return nil, errorx.New(errorx.CodeBookNotAvailable, "该书当前不可交换")
	}

	blocked, err := s.repos.Blocked.ExistsBetween(actorId, requested.OwnerId)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, errorx.New(errorx.CodeNotAllowed, "无法向该用户发起交换")
	}

	if req.ExchangeType == exchange_type_enum.TEMPORARY && req.LoanDurationDays <= 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "临时借阅必须指定借阅时长")
	}

	if req.OfferedBookId != "" {
		offered, err := s.repos.UserBook.FindByUuid(req.OfferedBookId)
		if err != nil {
			return nil, err
		}
		if offered.OwnerId != actorId {
			return nil, errorx.New(errorx.CodeNotAllowed, "只能提供自己的藏书用于交换")
		}
		if !offered.AvailableForExchange() {
			return nil, errorx.New(errorx.CodeBookNotAvailable, "提供交换的书当前不可交换")
		}
	}

	record := &model.Exchange{
		Uuid:             snowflake.GenerateID(),
		RequesterId:      actorId,
		OwnerId:          requested.OwnerId,
		RequestedBookId:  req.RequestedBookId,
		OfferedBookId:    req.OfferedBookId,
		ExchangeType:     req.ExchangeType,
		Status:           exchange_status_enum.REQUESTED,
		Message:          req.Message,
		LoanDurationDays: req.LoanDurationDays,
	}
	if err := s.repos.Exchange.Create(record); err != nil {
		return nil, err
	}

	mq.Publish(s.events, mq.EventExchangeRequested, actorId, record.OwnerId, map[string]string{
		"exchange_id": strconv.FormatInt(record.Uuid, 10),
	})
	return exchangeToRespond(record), nil
}

// transition 状态机的一条合法迁移
type transition struct {
	from      []int8
	to        int8
	ownerOnly bool // 仅图书所有者可触发
	reqOnly   bool // 仅发起方可触发
}

// transitions 动作名到状态迁移的映射
// accept/decline 由所有者处理请求；cancel 是发起方在交付前的退出通道；
// ship 表示所有者发出图书；complete 双方任一确认收到；
// return 仅临时借阅在完成后归还，回到可交换状态
var transitions = map[string]transition{
	"accept":   {from: []int8{exchange_status_enum.REQUESTED}, to: exchange_status_enum.ACCEPTED, ownerOnly: true},
	"decline":  {from: []int8{exchange_status_enum.REQUESTED}, to: exchange_status_enum.DECLINED, ownerOnly: true},
	"cancel":   {from: []int8{exchange_status_enum.REQUESTED, exchange_status_enum.ACCEPTED}, to: exchange_status_enum.CANCELLED, reqOnly: true},
	"ship":     {from: []int8{exchange_status_enum.ACCEPTED}, to: exchange_status_enum.IN_TRANSIT, ownerOnly: true},
	"complete": {from: []int8{exchange_status_enum.ACCEPTED, exchange_status_enum.IN_TRANSIT}, to: exchange_status_enum.COMPLETED},
	"return":   {from: []int8{exchange_status_enum.COMPLETED}, to: exchange_status_enum.RETURNED, ownerOnly: true},
}

// Transition 推进交换状态
// 非参与者一律 CodeNotAllowed；非法的来源状态 CodeInvalidTransition。
// accepted_at / completed_at 仅在首次到达对应状态时写入
func (s *Service) Transition(actorId string, req *request.TransitionExchangeRequest) (*respond.ExchangeRespond, error) {
	record, err := s.repos.Exchange.FindByUuid(req.ExchangeId)
	if err != nil {
		return nil, err
	}
	if actorId != record.RequesterId && actorId != record.OwnerId {
		return nil, errorx.New(errorx.CodeNotAllowed, "只有交换参与方可以操作")
	}

	t, ok := transitions[req.Action]
	if !ok {
		return nil, errorx.New(errorx.CodeInvalidParam, "未知的操作")
	}
	if t.ownerOnly && actorId != record.OwnerId {
		return nil, errorx.New(errorx.CodeNotAllowed, "该操作仅限图书所有者")
	}
	if t.reqOnly && actorId != record.RequesterId {
		return nil, errorx.New(errorx.CodeNotAllowed, "该操作仅限发起方")
	}
	if !allowedFrom(t, record.Status) {
		return nil, errorx.Newf(errorx.CodeInvalidTransition, "当前状态不允许 %s", req.Action)
	}
	// 归还只对临时借阅有意义
	if req.Action == "return" && record.ExchangeType != exchange_type_enum.TEMPORARY {
		return nil, errorx.New(errorx.CodeInvalidTransition, "永久交换不存在归还")
	}

	now := time.Now()
	record.Status = t.to
	switch t.to {
	case exchange_status_enum.ACCEPTED:
		if !record.AcceptedAt.Valid {
			record.AcceptedAt = sql.NullTime{Time: now, Valid: true}
		}
	case exchange_status_enum.COMPLETED:
		if !record.CompletedAt.Valid {
			record.CompletedAt = sql.NullTime{Time: now, Valid: true}
		}
	}

	// 状态写入与藏书联动在同一事务内
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Exchange.Update(record); err != nil {
			return err
		}
		return s.applyBookSideEffects(tx, record)
	})
	if err != nil {
		return nil, err
	}

	mq.Publish(s.events, mq.EventExchangeTransition, actorId, s.counterparty(actorId, record), map[string]string{
		"exchange_id": strconv.FormatInt(record.Uuid, 10),
		"action":      req.Action,
	})
	return exchangeToRespond(record), nil
}

func allowedFrom(t transition, status int8) bool {
	for _, from := range t.from {
		if from == status {
			return true
		}
	}
	return false
}

// applyBookSideEffects 按到达的状态联动藏书
func (s *Service) applyBookSideEffects(tx *repository.Repositories, record *model.Exchange) error {
	switch record.Status {
	case exchange_status_enum.COMPLETED:
		// 永久交换换出，临时借阅借出
		status := user_book_status_enum.EXCHANGED
		if record.ExchangeType == exchange_type_enum.TEMPORARY {
			status = user_book_status_enum.LENT_OUT
		}
		if err := tx.UserBook.UpdateStatus(record.RequestedBookId, status); err != nil {
			return err
		}
		if record.ExchangeType == exchange_type_enum.PERMANENT && record.OfferedBookId != "" {
			return tx.UserBook.UpdateStatus(record.OfferedBookId, user_book_status_enum.EXCHANGED)
		}
	case exchange_status_enum.RETURNED:
		return tx.UserBook.UpdateStatus(record.RequestedBookId, user_book_status_enum.AVAILABLE)
	}
	return nil
}

// counterparty 返回交换中 actor 的对端
func (s *Service) counterparty(actorId string, record *model.Exchange) string {
	if actorId == record.RequesterId {
		return record.OwnerId
	}
	return record.RequesterId
}

// ListExchanges 自己参与的全部交换（任一侧）
func (s *Service) ListExchanges(actorId string) ([]respond.ExchangeRespond, error) {
	records, err := s.repos.Exchange.FindByUser(actorId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.ExchangeRespond, 0, len(records))
	for i := range records {
		list = append(list, *exchangeToRespond(&records[i]))
	}
	return list, nil
}

// GetExchange 查看单条交换，仅参与方可见
func (s *Service) GetExchange(actorId string, exchangeId int64) (*respond.ExchangeRespond, error) {
	record, err := s.repos.Exchange.FindByUuid(exchangeId)
	if err != nil {
		return nil, err
	}
	if actorId != record.RequesterId && actorId != record.OwnerId {
		return nil, errorx.New(errorx.CodeNotAllowed, "只有交换参与方可以查看")
	}
	return exchangeToRespond(record), nil
}

func exchangeToRespond(e *model.Exchange) *respond.ExchangeRespond {
	r := &respond.ExchangeRespond{
		Uuid:             e.Uuid,
		RequesterId:      e.RequesterId,
		OwnerId:          e.OwnerId,
		RequestedBookId:  e.RequestedBookId,
		OfferedBookId:    e.OfferedBookId,
		ExchangeType:     e.ExchangeType,
		Status:           e.Status,
		Message:          e.Message,
		LoanDurationDays: e.LoanDurationDays,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.AcceptedAt.Valid {
		r.AcceptedAt = e.AcceptedAt.Time.Format(time.RFC3339)
	}
	if e.CompletedAt.Valid {
		r.CompletedAt = e.CompletedAt.Time.Format(time.RFC3339)
	}
	return r
}

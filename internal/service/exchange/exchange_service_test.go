package exchange

import (
	"testing"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/model"
	"bookswap_server/internal/testutil"
	"bookswap_server/pkg/enum/book/user_book_status_enum"
	"bookswap_server/pkg/enum/exchange/exchange_status_enum"
	"bookswap_server/pkg/enum/exchange/exchange_type_enum"
	"bookswap_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc       *Service
	repos     *repository.Repositories
	requester *model.User
	owner     *model.User
	book      *model.UserBook
}

func setupExchange(t *testing.T) *fixture {
	t.Helper()
	repos := testutil.SetupRepos(t)
	requester := testutil.CreateTestUser(t, repos, "requester")
	owner := testutil.CreateTestUser(t, repos, "owner")
	catalogBook := testutil.CreateTestBook(t, repos, "Dune")
	userBook := testutil.CreateTestUserBook(t, repos, owner.Uuid, catalogBook.Uuid, user_book_status_enum.AVAILABLE)
	return &fixture{
		svc:       NewService(repos, nil),
		repos:     repos,
		requester: requester,
		owner:     owner,
		book:      userBook,
	}
}

func (f *fixture) create(t *testing.T, exchangeType int8) int64 {
	t.Helper()
	req := &request.CreateExchangeRequest{
		RequestedBookId: f.book.Uuid,
		ExchangeType:    exchangeType,
	}
	if exchangeType == exchange_type_enum.TEMPORARY {
		req.LoanDurationDays = 14
	}
	resp, err := f.svc.CreateExchange(f.requester.Uuid, req)
	require.NoError(t, err)
	return resp.Uuid
}

func (f *fixture) transition(actorId string, id int64, action string) error {
	_, err := f.svc.Transition(actorId, &request.TransitionExchangeRequest{
		ExchangeId: id,
		Action:     action,
	})
	return err
}

func TestCreateExchange(t *testing.T) {
	f := setupExchange(t)

	t.Run("正常发起", func(t *testing.T) {
		id := f.create(t, exchange_type_enum.PERMANENT)
		record, err := f.repos.Exchange.FindByUuid(id)
		require.NoError(t, err)
		assert.Equal(t, exchange_status_enum.REQUESTED, record.Status)
		assert.Equal(t, f.owner.Uuid, record.OwnerId)
	})

	t.Run("不能请求自己的书", func(t *testing.T) {
		_, err := f.svc.CreateExchange(f.owner.Uuid, &request.CreateExchangeRequest{
			RequestedBookId: f.book.Uuid,
		})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
	})

	t.Run("临时借阅必须指定时长", func(t *testing.T) {
		_, err := f.svc.CreateExchange(f.requester.Uuid, &request.CreateExchangeRequest{
			RequestedBookId: f.book.Uuid,
			ExchangeType:    exchange_type_enum.TEMPORARY,
		})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeInvalidParam, errorx.GetCode(err))
	})

	t.Run("不可交换状态的书被拒", func(t *testing.T) {
		require.NoError(t, f.repos.UserBook.UpdateStatus(f.book.Uuid, user_book_status_enum.OWNED))
		_, err := f.svc.CreateExchange(f.requester.Uuid, &request.CreateExchangeRequest{
			RequestedBookId: f.book.Uuid,
		})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeBookNotAvailable, errorx.GetCode(err))
		require.NoError(t, f.repos.UserBook.UpdateStatus(f.book.Uuid, user_book_status_enum.AVAILABLE))
	})
}

func TestTransitionRoles(t *testing.T) {
	f := setupExchange(t)
	id := f.create(t, exchange_type_enum.PERMANENT)

	t.Run("发起方不能替所有者接受", func(t *testing.T) {
		err := f.transition(f.requester.Uuid, id, "accept")
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})

	t.Run("局外人不能操作", func(t *testing.T) {
		stranger := testutil.CreateTestUser(t, f.repos, "stranger")
		err := f.transition(stranger.Uuid, id, "accept")
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})

	t.Run("所有者不能取消", func(t *testing.T) {
		err := f.transition(f.owner.Uuid, id, "cancel")
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})
}

func TestPermanentExchangeLifecycle(t *testing.T) {
	f := setupExchange(t)
	id := f.create(t, exchange_type_enum.PERMANENT)

	require.NoError(t, f.transition(f.owner.Uuid, id, "accept"))
	record, err := f.repos.Exchange.FindByUuid(id)
	require.NoError(t, err)
	assert.Equal(t, exchange_status_enum.ACCEPTED, record.Status)
	assert.True(t, record.AcceptedAt.Valid)
	acceptedAt := record.AcceptedAt.Time

	require.NoError(t, f.transition(f.owner.Uuid, id, "ship"))
	require.NoError(t, f.transition(f.requester.Uuid, id, "complete"))

	record, err = f.repos.Exchange.FindByUuid(id)
	require.NoError(t, err)
	assert.Equal(t, exchange_status_enum.COMPLETED, record.Status)
	assert.True(t, record.CompletedAt.Valid)
	// accepted_at 不因后续流转改变
	assert.Equal(t, acceptedAt, record.AcceptedAt.Time)

	// 完成后藏书标记为已换出
	userBook, err := f.repos.UserBook.FindByUuid(f.book.Uuid)
	require.NoError(t, err)
	assert.Equal(t, user_book_status_enum.EXCHANGED, userBook.Status)

	// 永久交换没有归还
	err = f.transition(f.owner.Uuid, id, "return")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidTransition, errorx.GetCode(err))
}

func TestTemporaryExchangeReturn(t *testing.T) {
	f := setupExchange(t)
	id := f.create(t, exchange_type_enum.TEMPORARY)

	require.NoError(t, f.transition(f.owner.Uuid, id, "accept"))
	require.NoError(t, f.transition(f.requester.Uuid, id, "complete"))

	// 借出中
	userBook, err := f.repos.UserBook.FindByUuid(f.book.Uuid)
	require.NoError(t, err)
	assert.Equal(t, user_book_status_enum.LENT_OUT, userBook.Status)

	// 归还由所有者确认，书回到可交换状态
	require.NoError(t, f.transition(f.owner.Uuid, id, "return"))

	record, err := f.repos.Exchange.FindByUuid(id)
	require.NoError(t, err)
	assert.Equal(t, exchange_status_enum.RETURNED, record.Status)

	userBook, err = f.repos.UserBook.FindByUuid(f.book.Uuid)
	require.NoError(t, err)
	assert.Equal(t, user_book_status_enum.AVAILABLE, userBook.Status)
}

func TestIllegalTransitions(t *testing.T) {
	f := setupExchange(t)
	id := f.create(t, exchange_type_enum.PERMANENT)

	// 未接受不能发货
	err := f.transition(f.owner.Uuid, id, "ship")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidTransition, errorx.GetCode(err))

	// 拒绝是终态
	require.NoError(t, f.transition(f.owner.Uuid, id, "decline"))
	err = f.transition(f.owner.Uuid, id, "accept")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidTransition, errorx.GetCode(err))
}

func TestCancelByRequester(t *testing.T) {
	f := setupExchange(t)
	id := f.create(t, exchange_type_enum.PERMANENT)

	require.NoError(t, f.transition(f.owner.Uuid, id, "accept"))
	require.NoError(t, f.transition(f.requester.Uuid, id, "cancel"))

	record, err := f.repos.Exchange.FindByUuid(id)
	require.NoError(t, err)
	assert.Equal(t, exchange_status_enum.CANCELLED, record.Status)

	// 取消后不能再推进
	err = f.transition(f.owner.Uuid, id, "ship")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidTransition, errorx.GetCode(err))
}

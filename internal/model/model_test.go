package model

import (
	"testing"
	"time"

	"bookswap_server/pkg/enum/book/user_book_status_enum"
	"bookswap_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairKey(t *testing.T) {
	// 无序对：两个方向产生同一个键
	assert.Equal(t, PairKey("Ua", "Ub"), PairKey("Ub", "Ua"))
	assert.Equal(t, "Ua:Ub", PairKey("Ub", "Ua"))
	assert.NotEqual(t, PairKey("Ua", "Ub"), PairKey("Ua", "Uc"))
}

func TestFriendshipOtherUser(t *testing.T) {
	edge := &Friendship{User1Id: "Ua", User2Id: "Ub"}
	assert.Equal(t, "Ub", edge.OtherUser("Ua"))
	assert.Equal(t, "Ua", edge.OtherUser("Ub"))
	// 查询者不在边上
	assert.Equal(t, "", edge.OtherUser("Uc"))
}

func TestFriendshipBeforeCreate(t *testing.T) {
	t.Run("自环被拒", func(t *testing.T) {
		edge := &Friendship{User1Id: "Ua", User2Id: "Ua"}
		err := edge.BeforeCreate(nil)
		require.Error(t, err)
		assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
	})

	t.Run("写入前生成归一化键", func(t *testing.T) {
		edge := &Friendship{User1Id: "Ub", User2Id: "Ua"}
		require.NoError(t, edge.BeforeCreate(nil))
		assert.Equal(t, "Ua:Ub", edge.PairKey)
	})
}

func TestBlockedUserBeforeCreate(t *testing.T) {
	block := &BlockedUser{BlockerId: "Ua", BlockedId: "Ua"}
	err := block.BeforeCreate(nil)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
}

func TestExchangeBeforeCreate(t *testing.T) {
	record := &Exchange{RequesterId: "Ua", OwnerId: "Ua"}
	err := record.BeforeCreate(nil)
	require.Error(t, err)
	assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
}

func TestUserPasswordHook(t *testing.T) {
	u := &User{RawPassword: "password123"}
	require.NoError(t, u.BeforeSave(nil))

	// 明文被清空，哈希可验证
	assert.Empty(t, u.RawPassword)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, u.CheckPassword("password123"))
	assert.False(t, u.CheckPassword("wrongpassword"))

	// 没有新密码时不触碰已有哈希
	hash := u.Password
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, hash, u.Password)
}

func TestUserDisplayName(t *testing.T) {
	u := &User{Username: "alice"}
	assert.Equal(t, "alice", u.DisplayName())

	u.FirstName = "Alice"
	u.LastName = "Zhang"
	assert.Equal(t, "Alice Zhang", u.DisplayName())
}

func TestInvitationValidity(t *testing.T) {
	now := time.Now()
	inv := &Invitation{ExpiresAt: now.Add(time.Hour)}
	assert.True(t, inv.IsValid(now))

	inv.IsAccepted = true
	assert.False(t, inv.IsValid(now))

	inv.IsAccepted = false
	inv.ExpiresAt = now.Add(-time.Hour)
	assert.True(t, inv.IsExpired(now))
	assert.False(t, inv.IsValid(now))
}

func TestUserBookAvailability(t *testing.T) {
	ub := &UserBook{Status: user_book_status_enum.AVAILABLE}
	assert.True(t, ub.AvailableForExchange())

	for _, status := range []int8{
		user_book_status_enum.OWNED,
		user_book_status_enum.LENT_OUT,
		user_book_status_enum.EXCHANGED,
	} {
		ub.Status = status
		assert.False(t, ub.AvailableForExchange())
	}
}

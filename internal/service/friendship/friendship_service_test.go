package friendship

import (
	"testing"

	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/model"
	"bookswap_server/internal/testutil"
	"bookswap_server/pkg/enum/friendship/friendship_status_enum"
	"bookswap_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestRequestFriendship(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	t.Run("正常申请", func(t *testing.T) {
		err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{
			TargetId: bob.Uuid,
			Message:  "一起换书吧",
		})
		require.NoError(t, err)

		edge, err := repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
		require.NoError(t, err)
		assert.Equal(t, friendship_status_enum.PENDING, edge.Status)
		assert.Equal(t, alice.Uuid, edge.InitiatorId)
		assert.False(t, edge.AcceptedAt.Valid)
	})

	t.Run("不能添加自己", func(t *testing.T) {
		err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: alice.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
	})

	t.Run("同方向重复申请被拒", func(t *testing.T) {
		err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeFriendshipExist, errorx.GetCode(err))
	})

	t.Run("反方向重复申请同样被拒", func(t *testing.T) {
		err := svc.RequestFriendship(bob.Uuid, &request.RequestFriendshipRequest{TargetId: alice.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeFriendshipExist, errorx.GetCode(err))
	})

	t.Run("对方关闭申请开关", func(t *testing.T) {
		carol := testutil.CreateTestUser(t, repos, "carol")
		carol.AllowFriendRequests = false
		require.NoError(t, repos.User.Update(carol))

		err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: carol.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})

	t.Run("存在拉黑时被拒", func(t *testing.T) {
		dave := testutil.CreateTestUser(t, repos, "dave")
		require.NoError(t, repos.Blocked.Create(&model.BlockedUser{
			BlockerId: dave.Uuid,
			BlockedId: alice.Uuid,
		}))

		// 被拉黑方发起
		err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: dave.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})
}

func TestRespondToRequest(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))

	t.Run("发起方不能替对方接受", func(t *testing.T) {
		err := svc.RespondToRequest(alice.Uuid, &request.RespondFriendshipRequest{
			RequesterId: bob.Uuid,
			Accept:      boolPtr(true),
		})
		require.Error(t, err)
	})

	t.Run("被申请方接受后写入接受时间", func(t *testing.T) {
		err := svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
			RequesterId: alice.Uuid,
			Accept:      boolPtr(true),
		})
		require.NoError(t, err)

		edge, err := repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
		require.NoError(t, err)
		assert.Equal(t, friendship_status_enum.ACCEPTED, edge.Status)
		assert.True(t, edge.AcceptedAt.Valid)
	})

	t.Run("已处理的申请不能重复响应", func(t *testing.T) {
		err := svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
			RequesterId: alice.Uuid,
			Accept:      boolPtr(true),
		})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeInvalidTransition, errorx.GetCode(err))
	})
}

// 关系对称性：谁发起的申请不影响双方列表里都能看到对方
func TestFriendshipSymmetry(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))
	require.NoError(t, svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
		RequesterId: alice.Uuid,
		Accept:      boolPtr(true),
	}))

	aliceFriends, err := svc.ListFriends(alice.Uuid)
	require.NoError(t, err)
	require.Len(t, aliceFriends, 1)
	assert.Equal(t, bob.Uuid, aliceFriends[0].Uuid)

	bobFriends, err := svc.ListFriends(bob.Uuid)
	require.NoError(t, err)
	require.Len(t, bobFriends, 1)
	assert.Equal(t, alice.Uuid, bobFriends[0].Uuid)

	// 双方的成为好友时间一致
	assert.Equal(t, aliceFriends[0].FriendsAt, bobFriends[0].FriendsAt)
}

// 拒绝是终态：被拒绝后无论哪一方都不能再次发起申请
func TestRequestAfterDeclineRejected(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))
	require.NoError(t, svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
		RequesterId: alice.Uuid,
		Accept:      boolPtr(false),
	}))

	err := svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeFriendshipExist, errorx.GetCode(err))

	// 换 bob 发起也一样
	err = svc.RequestFriendship(bob.Uuid, &request.RequestFriendshipRequest{TargetId: alice.Uuid})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeFriendshipExist, errorx.GetCode(err))

	edge, err := repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
	require.NoError(t, err)
	assert.Equal(t, friendship_status_enum.DECLINED, edge.Status)
}

// 二度好友：菱形拓扑 A-B、A-C、B-D、C-D
// D 经由 B 和 C 两条路径可达，但结果中只出现一次，且不包含自己和一度好友
func TestFriendsOfFriendsDiamond(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	a := testutil.CreateTestUser(t, repos, "usera")
	b := testutil.CreateTestUser(t, repos, "userb")
	c := testutil.CreateTestUser(t, repos, "userc")
	d := testutil.CreateTestUser(t, repos, "userd")

	makeFriends := func(x, y string) {
		require.NoError(t, svc.RequestFriendship(x, &request.RequestFriendshipRequest{TargetId: y}))
		require.NoError(t, svc.RespondToRequest(y, &request.RespondFriendshipRequest{
			RequesterId: x,
			Accept:      boolPtr(true),
		}))
	}
	makeFriends(a.Uuid, b.Uuid)
	makeFriends(a.Uuid, c.Uuid)
	makeFriends(b.Uuid, d.Uuid)
	makeFriends(c.Uuid, d.Uuid)

	fof, err := svc.FriendsOfFriends(a.Uuid)
	require.NoError(t, err)
	require.Len(t, fof, 1)
	assert.Equal(t, d.Uuid, fof[0].Uuid)

	// 对称：D 的二度好友也只有 A
	fofD, err := svc.FriendsOfFriends(d.Uuid)
	require.NoError(t, err)
	require.Len(t, fofD, 1)
	assert.Equal(t, a.Uuid, fofD[0].Uuid)
}

func TestRemoveFriend(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))
	require.NoError(t, svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
		RequesterId: alice.Uuid,
		Accept:      boolPtr(true),
	}))

	require.NoError(t, svc.RemoveFriend(bob.Uuid, &request.RemoveFriendRequest{TargetId: alice.Uuid}))

	friends, err := svc.ListFriends(alice.Uuid)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// 解除后可以重新申请
	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))
}

func TestBlockUser(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), nil, 14)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, svc.RequestFriendship(alice.Uuid, &request.RequestFriendshipRequest{TargetId: bob.Uuid}))
	require.NoError(t, svc.RespondToRequest(bob.Uuid, &request.RespondFriendshipRequest{
		RequesterId: alice.Uuid,
		Accept:      boolPtr(true),
	}))

	t.Run("拉黑不影响已有好友关系", func(t *testing.T) {
		require.NoError(t, svc.BlockUser(alice.Uuid, &request.BlockUserRequest{TargetId: bob.Uuid}))

		// 拉黑记录独立于好友边，边保持已接受状态
		edge, err := repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
		require.NoError(t, err)
		assert.Equal(t, friendship_status_enum.ACCEPTED, edge.Status)
	})

	t.Run("重复拉黑", func(t *testing.T) {
		err := svc.BlockUser(alice.Uuid, &request.BlockUserRequest{TargetId: bob.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeBlockExist, errorx.GetCode(err))
	})

	t.Run("拉黑期间不能发起申请", func(t *testing.T) {
		require.NoError(t, svc.RemoveFriend(alice.Uuid, &request.RemoveFriendRequest{TargetId: bob.Uuid}))

		err := svc.RequestFriendship(bob.Uuid, &request.RequestFriendshipRequest{TargetId: alice.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})

	t.Run("解除拉黑后恢复", func(t *testing.T) {
		require.NoError(t, svc.UnblockUser(alice.Uuid, &request.UnblockUserRequest{TargetId: bob.Uuid}))
		require.NoError(t, svc.RequestFriendship(bob.Uuid, &request.RequestFriendshipRequest{TargetId: alice.Uuid}))
	})

	t.Run("不能拉黑自己", func(t *testing.T) {
		err := svc.BlockUser(alice.Uuid, &request.BlockUserRequest{TargetId: alice.Uuid})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeSelfReference, errorx.GetCode(err))
	})
}

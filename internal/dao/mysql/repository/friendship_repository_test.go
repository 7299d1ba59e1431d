package repository_test

import (
	"testing"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/model"
	"bookswap_server/internal/testutil"
	"bookswap_server/pkg/enum/friendship/friendship_status_enum"
	"bookswap_server/pkg/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 同一对用户的第二条边被唯一索引拒绝，与申请方向无关
func TestFriendshipPairUniqueness(t *testing.T) {
	repos := testutil.SetupRepos(t)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, repos.Friendship.Create(&model.Friendship{
		User1Id:     alice.Uuid,
		User2Id:     bob.Uuid,
		InitiatorId: alice.Uuid,
		Status:      friendship_status_enum.PENDING,
	}))

	// 同方向重复
	err := repos.Friendship.Create(&model.Friendship{
		User1Id:     alice.Uuid,
		User2Id:     bob.Uuid,
		InitiatorId: alice.Uuid,
	})
	require.Error(t, err)

	// 反方向重复同样触发唯一索引
	err = repos.Friendship.Create(&model.Friendship{
		User1Id:     bob.Uuid,
		User2Id:     alice.Uuid,
		InitiatorId: bob.Uuid,
	})
	require.Error(t, err)
}

func TestFriendshipFindByPairDirectionless(t *testing.T) {
	repos := testutil.SetupRepos(t)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	require.NoError(t, repos.Friendship.Create(&model.Friendship{
		User1Id:     alice.Uuid,
		User2Id:     bob.Uuid,
		InitiatorId: alice.Uuid,
		Status:      friendship_status_enum.ACCEPTED,
	}))

	forward, err := repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
	require.NoError(t, err)
	backward, err := repos.Friendship.FindByPair(bob.Uuid, alice.Uuid)
	require.NoError(t, err)
	assert.Equal(t, forward.ID, backward.ID)
}

func TestBlockedExistsBetween(t *testing.T) {
	repos := testutil.SetupRepos(t)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")
	carol := testutil.CreateTestUser(t, repos, "carol")

	require.NoError(t, repos.Blocked.Create(&model.BlockedUser{
		BlockerId: alice.Uuid,
		BlockedId: bob.Uuid,
	}))

	// 两个查询方向都能看到拉黑
	got, err := repos.Blocked.ExistsBetween(alice.Uuid, bob.Uuid)
	require.NoError(t, err)
	assert.True(t, got)
	got, err = repos.Blocked.ExistsBetween(bob.Uuid, alice.Uuid)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = repos.Blocked.ExistsBetween(alice.Uuid, carol.Uuid)
	require.NoError(t, err)
	assert.False(t, got)
}

// 事务回滚：中途失败不留下任何一半的写入
func TestTransactionRollback(t *testing.T) {
	repos := testutil.SetupRepos(t)
	alice := testutil.CreateTestUser(t, repos, "alice")
	bob := testutil.CreateTestUser(t, repos, "bob")

	err := repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Friendship.Create(&model.Friendship{
			User1Id:     alice.Uuid,
			User2Id:     bob.Uuid,
			InitiatorId: alice.Uuid,
		}); err != nil {
			return err
		}
		return errorx.ErrServerBusy
	})
	require.Error(t, err)

	_, err = repos.Friendship.FindByPair(alice.Uuid, bob.Uuid)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
}

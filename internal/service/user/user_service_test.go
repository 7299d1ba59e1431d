package user

import (
	"testing"
	"time"

	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/model"
	"bookswap_server/internal/service/friendship"
	"bookswap_server/internal/testutil"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *jwt.Issuer {
	return jwt.NewIssuer(jwt.Config{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  time.Hour,
		RefreshTokenExpiry: 24 * time.Hour,
	})
}

func registerReq(email, username string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:           email,
		Username:        username,
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegister(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())

	t.Run("注册成功并签发凭证", func(t *testing.T) {
		resp, err := svc.Register(registerReq("alice@test.local", "alice"))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Uuid)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		// 密码以 bcrypt 哈希入库
		stored, err := repos.User.FindByEmail("alice@test.local")
		require.NoError(t, err)
		assert.NotEqual(t, "password123", stored.Password)
		assert.True(t, stored.CheckPassword("password123"))
	})

	t.Run("两次密码不一致在任何写入前拒绝", func(t *testing.T) {
		req := registerReq("mismatch@test.local", "mismatch")
		req.ConfirmPassword = "different456"
		_, err := svc.Register(req)
		require.Error(t, err)
		assert.Equal(t, errorx.CodePasswordMismatch, errorx.GetCode(err))

		// 没有产生任何用户记录
		_, err = repos.User.FindByEmail("mismatch@test.local")
		assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))
	})

	t.Run("邮箱重复", func(t *testing.T) {
		_, err := svc.Register(registerReq("alice@test.local", "alice2"))
		require.Error(t, err)
		assert.Equal(t, errorx.CodeEmailExist, errorx.GetCode(err))
	})

	t.Run("用户名重复", func(t *testing.T) {
		_, err := svc.Register(registerReq("alice2@test.local", "alice"))
		require.Error(t, err)
		assert.Equal(t, errorx.CodeUsernameExist, errorx.GetCode(err))
	})
}

// 并发注册：预检查通过后对方先一步入库，唯一索引冲突要映射回具体错误而不是服务繁忙
func TestRegisterDuplicateRace(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())
	_, err := svc.Register(registerReq("alice@test.local", "alice"))
	require.NoError(t, err)

	// 直接入库复现唯一索引冲突产生的数据库错误
	rival := &model.User{
		Uuid:        "Urival0000000",
		Email:       "alice@test.local",
		Username:    "rival",
		RawPassword: "password123",
	}
	dbErr := repos.User.Create(rival)
	require.Error(t, dbErr)
	require.Equal(t, errorx.CodeDBError, errorx.GetCode(dbErr))

	err = svc.registerConflict(dbErr, registerReq("alice@test.local", "other"))
	assert.Equal(t, errorx.CodeEmailExist, errorx.GetCode(err))

	err = svc.registerConflict(dbErr, registerReq("other@test.local", "alice"))
	assert.Equal(t, errorx.CodeUsernameExist, errorx.GetCode(err))

	// 回查也没有冲突时原样返回，不吞掉真实的数据库错误
	err = svc.registerConflict(dbErr, registerReq("other@test.local", "other"))
	assert.Equal(t, errorx.CodeDBError, errorx.GetCode(err))
}

// 带邀请码注册会建立好友边，双方的好友集合缓存必须随之失效，
// 否则二度好友查询会一直命中旧缓存看不到新用户
func TestRegisterWithInvitationRefreshesFriendCache(t *testing.T) {
	repos := testutil.SetupRepos(t)
	cache := redis.NewLocalCache()
	svc := NewService(repos, cache, testIssuer())
	friendSvc := friendship.NewService(repos, cache, nil, 14)

	inviter, err := svc.Register(registerReq("inviter@test.local", "inviter"))
	require.NoError(t, err)
	buddy, err := svc.Register(registerReq("buddy@test.local", "buddy"))
	require.NoError(t, err)

	accept := true
	require.NoError(t, friendSvc.RequestFriendship(buddy.Uuid, &request.RequestFriendshipRequest{TargetId: inviter.Uuid}))
	require.NoError(t, friendSvc.RespondToRequest(inviter.Uuid, &request.RespondFriendshipRequest{
		RequesterId: buddy.Uuid,
		Accept:      &accept,
	}))

	// 先查一次二度好友，把双方的好友集合写热缓存
	fof, err := friendSvc.FriendsOfFriends(buddy.Uuid)
	require.NoError(t, err)
	assert.Empty(t, fof)

	inv, err := friendSvc.CreateInvitation(inviter.Uuid, &request.CreateInvitationRequest{Email: "newbie@test.local"})
	require.NoError(t, err)

	req := registerReq("newbie@test.local", "newbie")
	req.InvitationCode = inv.Code
	newbie, err := svc.Register(req)
	require.NoError(t, err)

	// buddy 经由 inviter 应立即看到新注册的 newbie
	fof, err = friendSvc.FriendsOfFriends(buddy.Uuid)
	require.NoError(t, err)
	require.Len(t, fof, 1)
	assert.Equal(t, newbie.Uuid, fof[0].Uuid)
}

func TestLogin(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())
	_, err := svc.Register(registerReq("alice@test.local", "alice"))
	require.NoError(t, err)

	t.Run("登录成功", func(t *testing.T) {
		resp, err := svc.Login(&request.LoginRequest{
			Email:    "alice@test.local",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	// 账号不存在与密码错误返回完全相同的错误，防止账号枚举
	t.Run("凭证错误提示统一", func(t *testing.T) {
		_, errNoUser := svc.Login(&request.LoginRequest{
			Email:    "nobody@test.local",
			Password: "password123",
		})
		_, errBadPass := svc.Login(&request.LoginRequest{
			Email:    "alice@test.local",
			Password: "wrongpassword",
		})
		require.Error(t, errNoUser)
		require.Error(t, errBadPass)
		assert.Equal(t, errorx.GetCode(errNoUser), errorx.GetCode(errBadPass))
		assert.Equal(t, errNoUser.Error(), errBadPass.Error())
	})
}

func TestRefreshToken(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())
	resp, err := svc.Register(registerReq("alice@test.local", "alice"))
	require.NoError(t, err)

	t.Run("refresh token 换发", func(t *testing.T) {
		newPair, err := svc.RefreshToken(&request.RefreshTokenRequest{RefreshToken: resp.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, newPair.AccessToken)
	})

	t.Run("access token 不能用于换发", func(t *testing.T) {
		_, err := svc.RefreshToken(&request.RefreshTokenRequest{RefreshToken: resp.AccessToken})
		require.Error(t, err)
		assert.Equal(t, errorx.CodeUnauthorized, errorx.GetCode(err))
	})
}

func TestGetUserInfoPrivacy(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())

	alice, err := svc.Register(registerReq("alice@test.local", "alice"))
	require.NoError(t, err)
	bob, err := svc.Register(registerReq("bob@test.local", "bob"))
	require.NoError(t, err)

	hideLocation := false
	_, err = svc.UpdateUserInfo(alice.Uuid, &request.UpdateUserInfoRequest{
		Location:     strPtr("Beijing"),
		PhoneNumber:  strPtr("13800000000"),
		ShowLocation: &hideLocation,
	})
	require.NoError(t, err)

	t.Run("本人可见全部字段", func(t *testing.T) {
		info, err := svc.GetUserInfo(alice.Uuid, alice.Uuid)
		require.NoError(t, err)
		assert.Equal(t, "alice@test.local", info.Email)
		assert.Equal(t, "Beijing", info.Location)
		assert.Equal(t, "13800000000", info.PhoneNumber)
	})

	t.Run("他人不可见联系方式和隐藏的位置", func(t *testing.T) {
		info, err := svc.GetUserInfo(bob.Uuid, alice.Uuid)
		require.NoError(t, err)
		assert.Empty(t, info.Email)
		assert.Empty(t, info.PhoneNumber)
		assert.Empty(t, info.Location)
	})

	t.Run("非公开资料对陌生人拒绝", func(t *testing.T) {
		private := false
		_, err := svc.UpdateUserInfo(alice.Uuid, &request.UpdateUserInfoRequest{IsProfilePublic: &private})
		require.NoError(t, err)

		_, err = svc.GetUserInfo(bob.Uuid, alice.Uuid)
		require.Error(t, err)
		assert.Equal(t, errorx.CodeNotAllowed, errorx.GetCode(err))
	})
}

func TestDeleteUserCascade(t *testing.T) {
	repos := testutil.SetupRepos(t)
	svc := NewService(repos, redis.NewLocalCache(), testIssuer())

	alice, err := svc.Register(registerReq("alice@test.local", "alice"))
	require.NoError(t, err)

	catalogBook := testutil.CreateTestBook(t, repos, "The Go Programming Language")
	testutil.CreateTestUserBook(t, repos, alice.Uuid, catalogBook.Uuid, 1)

	require.NoError(t, svc.DeleteUser(alice.Uuid))

	// 账号与藏书一并消失，登录失败
	_, err = repos.User.FindByUuid(alice.Uuid)
	assert.Equal(t, errorx.CodeNotFound, errorx.GetCode(err))

	books, err := repos.UserBook.FindByOwner(alice.Uuid)
	require.NoError(t, err)
	assert.Empty(t, books)

	_, err = svc.Login(&request.LoginRequest{Email: "alice@test.local", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeInvalidCredentials, errorx.GetCode(err))
}

func strPtr(s string) *string { return &s }

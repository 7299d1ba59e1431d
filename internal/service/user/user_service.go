// Package user 用户账号与资料业务逻辑
package user

import (
	"database/sql"
	"time"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/dto/respond"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/enum/friendship/friendship_status_enum"
	"bookswap_server/pkg/errorx"
	"bookswap_server/pkg/util/jwt"
	"bookswap_server/pkg/util/random"

	"go.uber.org/zap"
)

// Service 用户服务
type Service struct {
	repos  *repository.Repositories
	cache  redis.CacheService
	issuer *jwt.Issuer
}

// NewService 创建用户服务
func NewService(repos *repository.Repositories, cache redis.CacheService, issuer *jwt.Issuer) *Service {
	return &Service{repos: repos, cache: cache, issuer: issuer}
}

// Register 用户注册
// 两次密码不一致在任何查库和写入之前拒绝；邮箱、用户名唯一冲突分别返回独立错误码。
// 携带有效邀请码时，注册成功后与邀请人自动建立好友关系。
func (s *Service) Register(req *request.RegisterRequest) (*respond.RegisterRespond, error) {
	// 密码一致性最先校验，不产生任何副作用
	if req.Password != req.ConfirmPassword {
		return nil, errorx.New(errorx.CodePasswordMismatch, "两次输入的密码不一致")
	}

	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeEmailExist, "该邮箱已被注册")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}
	if _, err := s.repos.User.FindByUsername(req.Username); err == nil {
		return nil, errorx.New(errorx.CodeUsernameExist, "该用户名已被占用")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}

	newUser := &model.User{
		Uuid:                "U" + random.GetNowAndLenRandomString(13),
		Email:               req.Email,
		Username:            req.Username,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		RawPassword:         req.Password,
		IsProfilePublic:     true,
		AllowFriendRequests: true,
		ShowLocation:        true,
	}

	var inviterId string
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.User.Create(newUser); err != nil {
			return err
		}
		// 邀请码无效不阻断注册，只是不建立好友关系
		if req.InvitationCode != "" {
			inviter, err := acceptInvitationTx(tx, newUser, req.InvitationCode)
			if err != nil {
				zap.L().Info("注册邀请码未生效",
					zap.String("code", req.InvitationCode),
					zap.Error(err),
				)
			} else {
				inviterId = inviter
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.registerConflict(err, req)
	}

	// 注册时建立了好友边，双方的好友集合缓存都要失效
	if inviterId != "" {
		redis.InvalidateFriendSet(s.cache, inviterId)
		redis.InvalidateFriendSet(s.cache, newUser.Uuid)
	}

	pair, err := s.issuer.IssuePair(newUser.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "签发凭证失败")
	}

	zap.L().Info("用户注册成功", zap.String("uuid", newUser.Uuid))
	return &respond.RegisterRespond{
		Uuid:         newUser.Uuid,
		Email:        newUser.Email,
		Username:     newUser.Username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// registerConflict 并发注册的唯一索引兜底
// 预检查通过后对方先一步入库时 Create 会撞唯一索引返回数据库错误，
// 这里回查一次，把它映射回具体的邮箱/用户名冲突
func (s *Service) registerConflict(err error, req *request.RegisterRequest) error {
	if errorx.GetCode(err) != errorx.CodeDBError {
		return err
	}
	if _, dupErr := s.repos.User.FindByEmail(req.Email); dupErr == nil {
		return errorx.New(errorx.CodeEmailExist, "该邮箱已被注册")
	}
	if _, dupErr := s.repos.User.FindByUsername(req.Username); dupErr == nil {
		return errorx.New(errorx.CodeUsernameExist, "该用户名已被占用")
	}
	return err
}

// acceptInvitationTx 在注册事务内核销邀请码并与邀请人建立好友关系
// 成功时返回邀请人 uuid，供事务提交后失效双方的好友集合缓存
func acceptInvitationTx(tx *repository.Repositories, newUser *model.User, code string) (string, error) {
	invitation, err := tx.Invitation.FindByCode(code)
	if err != nil {
		return "", err
	}
	now := time.Now()
	if !invitation.IsValid(now) {
		return "", errorx.New(errorx.CodeInvitationInvalid, "邀请码已过期或已被使用")
	}
	invitation.IsAccepted = true
	invitation.AcceptedBy = newUser.Uuid
	invitation.AcceptedAt = sql.NullTime{Time: now, Valid: true}
	if err := tx.Invitation.Update(invitation); err != nil {
		return "", err
	}
	edge := &model.Friendship{
		User1Id:     invitation.InviterId,
		User2Id:     newUser.Uuid,
		InitiatorId: invitation.InviterId,
		Status:      friendship_status_enum.ACCEPTED,
		AcceptedAt:  sql.NullTime{Time: now, Valid: true},
	}
	if err := tx.Friendship.Create(edge); err != nil {
		return "", err
	}
	return invitation.InviterId, nil
}

// Login 邮箱密码登录
// 账号不存在和密码错误返回同一个错误，避免暴露某邮箱是否已注册
func (s *Service) Login(req *request.LoginRequest) (*respond.LoginRespond, error) {
	account, err := s.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.ErrInvalidCredentials
		}
		return nil, err
	}
	if !account.CheckPassword(req.Password) {
		return nil, errorx.ErrInvalidCredentials
	}

	pair, err := s.issuer.IssuePair(account.Uuid)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "签发凭证失败")
	}

	return &respond.LoginRespond{
		Uuid:         account.Uuid,
		Email:        account.Email,
		Username:     account.Username,
		DisplayName:  account.DisplayName(),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// RefreshToken 用 refresh token 换发新的凭证对
func (s *Service) RefreshToken(req *request.RefreshTokenRequest) (*respond.RefreshTokenRespond, error) {
	claims, err := s.issuer.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "refresh token 无效")
	}
	if claims.Subject != jwt.SubjectRefresh {
		return nil, errorx.New(errorx.CodeUnauthorized, "凭证类型错误")
	}
	if _, err := s.repos.User.FindByUuid(claims.UserID); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "用户不存在")
	}

	pair, err := s.issuer.IssuePair(claims.UserID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "签发凭证失败")
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

// GetUserInfo 查看用户资料
// 本人可见全部字段；其他人按隐私设置裁剪：
// 非公开资料只有已接受的好友可见，ShowLocation 为 false 时隐藏位置信息
func (s *Service) GetUserInfo(viewerId, targetUuid string) (*respond.UserInfoRespond, error) {
	target, err := s.repos.User.FindByUuid(targetUuid)
	if err != nil {
		return nil, err
	}

	if viewerId == target.Uuid {
		return fullUserInfo(target), nil
	}

	if !target.IsProfilePublic {
		isFriend, err := s.areFriends(viewerId, target.Uuid)
		if err != nil {
			return nil, err
		}
		if !isFriend {
			return nil, errorx.New(errorx.CodeNotAllowed, "对方的资料未公开")
		}
	}

	info := &respond.UserInfoRespond{
		Uuid:            target.Uuid,
		Username:        target.Username,
		DisplayName:     target.DisplayName(),
		FirstName:       target.FirstName,
		LastName:        target.LastName,
		Bio:             target.Bio,
		IsProfilePublic: target.IsProfilePublic,
		CreatedAt:       target.CreatedAt.Format(time.RFC3339),
	}
	if target.ShowLocation {
		info.Location = target.Location
		info.Latitude = target.Latitude
		info.Longitude = target.Longitude
	}
	return info, nil
}

// fullUserInfo 本人视角的完整资料
func fullUserInfo(u *model.User) *respond.UserInfoRespond {
	return &respond.UserInfoRespond{
		Uuid:            u.Uuid,
		Username:        u.Username,
		DisplayName:     u.DisplayName(),
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		Location:        u.Location,
		PhoneNumber:     u.PhoneNumber,
		IsProfilePublic: u.IsProfilePublic,
		Latitude:        u.Latitude,
		Longitude:       u.Longitude,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

// areFriends 两用户间是否存在已接受的好友边
func (s *Service) areFriends(userA, userB string) (bool, error) {
	if userA == "" || userB == "" {
		return false, nil
	}
	edge, err := s.repos.Friendship.FindByPair(userA, userB)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return false, nil
		}
		return false, err
	}
	return edge.Status == friendship_status_enum.ACCEPTED, nil
}

// UpdateUserInfo 更新个人资料，nil 字段跳过
func (s *Service) UpdateUserInfo(uuid string, req *request.UpdateUserInfoRequest) (*respond.UserInfoRespond, error) {
	account, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.Bio != nil {
		account.Bio = *req.Bio
	}
	if req.Location != nil {
		account.Location = *req.Location
	}
	if req.PhoneNumber != nil {
		account.PhoneNumber = *req.PhoneNumber
	}
	if req.IsProfilePublic != nil {
		account.IsProfilePublic = *req.IsProfilePublic
	}
	if req.AllowFriendRequests != nil {
		account.AllowFriendRequests = *req.AllowFriendRequests
	}
	if req.ShowLocation != nil {
		account.ShowLocation = *req.ShowLocation
	}
	if req.Latitude != nil {
		account.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		account.Longitude = req.Longitude
	}

	if err := s.repos.User.Update(account); err != nil {
		return nil, err
	}
	return fullUserInfo(account), nil
}

// DeleteUser 注销账号
// 在单个事务内级联软删除该用户的全部数据：
// 好友边、拉黑记录、邀请、藏书、交换、私信，最后是账号本身
func (s *Service) DeleteUser(uuid string) error {
	// 删库前先取好友列表，用于事后失效对端缓存
	edges, err := s.repos.Friendship.FindAcceptedByUser(uuid)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		targets := []string{uuid}
		if err := tx.Friendship.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		if err := tx.Blocked.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		if err := tx.Invitation.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		if err := tx.UserBook.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		if err := tx.Exchange.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		if err := tx.Message.SoftDeleteByUsers(targets); err != nil {
			return err
		}
		return tx.User.SoftDeleteByUuid(uuid)
	})
	if err != nil {
		return err
	}

	// 缓存失效放在事务外：失败只影响缓存命中，读取方会回源数据库
	redis.InvalidateFriendSet(s.cache, uuid)
	for _, edge := range edges {
		redis.InvalidateFriendSet(s.cache, edge.OtherUser(uuid))
	}

	zap.L().Info("用户已注销", zap.String("uuid", uuid))
	return nil
}

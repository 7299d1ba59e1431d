// 本文件实现站外邀请：向尚未注册的邮箱发出邀请码，
// 对方注册并接受后与邀请人自动成为好友
package friendship

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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateInvitation 发出站外邀请
// 已注册的邮箱应直接走好友申请；同一邀请人对同一邮箱只能有一条邀请
func (s *Service) CreateInvitation(actorId string, req *request.CreateInvitationRequest) (*respond.InvitationRespond, error) {
	if _, err := s.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeEmailExist, "该邮箱已是注册用户，请直接发起好友申请")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}

	if _, err := s.repos.Invitation.FindByInviterAndEmail(actorId, req.Email); err == nil {
		return nil, errorx.New(errorx.CodeInvitationExist, "已向该邮箱发出过邀请")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return nil, err
	}

	now := time.Now()
	invitation := &model.Invitation{
		InviterId: actorId,
		Email:     req.Email,
		Message:   req.Message,
		Code:      uuid.NewString(),
		IsSent:    true,
		SentAt:    sql.NullTime{Time: now, Valid: true},
		ExpiresAt: now.Add(s.invitationExpiry),
	}
	if err := s.repos.Invitation.Create(invitation); err != nil {
		return nil, err
	}

	// 邮件投递由外部系统消费日志/事件完成，这里只记录
	zap.L().Info("邀请已创建",
		zap.String("inviter", actorId),
		zap.String("email", req.Email),
	)
	return invitationToRespond(invitation), nil
}

// AcceptInvitation 已注册用户凭邀请码接受邀请
// 核销邀请码并与邀请人建立已接受的好友边，两步在同一事务内完成
func (s *Service) AcceptInvitation(actorId string, req *request.AcceptInvitationRequest) error {
	invitation, err := s.repos.Invitation.FindByCode(req.Code)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return errorx.New(errorx.CodeInvitationInvalid, "邀请码无效")
		}
		return err
	}
	now := time.Now()
	if !invitation.IsValid(now) {
		return errorx.New(errorx.CodeInvitationInvalid, "邀请码已过期或已被使用")
	}
	if invitation.InviterId == actorId {
		return errorx.New(errorx.CodeSelfReference, "不能接受自己发出的邀请")
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		invitation.IsAccepted = true
		invitation.AcceptedBy = actorId
		invitation.AcceptedAt = sql.NullTime{Time: now, Valid: true}
		if err := tx.Invitation.Update(invitation); err != nil {
			return err
		}

		// 双方已是好友时只核销邀请码
		if _, err := tx.Friendship.FindByPair(invitation.InviterId, actorId); err == nil {
			return nil
		} else if errorx.GetCode(err) != errorx.CodeNotFound {
			return err
		}
		edge := &model.Friendship{
			User1Id:     invitation.InviterId,
			User2Id:     actorId,
			InitiatorId: invitation.InviterId,
			Status:      friendship_status_enum.ACCEPTED,
			Message:     invitation.Message,
			AcceptedAt:  sql.NullTime{Time: now, Valid: true},
		}
		return tx.Friendship.Create(edge)
	})
	if err != nil {
		return err
	}

	redis.InvalidateFriendSet(s.cache, invitation.InviterId)
	redis.InvalidateFriendSet(s.cache, actorId)
	return nil
}

// ListInvitations 自己发出的全部邀请
func (s *Service) ListInvitations(actorId string) ([]respond.InvitationRespond, error) {
	invitations, err := s.repos.Invitation.FindByInviter(actorId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.InvitationRespond, 0, len(invitations))
	for i := range invitations {
		list = append(list, *invitationToRespond(&invitations[i]))
	}
	return list, nil
}

func invitationToRespond(inv *model.Invitation) *respond.InvitationRespond {
	return &respond.InvitationRespond{
		Email:      inv.Email,
		Code:       inv.Code,
		IsSent:     inv.IsSent,
		IsAccepted: inv.IsAccepted,
		ExpiresAt:  inv.ExpiresAt.Format(time.RFC3339),
	}
}

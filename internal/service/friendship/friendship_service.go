// Package friendship 好友关系图业务逻辑
// 好友关系是无序边：一对用户无论申请方向只存在一条记录，
// 方向相关的读取（对端是谁、谁发起的）全部在查询时派生
package friendship

import (
	"database/sql"
	"sort"
	"time"

	"bookswap_server/internal/dao/mysql/repository"
	"bookswap_server/internal/dao/redis"
	"bookswap_server/internal/dto/request"
	"bookswap_server/internal/dto/respond"
	"bookswap_server/internal/infrastructure/mq"
	"bookswap_server/internal/model"
	"bookswap_server/pkg/constants"
	"bookswap_server/pkg/enum/friendship/friendship_status_enum"
	"bookswap_server/pkg/errorx"

	"go.uber.org/zap"
)

// Service 好友关系服务
type Service struct {
	repos  *repository.Repositories
	cache  redis.CacheService
	events mq.EventWriter

	invitationExpiry time.Duration // 邀请码有效期
}

// NewService 创建好友关系服务
// invitationExpiryDays <= 0 时使用默认有效期
func NewService(repos *repository.Repositories, cache redis.CacheService, events mq.EventWriter, invitationExpiryDays int) *Service {
	if invitationExpiryDays <= 0 {
		invitationExpiryDays = constants.INVITATION_EXPIRY_DAYS
	}
	return &Service{
		repos:            repos,
		cache:            cache,
		events:           events,
		invitationExpiry: time.Duration(invitationExpiryDays) * 24 * time.Hour,
	}
}

// RequestFriendship 发起好友申请
// 自环、重复申请（无论方向）、对方关闭申请、双方存在拉黑均被拒绝。
// 两个用户之间只允许存在一条边，已拒绝的边是终态，不能重新申请。
func (s *Service) RequestFriendship(actorId string, req *request.RequestFriendshipRequest) error {
	if actorId == req.TargetId {
		return errorx.New(errorx.CodeSelfReference, "不能添加自己为好友")
	}

	target, err := s.repos.User.FindByUuid(req.TargetId)
	if err != nil {
		return err
	}
	if !target.AllowFriendRequests {
		return errorx.New(errorx.CodeNotAllowed, "对方不接受好友申请")
	}

	blocked, err := s.repos.Blocked.ExistsBetween(actorId, req.TargetId)
	if err != nil {
		return err
	}
	if blocked {
		// 不区分拉黑方向，避免向被拉黑者泄露拉黑事实
		return errorx.New(errorx.CodeNotAllowed, "无法向该用户发起申请")
	}

	_, err = s.repos.Friendship.FindByPair(actorId, req.TargetId)
	switch {
	case err == nil:
		return errorx.New(errorx.CodeFriendshipExist, "好友关系或申请已存在")
	case errorx.GetCode(err) == errorx.CodeNotFound:
		edge := &model.Friendship{
			User1Id:     actorId,
			User2Id:     req.TargetId,
			InitiatorId: actorId,
			Status:      friendship_status_enum.PENDING,
			Message:     req.Message,
		}
		if err := s.repos.Friendship.Create(edge); err != nil {
			// 并发下两个方向同时申请时唯一索引兜底
			if errorx.GetCode(err) == errorx.CodeDBError {
				if _, dupErr := s.repos.Friendship.FindByPair(actorId, req.TargetId); dupErr == nil {
					return errorx.New(errorx.CodeFriendshipExist, "好友关系或申请已存在")
				}
			}
			return err
		}
	default:
		return err
	}

	mq.Publish(s.events, mq.EventFriendshipRequested, actorId, req.TargetId, nil)
	return nil
}

// RespondToRequest 响应好友申请
// 只有被申请方能响应。接受时写入 accepted_at，且仅在首次接受时写入一次。
func (s *Service) RespondToRequest(actorId string, req *request.RespondFriendshipRequest) error {
	edge, err := s.repos.Friendship.FindByPair(actorId, req.RequesterId)
	if err != nil {
		return err
	}
	if edge.Status != friendship_status_enum.PENDING {
		return errorx.New(errorx.CodeInvalidTransition, "该申请已被处理")
	}
	// 发起方不能替对方接受自己的申请
	if edge.InitiatorId != req.RequesterId || edge.OtherUser(req.RequesterId) != actorId {
		return errorx.New(errorx.CodeNotAllowed, "只有被申请方可以处理该申请")
	}

	if req.Accept != nil && *req.Accept {
		edge.Status = friendship_status_enum.ACCEPTED
		if !edge.AcceptedAt.Valid {
			edge.AcceptedAt = sql.NullTime{Time: time.Now(), Valid: true}
		}
		if err := s.repos.Friendship.Update(edge); err != nil {
			return err
		}
		redis.InvalidateFriendSet(s.cache, edge.User1Id)
		redis.InvalidateFriendSet(s.cache, edge.User2Id)
		mq.Publish(s.events, mq.EventFriendshipAccepted, actorId, req.RequesterId, nil)
		return nil
	}

	edge.Status = friendship_status_enum.DECLINED
	if err := s.repos.Friendship.Update(edge); err != nil {
		return err
	}
	mq.Publish(s.events, mq.EventFriendshipDeclined, actorId, req.RequesterId, nil)
	return nil
}

// RemoveFriend 解除好友关系，申请中或不存在的边返回 CodeNotFound
func (s *Service) RemoveFriend(actorId string, req *request.RemoveFriendRequest) error {
	edge, err := s.repos.Friendship.FindByPair(actorId, req.TargetId)
	if err != nil {
		return err
	}
	if edge.Status != friendship_status_enum.ACCEPTED {
		return errorx.New(errorx.CodeNotFound, "好友关系不存在")
	}
	if err := s.repos.Friendship.Delete(edge); err != nil {
		return err
	}
	redis.InvalidateFriendSet(s.cache, edge.User1Id)
	redis.InvalidateFriendSet(s.cache, edge.User2Id)
	return nil
}

// ListFriends 好友列表
// 无论当初是谁发起的申请，双方的列表里都能看到对方
func (s *Service) ListFriends(actorId string) ([]respond.FriendRespond, error) {
	edges, err := s.repos.Friendship.FindAcceptedByUser(actorId)
	if err != nil {
		return nil, err
	}

	friendIds := make([]string, 0, len(edges))
	friendsAt := make(map[string]string, len(edges))
	for _, edge := range edges {
		other := edge.OtherUser(actorId)
		friendIds = append(friendIds, other)
		if edge.AcceptedAt.Valid {
			friendsAt[other] = edge.AcceptedAt.Time.Format(time.RFC3339)
		}
	}
	redis.StoreFriendSet(s.cache, actorId, friendIds)

	users, err := s.repos.User.FindByUuids(friendIds)
	if err != nil {
		return nil, err
	}

	list := make([]respond.FriendRespond, 0, len(users))
	for i := range users {
		u := &users[i]
		item := respond.FriendRespond{
			Uuid:        u.Uuid,
			Username:    u.Username,
			DisplayName: u.DisplayName(),
			FriendsAt:   friendsAt[u.Uuid],
		}
		if u.ShowLocation {
			item.Location = u.Location
		}
		list = append(list, item)
	}
	return list, nil
}

// ListPendingRequests 待处理的好友申请（以自己为被申请方）
func (s *Service) ListPendingRequests(actorId string) ([]respond.PendingRequestRespond, error) {
	edges, err := s.repos.Friendship.FindPendingByTarget(actorId)
	if err != nil {
		return nil, err
	}

	requesterIds := make([]string, 0, len(edges))
	for _, edge := range edges {
		requesterIds = append(requesterIds, edge.InitiatorId)
	}
	users, err := s.repos.User.FindByUuids(requesterIds)
	if err != nil {
		return nil, err
	}
	byUuid := make(map[string]*model.User, len(users))
	for i := range users {
		byUuid[users[i].Uuid] = &users[i]
	}

	list := make([]respond.PendingRequestRespond, 0, len(edges))
	for _, edge := range edges {
		u := byUuid[edge.InitiatorId]
		if u == nil {
			continue
		}
		list = append(list, respond.PendingRequestRespond{
			RequesterId: u.Uuid,
			Username:    u.Username,
			DisplayName: u.DisplayName(),
			Message:     edge.Message,
			RequestedAt: edge.CreatedAt.Format(time.RFC3339),
		})
	}
	return list, nil
}

// FriendsOfFriends 二度好友推荐
// 取所有好友的好友做并集，去掉自己和已是一度好友的用户。
// 多条路径可达的同一用户只出现一次，结果按 uuid 排序保证稳定
func (s *Service) FriendsOfFriends(actorId string) ([]respond.FriendOfFriendRespond, error) {
	directIds, err := s.friendIds(actorId)
	if err != nil {
		return nil, err
	}
	direct := make(map[string]struct{}, len(directIds))
	for _, id := range directIds {
		direct[id] = struct{}{}
	}

	secondDegree := make(map[string]struct{})
	for _, friendId := range directIds {
		fofIds, err := s.friendIds(friendId)
		if err != nil {
			return nil, err
		}
		for _, id := range fofIds {
			if id == actorId {
				continue
			}
			if _, isDirect := direct[id]; isDirect {
				continue
			}
			secondDegree[id] = struct{}{}
		}
	}

	ids := make([]string, 0, len(secondDegree))
	for id := range secondDegree {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	users, err := s.repos.User.FindByUuids(ids)
	if err != nil {
		return nil, err
	}
	byUuid := make(map[string]*model.User, len(users))
	for i := range users {
		byUuid[users[i].Uuid] = &users[i]
	}

	list := make([]respond.FriendOfFriendRespond, 0, len(ids))
	for _, id := range ids {
		u := byUuid[id]
		if u == nil {
			continue
		}
		list = append(list, respond.FriendOfFriendRespond{
			Uuid:        u.Uuid,
			Username:    u.Username,
			DisplayName: u.DisplayName(),
		})
	}
	return list, nil
}

// friendIds 某用户的已接受好友 uuid 集合，优先走缓存
func (s *Service) friendIds(uuid string) ([]string, error) {
	if cached := redis.LoadFriendSet(s.cache, uuid); cached != nil {
		return cached, nil
	}
	edges, err := s.repos.Friendship.FindAcceptedByUser(uuid)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.OtherUser(uuid))
	}
	redis.StoreFriendSet(s.cache, uuid, ids)
	return ids, nil
}

// BlockUser 拉黑用户
// 拉黑是独立于好友边的有序记录，不会修改已有的好友关系；
// 好友边的解除由 RemoveFriend 单独完成
func (s *Service) BlockUser(actorId string, req *request.BlockUserRequest) error {
	if actorId == req.TargetId {
		return errorx.New(errorx.CodeSelfReference, "不能拉黑自己")
	}
	if _, err := s.repos.User.FindByUuid(req.TargetId); err != nil {
		return err
	}
	if _, err := s.repos.Blocked.FindByPairOrdered(actorId, req.TargetId); err == nil {
		return errorx.New(errorx.CodeBlockExist, "已拉黑该用户")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		return err
	}

	block := &model.BlockedUser{
		BlockerId: actorId,
		BlockedId: req.TargetId,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}
	if err := s.repos.Blocked.Create(block); err != nil {
		return err
	}
	zap.L().Info("用户拉黑", zap.String("blocker", actorId), zap.String("blocked", req.TargetId))
	return nil
}

// UnblockUser 解除拉黑（仅解除自己方向的拉黑）
func (s *Service) UnblockUser(actorId string, req *request.UnblockUserRequest) error {
	if _, err := s.repos.Blocked.FindByPairOrdered(actorId, req.TargetId); err != nil {
		return err
	}
	return s.repos.Blocked.Delete(actorId, req.TargetId)
}

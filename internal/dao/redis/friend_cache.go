package redis

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// 好友 uuid 集合的缓存键前缀
// 缓存只存已接受好友的 uuid 集合，完整资料始终回源数据库
const friendSetKeyPrefix = "bookswap:friends:"

// 好友集合缓存的兜底过期时间
// 关系变更的正常路径靠主动失效，过期只兜住漏失效的场景
const friendSetTTL = time.Hour

// FriendSetKey 某用户好友集合的缓存键
func FriendSetKey(uuid string) string {
	return friendSetKeyPrefix + uuid
}

// LoadFriendSet 读取好友集合缓存，未命中或出错返回 nil
// 出错只记日志，调用方回源数据库
func LoadFriendSet(cache CacheService, uuid string) []string {
	if cache == nil {
		return nil
	}
	members, err := cache.GetSetMembers(context.Background(), FriendSetKey(uuid))
	if err != nil {
		zap.L().Warn("读取好友集合缓存失败", zap.String("uuid", uuid), zap.Error(err))
		return nil
	}
	if len(members) == 0 {
		return nil
	}
	return members
}

// StoreFriendSet 回填好友集合缓存
func StoreFriendSet(cache CacheService, uuid string, friendIds []string) {
	if cache == nil || len(friendIds) == 0 {
		return
	}
	members := make([]interface{}, len(friendIds))
	for i, id := range friendIds {
		members[i] = id
	}
	ctx := context.Background()
	key := FriendSetKey(uuid)
	if err := cache.AddToSet(ctx, key, members...); err != nil {
		zap.L().Warn("回填好友集合缓存失败", zap.String("uuid", uuid), zap.Error(err))
		return
	}
	if err := cache.Expire(ctx, key, friendSetTTL); err != nil {
		zap.L().Warn("设置好友集合缓存过期失败", zap.String("uuid", uuid), zap.Error(err))
	}
}

// InvalidateFriendSet 失效好友集合缓存
// 好友关系变更（接受、解除、注销）后调用，下一次读取回源数据库重建
func InvalidateFriendSet(cache CacheService, uuid string) {
	if cache == nil || uuid == "" {
		return
	}
	if err := cache.Delete(context.Background(), FriendSetKey(uuid)); err != nil {
		zap.L().Warn("失效好友集合缓存失败", zap.String("uuid", uuid), zap.Error(err))
	}
}

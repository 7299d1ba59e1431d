// 本文件提供 CacheService 的进程内实现
// 用于测试环境和无 Redis 的本地开发，无需外部服务
package redis

import (
	"context"
	"sync"
	"time"
)

type localEntry struct {
	value     string
	expiresAt time.Time // 零值表示不过期
}

// LocalCache CacheService 的内存实现
// 并发安全；过期键在读取时惰性清理
type LocalCache struct {
	mu         sync.RWMutex
	entries    map[string]localEntry
	sets       map[string]map[string]struct{}
	setExpires map[string]time.Time // 集合键的过期时间，零值表示不过期
}

// NewLocalCache 创建内存缓存实例
func NewLocalCache() *LocalCache {
	return &LocalCache{
		entries:    make(map[string]localEntry),
		sets:       make(map[string]map[string]struct{}),
		setExpires: make(map[string]time.Time),
	}
}

// Set 设置键值对并指定过期时间
func (l *LocalCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := localEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	l.entries[key] = entry
	return nil
}

// Get 获取键对应的值（键不存在返回空字符串和 nil）
func (l *LocalCache) Get(ctx context.Context, key string) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry, ok := l.entries[key]
	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(l.entries, key)
		return "", nil
	}
	return entry.value, nil
}

// Delete 删除键（如果存在）
func (l *LocalCache) Delete(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	delete(l.sets, key)
	delete(l.setExpires, key)
	return nil
}

// Expire 设置键的过期时间（键不存在不报错）
func (l *LocalCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if ttl <= 0 {
		return nil
	}
	deadline := time.Now().Add(ttl)
	if entry, ok := l.entries[key]; ok {
		entry.expiresAt = deadline
		l.entries[key] = entry
	}
	if _, ok := l.sets[key]; ok {
		l.setExpires[key] = deadline
	}
	return nil
}

// AddToSet 向集合添加成员
func (l *LocalCache) AddToSet(ctx context.Context, key string, members ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.sets[key]
	if !ok {
		set = make(map[string]struct{})
		l.sets[key] = set
	}
	for _, m := range members {
		if s, ok := m.(string); ok {
			set[s] = struct{}{}
		}
	}
	return nil
}

// GetSetMembers 获取集合中的所有成员
func (l *LocalCache) GetSetMembers(ctx context.Context, key string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if deadline, ok := l.setExpires[key]; ok && time.Now().After(deadline) {
		delete(l.sets, key)
		delete(l.setExpires, key)
		return nil, nil
	}
	set, ok := l.sets[key]
	if !ok {
		return nil, nil
	}
	members := make([]string, 0, len(set))
	for m := range set {
		members = append(members, m)
	}
	return members, nil
}

// RemoveFromSet 从集合中移除成员
func (l *LocalCache) RemoveFromSet(ctx context.Context, key string, members ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.sets[key]
	if !ok {
		return nil
	}
	for _, m := range members {
		if s, ok := m.(string); ok {
			delete(set, s)
		}
	}
	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fuatnargis/telyna-ai/config"
	"github.com/fuatnargis/telyna-ai/types"
)

const (
	valuePrefix = "telyna:kv:"
	chatsPrefix = "telyna:" + config.KeyPastChatsPrefix
)

// Redis persists the transcript store in Redis. Conversations are stored as
// one JSON array per user, newest first. No TTL is set: a conversation is
// only removed by an explicit delete.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

// NewRedisFromURL connects and pings before returning, so a misconfigured
// REDIS_URL surfaces at startup rather than on the first chat.
func NewRedisFromURL(ctx context.Context, redisURL string) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	config.Logger.Info("Connected to Redis")
	return NewRedis(rdb), nil
}

func (s *Redis) Get(ctx context.Context, key, defaultValue string) (string, error) {
	val, err := s.rdb.Get(ctx, valuePrefix+key).Result()
	if err == redis.Nil {
		return defaultValue, nil
	}
	if err != nil {
		return defaultValue, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return val, nil
}

func (s *Redis) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, valuePrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *Redis) SaveConversation(ctx context.Context, userID string, conv types.Conversation) error {
	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	return s.save(ctx, userID, upsert(list, conv))
}

func (s *Redis) GetConversation(ctx context.Context, userID, conversationID string) (*types.Conversation, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.ID == conversationID {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (s *Redis) ListConversations(ctx context.Context, userID string) ([]types.Conversation, error) {
	return s.load(ctx, userID)
}

func (s *Redis) DeleteConversation(ctx context.Context, userID, conversationID string) error {
	list, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	return s.save(ctx, userID, remove(list, conversationID))
}

func (s *Redis) load(ctx context.Context, userID string) ([]types.Conversation, error) {
	data, err := s.rdb.Get(ctx, chatsPrefix+userID).Bytes()
	if err == redis.Nil {
		return []types.Conversation{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	var list []types.Conversation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conversations: %w", err)
	}
	return list, nil
}

func (s *Redis) save(ctx context.Context, userID string, list []types.Conversation) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal conversations: %w", err)
	}
	if err := s.rdb.Set(ctx, chatsPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save conversations: %w", err)
	}
	return nil
}

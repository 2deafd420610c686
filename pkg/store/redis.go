package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/Aayushjha0128/GraphSense/pkg/snapshot"
)

// redisKeyPrefix namespaces snapshot keys so the store can share a
// database with other applications.
const redisKeyPrefix = "graphsense:snapshot:"

// RedisStore keeps snapshots as JSON values in Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the Redis instance named by url, e.g.
// redis://localhost:6379/0, and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(name string) string { return redisKeyPrefix + name }

func (s *RedisStore) Save(ctx context.Context, name string, doc snapshot.Document) error {
	if err := checkName(name); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(name), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, name string) (snapshot.Document, error) {
	if err := checkName(name); err != nil {
		return snapshot.Document{}, err
	}
	data, err := s.client.Get(ctx, redisKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return snapshot.Document{}, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		return snapshot.Document{}, fmt.Errorf("redis get: %w", err)
	}

	var doc snapshot.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return snapshot.Document{}, fmt.Errorf("parse snapshot %q: %w", name, err)
	}
	return doc, nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	it := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for it.Next(ctx) {
		names = append(names, strings.TrimPrefix(it.Val(), redisKeyPrefix))
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, redisKey(name)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)

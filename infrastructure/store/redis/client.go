// ABOUTME: RedisJSON-backed article archive using the go-rejson handler
// ABOUTME: Stores each article as a JSON document keyed by its identifier

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"newswire-collector/core/domain"
	"newswire-collector/pkg/config"

	"github.com/nitishm/go-rejson/v4"
	goredis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces article documents in the shared database
const keyPrefix = "article"

// RedisStore implements the ArticleStore interface using RedisJSON
type RedisStore struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new RedisJSON article store. A non-zero ttl
// expires each document that long after its last save.
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) (*RedisStore, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, ttl: ttl}, nil
}

// handler binds a ReJSON handler to the request context
func (s *RedisStore) handler(ctx context.Context) *rejson.Handler {
	h := rejson.NewReJSONHandler()
	h.SetGoRedisClientWithContext(ctx, s.client)
	return h
}

func articleKey(id string) string {
	return keyPrefix + ":" + id
}

// Save persists a batch of articles as JSON documents, replacing
// earlier documents with the same identifier
func (s *RedisStore) Save(ctx context.Context, articles []domain.ArticleRecord) error {
	if len(articles) == 0 {
		return nil
	}

	h := s.handler(ctx)
	for i := range articles {
		record := &articles[i]
		key := articleKey(record.ID())

		if _, err := h.JSONSet(key, ".", record); err != nil {
			return fmt.Errorf("failed to store article %s: %w", record.ID(), err)
		}

		if s.ttl > 0 {
			if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
				return fmt.Errorf("failed to set expiry on article %s: %w", record.ID(), err)
			}
		}
	}

	return nil
}

// loadAll fetches every archived article, ordered by publish date,
// newest first. RedisJSON offers no secondary indexes, so reads scan
// the key space and filter client-side.
func (s *RedisStore) loadAll(ctx context.Context) ([]domain.ArticleRecord, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list article keys: %w", err)
	}

	h := s.handler(ctx)
	records := make([]domain.ArticleRecord, 0, len(keys))
	for _, key := range keys {
		val, err := h.JSONGet(key, ".")
		if err != nil {
			// Document may have been removed between KEYS and GET
			continue
		}

		raw, ok := val.([]byte)
		if !ok {
			continue
		}

		var record domain.ArticleRecord
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal article %s: %w", key, err)
		}
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishDate.After(records[j].PublishDate)
	})

	return records, nil
}

// Recent retrieves up to limit articles ordered by publish date,
// newest first
func (s *RedisStore) Recent(ctx context.Context, limit int) ([]domain.ArticleRecord, error) {
	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// SearchByTitle retrieves up to limit articles whose titles contain
// the query, ordered by publish date, newest first. Matching ignores
// ASCII case.
func (s *RedisStore) SearchByTitle(ctx context.Context, query string, limit int) ([]domain.ArticleRecord, error) {
	records, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matches := make([]domain.ArticleRecord, 0)
	for i := range records {
		if !strings.Contains(strings.ToLower(records[i].Title), needle) {
			continue
		}

		matches = append(matches, records[i])
		if limit > 0 && len(matches) == limit {
			break
		}
	}

	return matches, nil
}

// Count returns the number of archived articles
func (s *RedisStore) Count(ctx context.Context) (int, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+":*").Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list article keys: %w", err)
	}

	return len(keys), nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

package businessflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Browse workflow states. A session walks awaiting_period →
// awaiting_selection → done; cancel and expiry drop it at any point.
type BrowseState string

const (
	StateAwaitingPeriod    BrowseState = "awaiting_period"
	StateAwaitingSelection BrowseState = "awaiting_selection"
	StateDone              BrowseState = "done"
)

// BrowseSession is the short-lived per-user workflow state for the
// multi-step report browsing conversation.
type BrowseSession struct {
	UserID    int64       `json:"user_id"`
	State     BrowseState `json:"state"`
	StartDate string      `json:"start_date,omitempty"`
	EndDate   string      `json:"end_date,omitempty"`
	ReportIDs []uint      `json:"report_ids,omitempty"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SessionStore keeps browse sessions keyed by user id. Entries expire
// after the store's TTL; Get returns nil for absent or expired entries.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*BrowseSession, error)
	Put(ctx context.Context, session *BrowseSession) error
	Delete(ctx context.Context, userID int64) error
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("browse_session:%d", userID)
}

// RedisSessionStore keeps sessions in Redis so a restarted process
// resumes in-flight conversations.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a Redis-backed session store
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, userID int64) (*BrowseSession, error) {
	data, err := s.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read browse session: %w", err)
	}

	var session BrowseSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode browse session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, session *BrowseSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode browse session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store browse session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete browse session: %w", err)
	}
	return nil
}

// MemorySessionStore keeps sessions in process memory, for single-node
// deployments and tests.
type MemorySessionStore struct {
	cache *cache.Cache
}

// NewMemorySessionStore constructs an in-memory session store
func NewMemorySessionStore(ttl time.Duration) SessionStore {
	return &MemorySessionStore{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (s *MemorySessionStore) Get(ctx context.Context, userID int64) (*BrowseSession, error) {
	v, ok := s.cache.Get(sessionKey(userID))
	if !ok {
		return nil, nil
	}
	session, ok := v.(*BrowseSession)
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (s *MemorySessionStore) Put(ctx context.Context, session *BrowseSession) error {
	s.cache.SetDefault(sessionKey(session.UserID), session)
	return nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, userID int64) error {
	s.cache.Delete(sessionKey(userID))
	return nil
}

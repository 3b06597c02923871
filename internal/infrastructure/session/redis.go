package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Elvis-12/sky-wanderer-control-center/internal/core/domain"
)

// RedisStore persists the session in Redis under PersistKey, so the signed-in
// identity survives process restarts when the portal runs without local disk.
type RedisStore struct {
	client *redis.Client
	log    zerolog.Logger

	mu      sync.RWMutex
	current domain.Session
	present bool
}

func NewRedisStore(client *redis.Client, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

// Load adopts the persisted session if Redis has one and it parses. Transport
// or parse failures leave the store empty; Load never fails the caller.
func (r *RedisStore) Load(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.client.Get(ctx, PersistKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.log.Warn().Err(err).Msg("session fetch failed, starting signed out")
		}
		r.current, r.present = domain.Session{}, false
		return
	}

	s, ok := decode(raw)
	if !ok {
		r.log.Warn().Msg("malformed persisted session, starting signed out")
		r.current, r.present = domain.Session{}, false
		return
	}

	r.current, r.present = s, true
	r.log.Debug().Str("email", s.Email).Msg("session rehydrated")
}

func (r *RedisStore) Set(ctx context.Context, s domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.client.Set(ctx, PersistKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	r.current, r.present = s, true
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current, r.present = domain.Session{}, false
	if err := r.client.Del(ctx, PersistKey).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *RedisStore) Current() (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.present
}

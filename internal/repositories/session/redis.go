package session

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokedex-api/internal/redis"
)

const (
	// Key patterns: pokedex_session:{id} and pokedex_session:{id}:seq
	sessionKeyPrefix = "pokedex_session:"
	sequenceSuffix   = ":seq"

	// DefaultTTL is how long an idle session lives
	DefaultTTL = 30 * time.Minute

	errStateNil       = "state cannot be nil"
	errSessionIDEmpty = "session ID cannot be empty"
	errNotFound       = "session not found"
)

// nextSequenceScript increments the counter of an existing session.
// Returns -1 when the session does not exist.
var nextSequenceScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local seq = redis.call('INCR', KEYS[2])
redis.call('PEXPIRE', KEYS[1], ARGV[1])
redis.call('PEXPIRE', KEYS[2], ARGV[1])
return seq
`)

// saveIfCurrentScript replaces the state only when ARGV[1] equals the
// counter. Returns -1 when the session does not exist, 0 when superseded.
var saveIfCurrentScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -1
end
local current = tonumber(redis.call('GET', KEYS[2]) or '0')
if current ~= tonumber(ARGV[1]) then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
redis.call('PEXPIRE', KEYS[2], ARGV[3])
return 1
`)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	TTL    time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.TTL < time.Second {
		vb.Fieldf("TTL", "must be at least 1s, got %s", c.TTL)
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new session with the configured TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	state := *input.State
	state.Sequence = 0
	state.CreatedAt = now
	state.ExpiresAt = now.Add(r.ttl)

	stateJSON, err := json.Marshal(&state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	key := r.buildKey(state.SessionID)
	created, err := r.client.SetNX(ctx, key, stateJSON, r.ttl).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.FailedPrecondition("session already exists").WithMeta("session_id", state.SessionID)
	}

	if err := r.client.Set(ctx, r.buildSequenceKey(state.SessionID), 0, r.ttl).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session sequence in Redis")
	}

	return &CreateOutput{State: &state}, nil
}

// Get retrieves a session by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := r.buildKey(input.SessionID)

	stateJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errNotFound).WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get session from Redis")
	}

	var state pokedex.AppState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal session")
	}

	if r.clock.Now().After(state.ExpiresAt) {
		_ = r.client.Del(ctx, key, r.buildSequenceKey(input.SessionID))
		return nil, errors.NotFound("session has expired").WithMeta("session_id", input.SessionID)
	}

	return &GetOutput{State: &state}, nil
}

// NextSequence increments the session counter and slides the TTL
func (r *redisRepository) NextSequence(ctx context.Context, input NextSequenceInput) (*NextSequenceOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	seq, err := nextSequenceScript.Run(ctx, r.client,
		[]string{r.buildKey(input.SessionID), r.buildSequenceKey(input.SessionID)},
		r.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to issue session sequence")
	}
	if seq < 0 {
		return nil, errors.NotFound(errNotFound).WithMeta("session_id", input.SessionID)
	}

	return &NextSequenceOutput{Sequence: uint64(seq)}, nil
}

// SaveIfCurrent stores the state when no newer sequence has been issued
func (r *redisRepository) SaveIfCurrent(ctx context.Context, input SaveIfCurrentInput) (*SaveIfCurrentOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	state := *input.State
	state.ExpiresAt = r.clock.Now().Add(r.ttl)

	stateJSON, err := json.Marshal(&state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	result, err := saveIfCurrentScript.Run(ctx, r.client,
		[]string{r.buildKey(state.SessionID), r.buildSequenceKey(state.SessionID)},
		state.Sequence, string(stateJSON), r.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to save session in Redis")
	}

	switch result {
	case -1:
		return nil, errors.NotFound(errNotFound).WithMeta("session_id", state.SessionID)
	case 0:
		return &SaveIfCurrentOutput{Saved: false}, nil
	default:
		return &SaveIfCurrentOutput{Saved: true, State: &state}, nil
	}
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.SessionID), r.buildSequenceKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete session from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFound(errNotFound).WithMeta("session_id", input.SessionID)
	}

	return &DeleteOutput{}, nil
}

// buildKey creates the Redis key for a session
func (r *redisRepository) buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// buildSequenceKey creates the Redis key for a session's counter
func (r *redisRepository) buildSequenceKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + sequenceSuffix
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Two keys per user: "session:<id>" holds the record, and
// "user:<userID>" points at the live session ID. Both scripts run
// server-side so the pair can never be observed half-updated.

// replaceScript deletes the user's previous session record (if any),
// then writes the new record and repoints the user key. TTLs match the
// session window, so Redis drops expired records on its own.
const replaceScript = `
local prev = redis.call("GET", KEYS[1])
if prev and prev ~= ARGV[1] then
  redis.call("DEL", ARGV[4] .. prev)
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
return 1
`

// deleteScript removes a session record and clears the user pointer,
// but only when the pointer still names this session. A pointer already
// repointed by a newer sign-in is left alone.
const deleteScript = `
local existed = redis.call("DEL", KEYS[1])
if redis.call("GET", KEYS[2]) == ARGV[1] then
  redis.call("DEL", KEYS[2])
end
return existed
`

var (
	replaceLua = redis.NewScript(replaceScript)
	deleteLua  = redis.NewScript(deleteScript)
)

type RedisStore struct {
	client        *redis.Client
	sessionPrefix string
	userPrefix    string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:        client,
		sessionPrefix: "session:",
		userPrefix:    "user_session:",
	}
}

func (r *RedisStore) sessionKey(sessionID string) string {
	return r.sessionPrefix + sessionID
}

func (r *RedisStore) userKey(userID string) string {
	return r.userPrefix + userID
}

func (r *RedisStore) Replace(ctx context.Context, s Session) error {
	if s.SessionID == "" || s.UserID == "" {
		return fmt.Errorf("session: missing session_id or user_id")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	keys := []string{r.userKey(s.UserID), r.sessionKey(s.SessionID)}
	argv := []any{
		s.SessionID,
		data,
		strconv.FormatInt(ttl.Milliseconds(), 10),
		r.sessionPrefix,
	}

	return replaceLua.Run(ctx, r.client, keys, argv...).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, r.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &s, nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID, userID string) error {
	keys := []string{r.sessionKey(sessionID), r.userKey(userID)}
	return deleteLua.Run(ctx, r.client, keys, sessionID).Err()
}

package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using
// Redis. Records are keyed by the opaque refresh-token value and carry
// a native TTL, so expired records vanish without any sweep. A per-user
// set indexes live tokens for DeleteAllForUser.
type SessionRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// replaceScript atomically swaps the consumed token for its successor.
// It is conditional on the old record still existing: there is no
// window where both tokens resolve, and none where neither does.
var replaceScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return 0
end
redis.call("DEL", KEYS[1])
redis.call("SET", KEYS[2], ARGV[1], "PX", ARGV[2])
redis.call("SREM", KEYS[3], ARGV[3])
redis.call("SADD", KEYS[3], ARGV[4])
redis.call("PEXPIRE", KEYS[3], ARGV[2])
return 1
`)

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client: client,
		prefix: "refresh:",
	}
}

func (r *SessionRepositoryImpl) tokenKey(token string) string {
	return r.prefix + token
}

func (r *SessionRepositoryImpl) userKey(userID uint) string {
	return fmt.Sprintf("%suser:%d", r.prefix, userID)
}

// Create implements domain.SessionRepository
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(session.Token), data, ttl)
	pipe.SAdd(ctx, r.userKey(session.UserID), session.Token)
	pipe.PExpire(ctx, r.userKey(session.UserID), ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// FindByToken implements domain.SessionRepository
func (r *SessionRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Redis TTL already reaps expired keys; re-check so a resolvable
	// record always implies an expiry in the future.
	if session.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, r.tokenKey(token))
		r.client.SRem(ctx, r.userKey(session.UserID), token)
		return nil, domain.ErrSessionExpired
	}

	return &session, nil
}

// Replace implements domain.SessionRepository
func (r *SessionRepositoryImpl) Replace(ctx context.Context, oldToken string, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	keys := []string{r.tokenKey(oldToken), r.tokenKey(session.Token), r.userKey(session.UserID)}
	args := []interface{}{data, ttl.Milliseconds(), oldToken, session.Token}

	replaced, err := replaceScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return err
	}
	if replaced == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

// DeleteAllForUser implements domain.SessionRepository
func (r *SessionRepositoryImpl) DeleteAllForUser(ctx context.Context, userID uint) (int64, error) {
	tokens, err := r.client.SMembers(ctx, r.userKey(userID)).Result()
	if err != nil {
		return 0, err
	}

	if len(tokens) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(tokens))
	for _, token := range tokens {
		keys = append(keys, r.tokenKey(token))
	}

	// DEL reports how many record keys actually existed; set members
	// whose records were TTL-reaped do not count.
	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}
	if err := r.client.Del(ctx, r.userKey(userID)).Err(); err != nil {
		return deleted, err
	}

	return deleted, nil
}

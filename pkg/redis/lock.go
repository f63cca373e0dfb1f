package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned when another holder owns the key.
var ErrLockNotAcquired = errors.New("lock held by another instance")

// ErrLockNotHeld is returned by Unlock and Refresh when the key no longer
// carries this lock's token.
var ErrLockNotHeld = errors.New("lock was not held by this client")

const (
	unlockScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		else
			return 0
		end
	`
	refreshScript = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		else
			return 0
		end
	`
)

// LockOptions represents options for distributed locking
type LockOptions struct {
	// TTL is the lock expiration time
	TTL time.Duration
	// RefreshInterval is the interval used by AutoRefresh
	RefreshInterval time.Duration
	// Namespace prefixes the key as Namespace::key
	Namespace string
}

// DefaultLockOptions returns default lock options
func DefaultLockOptions() *LockOptions {
	return &LockOptions{
		TTL:             5 * time.Minute,
		RefreshInterval: time.Minute,
	}
}

// Lock is a single-attempt distributed lock. A scheduled job that loses the
// race simply skips its run, so acquisition never retries.
type Lock struct {
	client *Client
	key    string
	token  string
	opts   *LockOptions
}

// NewLock creates a new distributed lock
func NewLock(client *Client, key string, opts *LockOptions) *Lock {
	if opts == nil {
		opts = DefaultLockOptions()
	}
	return &Lock{
		client: client,
		key:    key,
		token:  uuid.NewString(),
		opts:   opts,
	}
}

// Key returns the full Redis key guarded by the lock.
func (l *Lock) Key() string {
	if l.opts.Namespace != "" {
		return l.opts.Namespace + "::" + l.key
	}
	return l.key
}

// TryLock acquires the lock with SET NX PX.
func (l *Lock) TryLock(ctx context.Context) error {
	acquired, err := l.client.GetClient().SetNX(ctx, l.Key(), l.token, l.opts.TTL).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.Key(), err)
	}
	if !acquired {
		return ErrLockNotAcquired
	}
	return nil
}

// Unlock releases the lock only if it still carries this token.
func (l *Lock) Unlock(ctx context.Context) error {
	return l.evalOwned(ctx, unlockScript, l.token)
}

// Refresh extends the lock's TTL
func (l *Lock) Refresh(ctx context.Context) error {
	return l.evalOwned(ctx, refreshScript, l.token, l.opts.TTL.Milliseconds())
}

func (l *Lock) evalOwned(ctx context.Context, script string, args ...any) error {
	result, err := l.client.GetClient().Eval(ctx, script, []string{l.Key()}, args...).Int64()
	if err != nil {
		return fmt.Errorf("lock %s: %w", l.Key(), err)
	}
	if result == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// IsLocked reports whether this instance currently holds the lock.
func (l *Lock) IsLocked(ctx context.Context) (bool, error) {
	value, err := l.client.GetClient().Get(ctx, l.Key()).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == l.token, nil
}

// AutoRefresh refreshes the lock every RefreshInterval until ctx is done or a
// refresh fails. The returned channel receives at most one error.
func (l *Lock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)
	if l.opts.RefreshInterval <= 0 {
		return errChan
	}

	go func() {
		ticker := time.NewTicker(l.opts.RefreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.Refresh(ctx); err != nil {
					errChan <- err
					return
				}
			}
		}
	}()

	return errChan
}

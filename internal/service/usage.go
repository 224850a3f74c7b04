package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// ErrQuotaExceeded means the user's daily allowance for a metric is spent.
var ErrQuotaExceeded = errors.New("daily quota exceeded")

// Metric names a metered action.
type Metric string

const (
	MetricDownloads Metric = "downloads"
	MetricExports   Metric = "exports"
)

// TierLimits holds the per-day allowances for one tier. A zero limit means
// the metric is unlimited for that tier.
type TierLimits struct {
	DownloadsPerDay int
	ExportsPerDay   int
}

// DefaultTierLimits is the built-in allowance table.
var DefaultTierLimits = map[model.Tier]TierLimits{
	model.TierFree:    {DownloadsPerDay: 20, ExportsPerDay: 5},
	model.TierPro:     {DownloadsPerDay: 200, ExportsPerDay: 50},
	model.TierPremium: {},
}

// usageAcquireScript atomically increments a daily counter, sets its expiry
// on first use, and rolls back when the limit is crossed.
var usageAcquireScript = redis.NewScript(`
-- KEYS[1] = counter key
-- ARGV[1] = limit (int)
-- ARGV[2] = ttl_ms (int)
--
-- Returns the count after increment, or -1 if rejected.
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
else
  if redis.call('PTTL', KEYS[1]) < 0 then
    redis.call('PEXPIRE', KEYS[1], ARGV[2])
  end
end

if current > tonumber(ARGV[1]) then
  redis.call('DECR', KEYS[1])
  return -1
end
return current
`)

// UsageService meters per-user daily actions against tier limits and exposes
// tier and login-token records.
type UsageService interface {
	// Consume spends one unit of the metric. ErrQuotaExceeded when the
	// user's daily allowance is spent; the returned count is today's usage
	// after the increment.
	Consume(ctx context.Context, userID string, metric Metric) (int64, error)

	// Tier returns the user's tier, defaulting to free for unknown users.
	Tier(ctx context.Context, userID string) (model.Tier, error)

	RotateLoginToken(ctx context.Context, userID, token string) error
	LoginToken(ctx context.Context, userID string) (*model.LoginToken, error)
}

type usageService struct {
	rdb    *redis.Client
	users  repository.UserRepository
	limits map[model.Tier]TierLimits
	now    func() time.Time
}

// NewUsageService constructs a UsageService. A nil limits map falls back to
// DefaultTierLimits.
func NewUsageService(rdb *redis.Client, users repository.UserRepository, limits map[model.Tier]TierLimits) UsageService {
	if limits == nil {
		limits = DefaultTierLimits
	}
	return &usageService{rdb: rdb, users: users, limits: limits, now: time.Now}
}

func (s *usageService) Consume(ctx context.Context, userID string, metric Metric) (int64, error) {
	if userID == "" {
		return 0, ErrIDRequired
	}
	tier, err := s.Tier(ctx, userID)
	if err != nil {
		return 0, err
	}
	limit := s.limitFor(tier, metric)
	if limit <= 0 {
		// Unlimited tiers still track usage for reporting.
		return s.rdb.Incr(ctx, s.key(userID, metric)).Result()
	}

	ttl := s.untilMidnight()
	res, err := usageAcquireScript.Run(ctx, s.rdb, []string{s.key(userID, metric)}, limit, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("usage counter: %w", err)
	}
	if res < 0 {
		return int64(limit), ErrQuotaExceeded
	}
	return res, nil
}

func (s *usageService) Tier(ctx context.Context, userID string) (model.Tier, error) {
	t, err := s.users.GetTier(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TierFree, nil
		}
		return "", err
	}
	return t.Tier, nil
}

func (s *usageService) RotateLoginToken(ctx context.Context, userID, token string) error {
	if userID == "" || token == "" {
		return ErrIDRequired
	}
	now := s.now().UTC()
	return s.users.UpsertLoginToken(ctx, &model.LoginToken{
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *usageService) LoginToken(ctx context.Context, userID string) (*model.LoginToken, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	t, err := s.users.GetLoginToken(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *usageService) limitFor(tier model.Tier, metric Metric) int {
	l, ok := s.limits[tier]
	if !ok {
		l = s.limits[model.TierFree]
	}
	switch metric {
	case MetricDownloads:
		return l.DownloadsPerDay
	case MetricExports:
		return l.ExportsPerDay
	default:
		return 0
	}
}

func (s *usageService) key(userID string, metric Metric) string {
	return fmt.Sprintf("usage:%s:%s:%s", userID, metric, s.now().UTC().Format("2006-01-02"))
}

// untilMidnight returns the remaining lifetime of today's counters.
func (s *usageService) untilMidnight() time.Duration {
	now := s.now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
	d := midnight.Sub(now)
	if d < time.Minute {
		d = time.Minute
	}
	return d
}

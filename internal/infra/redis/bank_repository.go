package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"trivia-session-service/internal/domain"
)

const bankCacheKey = "trivia:bank"

// BankLoader fetches question bank content from a backing store (e.g.
// Postgres).
type BankLoader interface {
	LoadBank(ctx context.Context) (domain.Bank, error)
}

// BankRepository caches the serialized question bank in Redis with a TTL and
// falls back to the loader on cache miss, so restarts don't re-hit the
// backing store while the cache is warm.
type BankRepository struct {
	client *redis.Client
	loader BankLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewBankRepository(client *redis.Client, loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *BankRepository) GetBank(ctx context.Context) (domain.Bank, error) {
	if bank, ok := r.cached(ctx); ok {
		return bank, nil
	}

	result, err, _ := r.sf.Do(bankCacheKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if bank, ok := r.cached(ctx); ok {
			return bank, nil
		}

		bank, err := r.loader.LoadBank(ctx)
		if err != nil {
			return domain.Bank{}, err
		}

		if data, err := json.Marshal(bank); err == nil {
			_ = r.client.Set(ctx, bankCacheKey, data, r.ttlWithJitter()).Err()
		}
		return bank, nil
	})
	if err != nil {
		return domain.Bank{}, err
	}
	return result.(domain.Bank), nil
}

func (r *BankRepository) cached(ctx context.Context) (domain.Bank, bool) {
	data, err := r.client.Get(ctx, bankCacheKey).Bytes()
	if err != nil {
		return domain.Bank{}, false
	}
	var bank domain.Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return domain.Bank{}, false
	}
	return bank, len(bank.Questions) > 0
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

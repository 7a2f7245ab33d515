package redis

import (
	"context"
	"testing"
	"time"

	"trivia-session-service/internal/domain"
)

func TestBankRepositoryFillsCacheOnce(t *testing.T) {
	mr, client := newTestRedis(t)
	loader := &countingLoader{bank: sampleBank()}
	repo := NewBankRepository(client, loader, 5*time.Minute)
	ctx := context.Background()

	bank, err := repo.GetBank(ctx)
	if err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if len(bank.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(bank.Questions))
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}
	if !mr.Exists(bankCacheKey) {
		t.Fatalf("expected cached bank under %s", bankCacheKey)
	}

	// Second read is served from the Redis cache.
	if _, err := repo.GetBank(ctx); err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestBankRepositoryPropagatesLoaderError(t *testing.T) {
	_, client := newTestRedis(t)
	repo := NewBankRepository(client, &countingLoader{}, time.Minute)

	if _, err := repo.GetBank(context.Background()); err != domain.ErrBankNotFound {
		t.Fatalf("expected bank not found, got %v", err)
	}
}

type countingLoader struct {
	bank  domain.Bank
	calls int
}

func (l *countingLoader) LoadBank(_ context.Context) (domain.Bank, error) {
	l.calls++
	if len(l.bank.Questions) == 0 {
		return domain.Bank{}, domain.ErrBankNotFound
	}
	return l.bank, nil
}

func sampleBank() domain.Bank {
	return domain.Bank{
		Questions: []domain.Question{
			{ID: "e1", Category: "science", Difficulty: domain.DifficultyEasy, Text: "q", Options: []string{"a", "b"}, AnswerIndex: 0},
			{ID: "m1", Category: "science", Difficulty: domain.DifficultyMedium, Text: "q", Options: []string{"a", "b"}, AnswerIndex: 1},
		},
	}
}

package memory

import (
	"context"
	"testing"
	"time"

	"trivia-session-service/internal/domain"
)

func TestBankRepositoryCaches(t *testing.T) {
	loader := &countingLoader{
		BankLoader: NewStaticBankLoader(sampleBank()),
	}
	repo := NewBankRepository(loader, time.Minute)

	if _, err := repo.GetBank(context.Background()); err != nil {
		t.Fatalf("get bank: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected loader once, got %d", loader.calls)
	}

	if _, err := repo.GetBank(context.Background()); err != nil {
		t.Fatalf("get bank 2: %v", err)
	}
	if loader.calls != 1 {
		t.Fatalf("expected cache hit, loader calls %d", loader.calls)
	}
}

func TestStaticBankLoaderRejectsEmptyBank(t *testing.T) {
	loader := NewStaticBankLoader(domain.Bank{})
	if _, err := loader.LoadBank(context.Background()); err != domain.ErrBankNotFound {
		t.Fatalf("expected bank not found, got %v", err)
	}
}

type countingLoader struct {
	BankLoader
	calls int
}

func (l *countingLoader) LoadBank(ctx context.Context) (domain.Bank, error) {
	l.calls++
	return l.BankLoader.LoadBank(ctx)
}

func sampleBank() domain.Bank {
	return domain.Bank{
		Questions: []domain.Question{
			{
				ID:          "q1",
				Category:    "science",
				Difficulty:  domain.DifficultyEasy,
				Text:        "What is 2 + 2?",
				Options:     []string{"3", "4", "5"},
				AnswerIndex: 1,
			},
		},
	}
}

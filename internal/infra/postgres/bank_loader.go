package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"trivia-session-service/internal/domain"
)

// BankLoader loads question JSONB rows from Postgres.
type BankLoader struct {
	pool *pgxpool.Pool
}

func NewBankLoader(pool *pgxpool.Pool) *BankLoader {
	return &BankLoader{pool: pool}
}

func (l *BankLoader) LoadBank(ctx context.Context) (domain.Bank, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM questions ORDER BY id`)
	if err != nil {
		return domain.Bank{}, fmt.Errorf("load bank: %w", err)
	}
	defer rows.Close()

	var bank domain.Bank
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return domain.Bank{}, fmt.Errorf("scan question: %w", err)
		}
		var q domain.Question
		if err := json.Unmarshal(raw, &q); err != nil {
			return domain.Bank{}, fmt.Errorf("unmarshal question: %w", err)
		}
		bank.Questions = append(bank.Questions, q)
	}
	if err := rows.Err(); err != nil {
		return domain.Bank{}, fmt.Errorf("load bank: %w", err)
	}
	if len(bank.Questions) == 0 {
		return domain.Bank{}, domain.ErrBankNotFound
	}
	return bank, nil
}

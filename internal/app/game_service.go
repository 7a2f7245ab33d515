package app

import (
	"context"
	"math/rand"
	"time"

	"trivia-session-service/internal/domain"
)

// DefaultBatchSize is the number of questions drawn per play-through when the
// config does not say otherwise.
const DefaultBatchSize = 10

// BankRepository loads question bank content (from cache/backing store).
type BankRepository interface {
	GetBank(ctx context.Context) (domain.Bank, error)
}

// LeaderboardStore owns the persisted score list. Record returns the 1-based
// post-truncation rank of the inserted entry, or domain.UnrankedPosition when
// the entry did not make the board.
type LeaderboardStore interface {
	Record(ctx context.Context, entry domain.ScoreEntry) (int, error)
	List(ctx context.Context, limit int) ([]domain.ScoreEntry, error)
}

// SessionRegistry abstracts how live sessions are tracked (in-memory,
// Redis-marked, etc). Each session is exclusively owned by the interactive
// context that opened it; the registry only routes by ID.
type SessionRegistry interface {
	GetOrCreate(id string, create func() *Session) *Session
	Get(id string) (*Session, bool)
	Delete(id string)
}

// Config wires the game service's collaborators. Zero fields fall back to
// production defaults; tests override NewRand and Now for determinism.
type Config struct {
	Sessions  SessionRegistry
	Bank      BankRepository
	Board     LeaderboardStore
	BatchSize int
	NewRand   func() *rand.Rand
	Now       func() time.Time
}

// GameService exposes the engine's use cases to transports: open a session,
// drive it through its phases, and read the leaderboard.
type GameService struct {
	sessions  SessionRegistry
	bank      BankRepository
	board     LeaderboardStore
	batchSize int
	newRand   func() *rand.Rand
	now       func() time.Time
}

func NewGameService(c Config) *GameService {
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.NewRand == nil {
		c.NewRand = func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return &GameService{
		sessions:  c.Sessions,
		bank:      c.Bank,
		board:     c.Board,
		batchSize: c.BatchSize,
		newRand:   c.NewRand,
		now:       c.Now,
	}
}

// Open returns the session with the given ID, creating it in setup phase on
// first use.
func (g *GameService) Open(id string) *Session {
	return g.sessions.GetOrCreate(id, func() *Session {
		return newSession(id, g.bank, g.board, g.batchSize, g.newRand(), g.now)
	})
}

// Get looks up a live session without creating one.
func (g *GameService) Get(id string) (*Session, bool) {
	return g.sessions.Get(id)
}

// Close drops a session from the registry once its owner is done with it.
func (g *GameService) Close(id string) {
	g.sessions.Delete(id)
}

// Leaderboard returns the top entries in persisted order.
func (g *GameService) Leaderboard(ctx context.Context, limit int) ([]domain.ScoreEntry, error) {
	return g.board.List(ctx, limit)
}

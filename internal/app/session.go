package app

import (
	"context"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"trivia-session-service/internal/domain"
)

const noSelection = -1

// Session owns one player's progress through a batch of questions. It cycles
// through setup -> playing -> result -> setup; every transition is an explicit
// player action and completes synchronously.
type Session struct {
	id        string
	bank      BankRepository
	board     LeaderboardStore
	batchSize int
	rng       *rand.Rand
	now       func() time.Time

	mu          sync.Mutex
	phase       domain.Phase
	playerName  string
	difficulty  domain.Difficulty
	category    string
	batch       []domain.Question
	current     int
	score       int
	selected    int
	rank        int
	subscribers map[chan domain.GameEvent]struct{}
}

func newSession(id string, bank BankRepository, board LeaderboardStore, batchSize int, rng *rand.Rand, now func() time.Time) *Session {
	return &Session{
		id:          id,
		bank:        bank,
		board:       board,
		batchSize:   batchSize,
		rng:         rng,
		now:         now,
		phase:       domain.PhaseSetup,
		difficulty:  domain.DifficultyEasy,
		selected:    noSelection,
		rank:        domain.UnrankedPosition,
		subscribers: make(map[chan domain.GameEvent]struct{}),
	}
}

// ID identifies the session within its registry.
func (s *Session) ID() string { return s.id }

// Configure records the player name, difficulty, and optional category
// filter. Only valid during setup.
func (s *Session) Configure(name string, difficulty domain.Difficulty, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseSetup {
		return domain.ErrNotInSetup
	}
	if !difficulty.Valid() {
		return domain.ErrInvalidDifficulty
	}
	s.playerName = name
	s.difficulty = difficulty
	s.category = category
	return nil
}

// Start moves the session from setup to playing. The batch is drawn here,
// once, so the difficulty chosen during setup is the one filtered on. A blank
// player name blocks the transition and leaves the session in setup.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseSetup {
		return domain.ErrNotInSetup
	}
	if strings.TrimSpace(s.playerName) == "" {
		return domain.ErrBlankPlayerName
	}

	bank, err := s.bank.GetBank(ctx)
	if err != nil {
		return err
	}

	s.batch = SelectBatch(s.rng, bank.Questions, s.difficulty, s.category, s.batchSize)
	s.current = 0
	s.score = 0
	s.selected = noSelection
	s.rank = domain.UnrankedPosition
	s.phase = domain.PhasePlaying
	s.broadcastLocked(domain.GameEvent{Phase: domain.PhasePlaying})
	return nil
}

// SubmitAnswer scores the given option against the current question. The
// first submission per question wins; repeats are silently ignored and
// reported with accepted=false. The returned outcome is advisory only.
func (s *Session) SubmitAnswer(optionIndex int) (outcome domain.AnswerOutcome, accepted bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhasePlaying || s.current >= len(s.batch) {
		return domain.AnswerOutcome{}, false, domain.ErrNotPlaying
	}
	if s.selected != noSelection {
		return domain.AnswerOutcome{}, false, nil
	}

	q := s.batch[s.current]
	if optionIndex < 0 || optionIndex >= len(q.Options) {
		return domain.AnswerOutcome{}, false, domain.ErrOptionOutOfRange
	}

	s.selected = optionIndex
	awarded := 0
	correct := optionIndex == q.AnswerIndex
	if correct {
		awarded = s.difficulty.Points()
		s.score += awarded
	}

	outcome = domain.AnswerOutcome{
		QuestionID:  q.ID,
		Selected:    optionIndex,
		Correct:     correct,
		Awarded:     awarded,
		TotalScore:  s.score,
		Explanation: q.Explanation,
	}
	s.broadcastLocked(domain.GameEvent{Phase: domain.PhasePlaying, Outcome: &outcome})
	return outcome, true, nil
}

// Advance steps to the next question, or finishes the batch after the last
// one. Advancing an unanswered question is allowed; it simply goes unscored.
// On finishing, the final score is recorded on the leaderboard and the
// returned rank is kept for display. A failed write never aborts the session.
func (s *Session) Advance(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhasePlaying {
		return domain.ErrNotPlaying
	}

	if s.current+1 < len(s.batch) {
		s.current++
		s.selected = noSelection
		return nil
	}

	entry := domain.ScoreEntry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(s.playerName),
		Score:     s.score,
		Timestamp: s.now(),
	}
	rank, err := s.board.Record(ctx, entry)
	if err != nil {
		log.Printf("session %s: record score failed: %v", s.id, err)
		rank = domain.UnrankedPosition
	}
	s.rank = rank
	s.current = len(s.batch)
	s.phase = domain.PhaseResult
	s.broadcastLocked(domain.GameEvent{Phase: domain.PhaseResult})
	return nil
}

// Restart cycles back to setup for another play-through. Configuration is
// kept; progress is reset and the next Start draws a fresh batch.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseResult {
		return domain.ErrNotInResult
	}
	s.batch = nil
	s.current = 0
	s.score = 0
	s.selected = noSelection
	s.rank = domain.UnrankedPosition
	s.phase = domain.PhaseSetup
	s.broadcastLocked(domain.GameEvent{Phase: domain.PhaseSetup})
	return nil
}

// Phase reports the current lifecycle stage.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// CurrentQuestion returns the question at the cursor, if the session is
// mid-play.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePlaying || s.current >= len(s.batch) {
		return domain.Question{}, false
	}
	return s.batch[s.current], true
}

// Progress reports the zero-based cursor and the batch length.
func (s *Session) Progress() (current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, len(s.batch)
}

// Score reports the accumulated score so far.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Rank reports the leaderboard position earned at the end of the batch, or
// domain.UnrankedPosition before the result phase or when the score did not
// make the board.
func (s *Session) Rank() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rank
}

// Player reports the configured player name.
func (s *Session) Player() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerName
}

// Subscribe returns a channel of advisory game events. The caller must invoke
// the returned cancel function to avoid leaks.
func (s *Session) Subscribe() (<-chan domain.GameEvent, func()) {
	ch := make(chan domain.GameEvent, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Session) broadcastLocked(e domain.GameEvent) {
	for ch := range s.subscribers {
		select {
		case ch <- e:
		default:
			// Drop the oldest pending event so a slow reader never blocks
			// the player's action.
			select {
			case <-ch:
			default:
			}
			ch <- e
		}
	}
}

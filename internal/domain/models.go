package domain

import "time"

// Difficulty selects which slice of the question bank a session draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty tiers.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Points is the award for one correct answer at this difficulty.
// Flat per-tier values; no streak or time bonuses, no penalties.
func (d Difficulty) Points() int {
	switch d {
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 30
	default:
		return 10
	}
}

// Phase is the session's lifecycle stage.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhaseResult  Phase = "result"
)

// Question is one entry of the static bank. Immutable after load;
// AnswerIndex always resolves to a real option.
type Question struct {
	ID          string     `json:"id"`
	Category    string     `json:"category"`
	Difficulty  Difficulty `json:"difficulty"`
	Text        string     `json:"text"`
	Options     []string   `json:"options"`
	AnswerIndex int        `json:"answerIndex"`
	Explanation string     `json:"explanation,omitempty"`
}

// Bank is the full set of questions available to the selector.
type Bank struct {
	Version   string     `json:"version,omitempty"`
	Questions []Question `json:"questions"`
}

// LeaderboardCapacity bounds the persisted score list.
const LeaderboardCapacity = 20

// UnrankedPosition is the rank reported when an entry was truncated away.
const UnrankedPosition = 0

// ScoreEntry is one persisted leaderboard row. The ID is assigned at
// record time so rank lookup never depends on structural equality.
type ScoreEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// AnswerOutcome is the advisory signal emitted after each submission.
type AnswerOutcome struct {
	QuestionID  string `json:"questionId"`
	Selected    int    `json:"selected"`
	Correct     bool   `json:"correct"`
	Awarded     int    `json:"awarded"`
	TotalScore  int    `json:"totalScore"`
	Explanation string `json:"explanation,omitempty"`
}

// GameEvent notifies the presentation layer of phase changes and answer
// outcomes. It carries no authority over state; clients re-render from it.
type GameEvent struct {
	Phase   Phase          `json:"phase"`
	Outcome *AnswerOutcome `json:"outcome,omitempty"`
}

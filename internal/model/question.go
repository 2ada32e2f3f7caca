package model

import "time"

// Difficulty levels accepted on a question.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Question is a single multiple-choice item with exactly one correct option.
// Invariant: 0 <= CorrectAnswer < len(Options).
type Question struct {
	ID            string     `json:"id"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Difficulty    string     `json:"difficulty"` // "easy", "medium", "hard"
	Category      string     `json:"category"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

package model

import "time"

// Assessment is a named, time-boxed bundle of questions with a passing
// threshold and an optional shared secret gating candidate access.
// SelectedChallenges holds question ids; order matters for presentation.
// Stale ids (question deleted after assessment creation) are legal and are
// skipped at read time.
type Assessment struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	SelectedChallenges []string   `json:"selectedChallenges"`
	TimeLimit          int        `json:"timeLimit"`    // minutes
	PassingScore       int        `json:"passingScore"` // percentage, 0-100
	Secret             string     `json:"secret,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

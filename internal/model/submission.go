package model

import "time"

// Submission is the immutable record of one candidate's answers and computed
// outcome for one assessment. Answers is sparse: unanswered question ids are
// simply absent. TotalQuestions is fixed at submission time and never
// recomputed, even if the assessment changes later.
type Submission struct {
	ID             string         `json:"id"`
	AssessmentID   string         `json:"assessmentId"`
	CandidateEmail string         `json:"candidateEmail"`
	Answers        map[string]int `json:"answers"`
	Score          int            `json:"score"` // percentage, rounded
	CorrectCount   int            `json:"correctCount"`
	TotalQuestions int            `json:"totalQuestions"`
	Passed         bool           `json:"passed"`
	SubmittedAt    time.Time      `json:"submittedAt"`
}

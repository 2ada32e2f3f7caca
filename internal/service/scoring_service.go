package service

import (
	"math"

	"github.com/minhanle/skillcheck/internal/model"
)

// ScoreResult is the computed outcome of one answer sheet against one
// assessment. Persisting it is the caller's job.
type ScoreResult struct {
	CorrectCount   int
	TotalQuestions int
	Score          int // percentage, rounded half-up
	Passed         bool
}

// ScoringService grades a candidate's answer map against an assessment's
// question list. Pure and deterministic: same inputs, same result, no side
// effects.
type ScoringService interface {
	Score(assessment *model.Assessment, questions map[string]model.Question, answers map[string]int) ScoreResult
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score counts exact matches between the candidate's selected index and each
// question's correct index. The denominator is the length of the assessment's
// question list at submission time: question ids that no longer resolve stay
// in the total and count against the candidate. An absent answer never
// matches.
func (s *scoringService) Score(assessment *model.Assessment, questions map[string]model.Question, answers map[string]int) ScoreResult {
	correct := 0
	for _, questionID := range assessment.SelectedChallenges {
		question, ok := questions[questionID]
		if !ok {
			continue
		}
		if selected, answered := answers[questionID]; answered && selected == question.CorrectAnswer {
			correct++
		}
	}

	total := len(assessment.SelectedChallenges)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return ScoreResult{
		CorrectCount:   correct,
		TotalQuestions: total,
		Score:          score,
		Passed:         score >= assessment.PassingScore,
	}
}

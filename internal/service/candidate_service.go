package service

import (
	"strings"

	"github.com/jinzhu/copier"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

// CandidateService owns the candidate-facing path: the gated, redacted
// assessment view and the one-shot submission that produces an immutable
// scored record.
type CandidateService interface {
	TakeAssessment(id, suppliedSecret string) (*dto.CandidateAssessmentResponse, error)
	SubmitAssessment(id string, req dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error)
}

type candidateService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
	gate           AccessGate
	scoring        ScoringService
}

func NewCandidateService(
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
	gate AccessGate,
	scoring ScoringService,
) CandidateService {
	return &candidateService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
		gate:           gate,
		scoring:        scoring,
	}
}

func (s *candidateService) questionsByID() (map[string]model.Question, error) {
	all, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}
	return byID, nil
}

// TakeAssessment releases question content only after the access gate
// approves the supplied credential. The response never carries the stored
// secret or any correct-answer index.
func (s *candidateService) TakeAssessment(id, suppliedSecret string) (*dto.CandidateAssessmentResponse, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.gate.Authorize(assessment, suppliedSecret); err != nil {
		return nil, err
	}

	byID, err := s.questionsByID()
	if err != nil {
		log.Error().Err(err).Str("assessmentID", id).Msg("Failed to load questions for candidate view")
		return nil, err
	}

	var resp dto.CandidateAssessmentResponse
	copier.Copy(&resp.Item, assessment)
	resp.Item.Secret = ""
	resp.Questions = make([]dto.CandidateQuestionResponse, 0, len(assessment.SelectedChallenges))
	for _, questionID := range assessment.SelectedChallenges {
		q, ok := byID[questionID]
		if !ok {
			continue
		}
		resp.Questions = append(resp.Questions, dto.CandidateQuestionResponse{
			ID:         q.ID,
			Question:   q.Question,
			Options:    q.Options,
			Difficulty: q.Difficulty,
			Category:   q.Category,
		})
	}
	return &resp, nil
}

// SubmitAssessment validates the candidate email, scores the answer sheet
// against the live question records and persists the submission exactly once.
// Nothing is written when validation fails.
func (s *candidateService) SubmitAssessment(id string, req dto.SubmitAssessmentRequest) (*dto.SubmissionResponse, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.CandidateEmail)
	if email == "" {
		return nil, apperr.Invalid("candidateEmail", "must not be empty")
	}

	answers := req.Answers
	if answers == nil {
		answers = map[string]int{}
	}

	byID, err := s.questionsByID()
	if err != nil {
		log.Error().Err(err).Str("assessmentID", id).Msg("Failed to load questions for scoring")
		return nil, err
	}

	result := s.scoring.Score(assessment, byID, answers)

	submission := model.Submission{
		AssessmentID:   assessment.ID,
		CandidateEmail: email,
		Answers:        answers,
		Score:          result.Score,
		CorrectCount:   result.CorrectCount,
		TotalQuestions: result.TotalQuestions,
		Passed:         result.Passed,
	}
	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Str("assessmentID", id).Msg("Failed to persist submission")
		return nil, err
	}

	log.Info().
		Str("assessmentID", assessment.ID).
		Str("submissionID", submission.ID).
		Int("score", submission.Score).
		Bool("passed", submission.Passed).
		Msg("Submission scored")

	var resp dto.SubmissionResponse
	copier.Copy(&resp, &submission)
	return &resp, nil
}

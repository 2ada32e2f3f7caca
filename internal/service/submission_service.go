package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService serves the review screens: the joined list view and the
// per-question breakdown of a single submission.
type SubmissionService interface {
	GetAllSubmissions() ([]dto.SubmissionSummaryResponse, error)
	GetSubmissionDetails(id string) (*dto.SubmissionDetailResponse, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
}

func NewSubmissionService(
	submissionRepo repository.SubmissionRepository,
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
) SubmissionService {
	return &submissionService{
		submissionRepo: submissionRepo,
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
	}
}

// GetAllSubmissions joins each submission with its parent assessment's title.
// A deleted assessment leaves the title empty rather than failing the list.
func (s *submissionService) GetAllSubmissions() ([]dto.SubmissionSummaryResponse, error) {
	submissions, err := s.submissionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		return nil, err
	}
	assessments, err := s.assessmentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load assessments for submission list")
		return nil, err
	}
	titles := make(map[string]string, len(assessments))
	for _, a := range assessments {
		titles[a.ID] = a.Title
	}

	resp := make([]dto.SubmissionSummaryResponse, 0, len(submissions))
	for i := range submissions {
		var item dto.SubmissionSummaryResponse
		copier.Copy(&item.SubmissionResponse, &submissions[i])
		item.AssessmentTitle = titles[submissions[i].AssessmentID]
		resp = append(resp, item)
	}
	return resp, nil
}

// GetSubmissionDetails builds the review map for every question id on the
// parent assessment that still resolves. CandidateAnswer is -1 for
// unanswered questions; a vanished parent assessment yields an empty map.
func (s *submissionService) GetSubmissionDetails(id string) (*dto.SubmissionDetailResponse, error) {
	submission, err := s.submissionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	var resp dto.SubmissionDetailResponse
	copier.Copy(&resp.Item, submission)
	resp.Detail = map[string]dto.QuestionReviewDetail{}

	assessment, err := s.assessmentRepo.FindByID(submission.AssessmentID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			log.Warn().Str("submissionID", id).Str("assessmentID", submission.AssessmentID).Msg("Parent assessment gone; returning submission without detail")
			return &resp, nil
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Str("submissionID", id).Msg("Failed to load questions for review detail")
		return nil, err
	}
	byID := make(map[string]model.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, questionID := range assessment.SelectedChallenges {
		q, ok := byID[questionID]
		if !ok {
			continue
		}
		candidateAnswer, answered := submission.Answers[questionID]
		if !answered {
			candidateAnswer = -1
		}
		resp.Detail[questionID] = dto.QuestionReviewDetail{
			Question:        q.Question,
			Options:         q.Options,
			CorrectAnswer:   q.CorrectAnswer,
			CandidateAnswer: candidateAnswer,
			IsCorrect:       answered && candidateAnswer == q.CorrectAnswer,
		}
	}
	return &resp, nil
}

package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeLimitMinutes = 30
	defaultPassingScore     = 70
)

type AssessmentService interface {
	CreateAssessment(req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error)
	GetAllAssessments() ([]dto.AssessmentResponse, error)
	GetAssessmentDetails(id string) (*dto.AssessmentDetailResponse, error)
	GetAssessmentResults(id string) (*dto.AssessmentResultsResponse, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	questionRepo   repository.QuestionRepository
	submissionRepo repository.SubmissionRepository
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	questionRepo repository.QuestionRepository,
	submissionRepo repository.SubmissionRepository,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		submissionRepo: submissionRepo,
	}
}

// CreateAssessment applies the documented defaults (30 minute limit, 70%
// passing score) and strips the secret from the response.
func (s *assessmentService) CreateAssessment(req dto.CreateAssessmentRequest) (*dto.AssessmentResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Invalid("title", "must not be empty")
	}

	timeLimit := defaultTimeLimitMinutes
	if req.TimeLimit != nil {
		timeLimit = *req.TimeLimit
	}
	if timeLimit <= 0 {
		return nil, apperr.Invalid("timeLimit", "must be a positive number of minutes")
	}

	passingScore := defaultPassingScore
	if req.PassingScore != nil {
		passingScore = *req.PassingScore
	}
	if passingScore < 0 || passingScore > 100 {
		return nil, apperr.Invalid("passingScore", fmt.Sprintf("must be between 0 and 100, got %d", passingScore))
	}

	assessment := model.Assessment{
		Title:              req.Title,
		Description:        req.Description,
		SelectedChallenges: req.SelectedChallenges,
		TimeLimit:          timeLimit,
		PassingScore:       passingScore,
		Secret:             req.Secret,
	}
	if assessment.SelectedChallenges == nil {
		assessment.SelectedChallenges = []string{}
	}

	if err := s.assessmentRepo.Create(&assessment); err != nil {
		log.Error().Err(err).Msg("Failed to create assessment")
		return nil, err
	}

	var resp dto.AssessmentResponse
	copier.Copy(&resp, &assessment)
	resp.Secret = ""
	return &resp, nil
}

// GetAllAssessments is the authoring list view; secrets are included.
func (s *assessmentService) GetAllAssessments() ([]dto.AssessmentResponse, error) {
	assessments, err := s.assessmentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assessments")
		return nil, err
	}
	resp := make([]dto.AssessmentResponse, 0, len(assessments))
	for i := range assessments {
		var item dto.AssessmentResponse
		copier.Copy(&item, &assessments[i])
		resp = append(resp, item)
	}
	return resp, nil
}

// resolveQuestions maps the assessment's question ids to live records,
// silently skipping ids that no longer resolve.
func (s *assessmentService) resolveQuestions(assessment *model.Assessment) ([]model.Question, error) {
	all, err := s.questionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}
	resolved := make([]model.Question, 0, len(assessment.SelectedChallenges))
	for _, questionID := range assessment.SelectedChallenges {
		if q, ok := byID[questionID]; ok {
			resolved = append(resolved, q)
		}
	}
	return resolved, nil
}

func (s *assessmentService) GetAssessmentDetails(id string) (*dto.AssessmentDetailResponse, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	questions, err := s.resolveQuestions(assessment)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", id).Msg("Failed to resolve assessment questions")
		return nil, err
	}

	var resp dto.AssessmentDetailResponse
	copier.Copy(&resp.Item, assessment)
	resp.Questions = make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		var item dto.QuestionResponse
		copier.Copy(&item, &questions[i])
		resp.Questions = append(resp.Questions, item)
	}
	return &resp, nil
}

// GetAssessmentResults aggregates submission statistics for one assessment.
func (s *assessmentService) GetAssessmentResults(id string) (*dto.AssessmentResultsResponse, error) {
	assessment, err := s.assessmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	submissions, err := s.submissionRepo.FindAllByAssessmentID(id)
	if err != nil {
		log.Error().Err(err).Str("assessmentID", id).Msg("Failed to load submissions for results")
		return nil, err
	}

	stats := dto.ResultsStats{TotalSubmissions: len(submissions)}
	if len(submissions) > 0 {
		scoreSum := 0
		passedCount := 0
		for _, sub := range submissions {
			scoreSum += sub.Score
			if sub.Passed {
				passedCount++
			}
		}
		stats.AverageScore = int(math.Round(float64(scoreSum) / float64(len(submissions))))
		stats.PassRate = int(math.Round(float64(passedCount) / float64(len(submissions)) * 100))
	}

	var resp dto.AssessmentResultsResponse
	copier.Copy(&resp.Assessment, assessment)
	resp.Stats = stats
	resp.Submissions = make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		var item dto.SubmissionResponse
		copier.Copy(&item, &submissions[i])
		resp.Submissions = append(resp.Submissions, item)
	}
	return &resp, nil
}

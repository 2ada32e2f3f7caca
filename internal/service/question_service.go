package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id string) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	UpdateQuestion(id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id string) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// validateQuestion enforces the stored-record invariants: 2-6 options, a
// correct-answer index that resolves, and a known difficulty.
func validateQuestion(q *model.Question) error {
	if len(q.Options) < 2 || len(q.Options) > 6 {
		return apperr.Invalid("options", fmt.Sprintf("must contain between 2 and 6 entries, got %d", len(q.Options)))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return apperr.Invalid("correctAnswer", fmt.Sprintf("index %d does not select one of %d options", q.CorrectAnswer, len(q.Options)))
	}
	switch q.Difficulty {
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return apperr.Invalid("difficulty", "must be one of easy, medium, hard")
	}
	return nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		Question:      req.Question,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Difficulty:    req.Difficulty,
		Category:      req.Category,
	}
	if question.Options == nil {
		question.Options = []string{}
	}
	if question.Difficulty == "" {
		question.Difficulty = model.DifficultyMedium
	}
	if question.Category == "" {
		question.Category = "General"
	}

	if err := validateQuestion(&question); err != nil {
		return nil, err
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id string) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		var item dto.QuestionResponse
		copier.Copy(&item, &questions[i])
		resp = append(resp, item)
	}
	return resp, nil
}

// UpdateQuestion merges the supplied fields into the stored record and
// re-validates the result, so a partial update cannot break the
// correct-answer invariant.
func (s *questionService) UpdateQuestion(id string, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		question.Question = *req.Question
	}
	if req.Options != nil {
		question.Options = *req.Options
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}
	if req.Category != nil {
		question.Category = *req.Category
	}

	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Str("questionID", id).Msg("Failed to update question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

// DeleteQuestion removes the question only. Assessments referencing it keep
// the stale id; there is no cascade and no referential check.
func (s *questionService) DeleteQuestion(id string) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		log.Error().Err(err).Str("questionID", id).Msg("Failed to delete question")
		return err
	}
	if !removed {
		return apperr.NotFound("question", id)
	}
	return nil
}

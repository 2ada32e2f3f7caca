package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/internal/controller"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/service"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
	geminiService   service.GeminiQuestionService
}

func NewQuestionController(questionService service.QuestionService, geminiService service.GeminiQuestionService) *QuestionController {
	return &QuestionController{questionService: questionService, geminiService: geminiService}
}

// GetAllQuestions godoc
// @Summary List all questions
// @Tags Questions
// @Produce json
// @Success 200 {object} dto.QuestionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) GetAllQuestions(ctx *gin.Context) {
	questions, err := c.questionService.GetAllQuestions()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionListResponse{Items: questions})
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Missing fields are defaulted (difficulty "medium", category "General"); the correct-answer index must select one of 2-6 options.
// @Tags Questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question fields"
// @Success 201 {object} dto.QuestionItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.QuestionItemResponse{Item: *question})
}

// GetQuestion godoc
// @Summary Fetch one question
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	question, err := c.questionService.GetQuestion(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionItemResponse{Item: *question})
}

// UpdateQuestion godoc
// @Summary Partially update a question
// @Description Only supplied fields replace stored values; the merged record is re-validated.
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path string true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req dto.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateQuestion: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	question, err := c.questionService.UpdateQuestion(ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionItemResponse{Item: *question})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Description Assessments referencing the question keep the stale id; nothing cascades.
// @Tags Questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.questionService.DeleteQuestion(ctx.Param("id")); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GenerateQuestions godoc
// @Summary Generate question drafts with Gemini
// @Description Drafts are returned for review, not persisted. Answers 503 when no API key is configured.
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuestionsRequest true "Category, difficulty and count (1-10, default 3)"
// @Success 200 {object} dto.QuestionDraftListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /questions/generate [post]
func (c *QuestionController) GenerateQuestions(ctx *gin.Context) {
	var req dto.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateQuestions: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	drafts, err := c.geminiService.GenerateQuestions(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrGeneratorUnavailable) {
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
			return
		}
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionDraftListResponse{Items: drafts})
}

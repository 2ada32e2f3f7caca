package candidate

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/internal/controller"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/service"
	"github.com/rs/zerolog/log"
)

// secretHeader carries the assessment credential; the "secret" query
// parameter is the fallback. Header wins when both are present.
const secretHeader = "X-Assessment-Secret"

type CandidateController struct {
	candidateService service.CandidateService
}

func NewCandidateController(candidateService service.CandidateService) *CandidateController {
	return &CandidateController{candidateService: candidateService}
}

func suppliedSecret(ctx *gin.Context) string {
	if secret := ctx.GetHeader(secretHeader); secret != "" {
		return secret
	}
	return ctx.Query("secret")
}

// TakeAssessment godoc
// @Summary Candidate-safe assessment view
// @Description Gated by the assessment's optional secret (X-Assessment-Secret header or "secret" query parameter). The response never carries the stored secret or any correct-answer index.
// @Tags Candidate
// @Produce json
// @Param id path string true "Assessment ID"
// @Param X-Assessment-Secret header string false "Assessment secret"
// @Success 200 {object} dto.CandidateAssessmentResponse
// @Failure 401 {object} dto.ErrorResponse "requiresSecret is true"
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/take [get]
func (c *CandidateController) TakeAssessment(ctx *gin.Context) {
	view, err := c.candidateService.TakeAssessment(ctx.Param("id"), suppliedSecret(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SubmitAssessment godoc
// @Summary Submit a candidate's answers
// @Description Scores the answer sheet and persists an immutable submission. candidateEmail must be non-empty after trimming.
// @Tags Candidate
// @Accept json
// @Produce json
// @Param id path string true "Assessment ID"
// @Param submission body dto.SubmitAssessmentRequest true "Candidate email and sparse answer map"
// @Success 201 {object} dto.SubmissionCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/submit [post]
func (c *CandidateController) SubmitAssessment(ctx *gin.Context) {
	var req dto.SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	submission, err := c.candidateService.SubmitAssessment(ctx.Param("id"), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.SubmissionCreatedResponse{Submission: *submission})
}

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/internal/controller"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/service"
	"github.com/rs/zerolog/log"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// GetAllAssessments godoc
// @Summary List all assessments (authoring view, secrets included)
// @Tags Assessments
// @Produce json
// @Success 200 {object} dto.AssessmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [get]
func (c *AssessmentController) GetAllAssessments(ctx *gin.Context) {
	assessments, err := c.assessmentService.GetAllAssessments()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AssessmentListResponse{Items: assessments})
}

// CreateAssessment godoc
// @Summary Create an assessment
// @Description Defaults: timeLimit 30 minutes, passingScore 70. The secret is stripped from the response.
// @Tags Assessments
// @Accept json
// @Produce json
// @Param assessment body dto.CreateAssessmentRequest true "Assessment fields"
// @Success 201 {object} dto.AssessmentItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /assessments [post]
func (c *AssessmentController) CreateAssessment(ctx *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateAssessment: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}
	assessment, err := c.assessmentService.CreateAssessment(req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.AssessmentItemResponse{Item: *assessment})
}

// GetAssessmentDetails godoc
// @Summary Fetch an assessment with full question bodies (authoring view)
// @Description Correct answers are included; stale question ids are skipped.
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id} [get]
func (c *AssessmentController) GetAssessmentDetails(ctx *gin.Context) {
	details, err := c.assessmentService.GetAssessmentDetails(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetAssessmentResults godoc
// @Summary Aggregate submission statistics for an assessment
// @Tags Assessments
// @Produce json
// @Param id path string true "Assessment ID"
// @Success 200 {object} dto.AssessmentResultsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/results [get]
func (c *AssessmentController) GetAssessmentResults(ctx *gin.Context) {
	results, err := c.assessmentService.GetAssessmentResults(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/internal/controller"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/service"
)

type SubmissionController struct {
	submissionService service.SubmissionService
}

func NewSubmissionController(submissionService service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionService: submissionService}
}

// GetAllSubmissions godoc
// @Summary List all submissions with assessment titles joined
// @Tags Submissions
// @Produce json
// @Success 200 {object} dto.SubmissionListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /submissions [get]
func (c *SubmissionController) GetAllSubmissions(ctx *gin.Context) {
	submissions, err := c.submissionService.GetAllSubmissions()
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmissionListResponse{Items: submissions})
}

// GetSubmissionDetails godoc
// @Summary Fetch one submission with its per-question review detail
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.SubmissionDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmissionDetails(ctx *gin.Context) {
	details, err := c.submissionService.GetSubmissionDetails(ctx.Param("id"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

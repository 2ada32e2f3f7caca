package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/minhanle/skillcheck/config"
	"github.com/minhanle/skillcheck/internal/dto"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/repository"
	"github.com/minhanle/skillcheck/internal/service"
	"github.com/minhanle/skillcheck/internal/store"
)

type fixture struct {
	router         *gin.Engine
	questionRepo   repository.QuestionRepository
	assessmentRepo repository.AssessmentRepository
	submissionRepo repository.SubmissionRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	questionRepo := repository.NewQuestionRepository(fs)
	assessmentRepo := repository.NewAssessmentRepository(fs)
	submissionRepo := repository.NewSubmissionRepository(fs)

	// No API key: the generator runs in its degraded mode.
	geminiSvc, err := service.NewGeminiQuestionService(&config.Config{})
	if err != nil {
		t.Fatalf("NewGeminiQuestionService: %v", err)
	}

	questionCtrl := NewQuestionController(service.NewQuestionService(questionRepo), geminiSvc)
	assessmentCtrl := NewAssessmentController(service.NewAssessmentService(assessmentRepo, questionRepo, submissionRepo))
	submissionCtrl := NewSubmissionController(service.NewSubmissionService(submissionRepo, assessmentRepo, questionRepo))

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/questions", questionCtrl.GetAllQuestions)
	api.POST("/questions", questionCtrl.CreateQuestion)
	api.POST("/questions/generate", questionCtrl.GenerateQuestions)
	api.GET("/questions/:id", questionCtrl.GetQuestion)
	api.PUT("/questions/:id", questionCtrl.UpdateQuestion)
	api.DELETE("/questions/:id", questionCtrl.DeleteQuestion)
	api.GET("/assessments", assessmentCtrl.GetAllAssessments)
	api.POST("/assessments", assessmentCtrl.CreateAssessment)
	api.GET("/assessments/:id", assessmentCtrl.GetAssessmentDetails)
	api.GET("/assessments/:id/results", assessmentCtrl.GetAssessmentResults)
	api.GET("/submissions", submissionCtrl.GetAllSubmissions)
	api.GET("/submissions/:id", submissionCtrl.GetSubmissionDetails)

	return &fixture{
		router:         router,
		questionRepo:   questionRepo,
		assessmentRepo: assessmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestQuestionCRUDFlow(t *testing.T) {
	f := newFixture(t)

	// Create with defaults.
	rec := f.do(t, http.MethodPost, "/api/v1/questions", `{"question": "Pick one", "options": ["a", "b"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created dto.QuestionItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse create response: %v", err)
	}
	if created.Item.Difficulty != "medium" || created.Item.Category != "General" {
		t.Fatalf("defaults not applied: %+v", created.Item)
	}

	// Round trip: stored correctAnswer indexes a real option.
	rec = f.do(t, http.MethodGet, "/api/v1/questions/"+created.Item.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status %d, want 200", rec.Code)
	}
	var fetched dto.QuestionItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("parse get response: %v", err)
	}
	if fetched.Item.CorrectAnswer < 0 || fetched.Item.CorrectAnswer >= len(fetched.Item.Options) {
		t.Fatalf("stored correctAnswer does not index options: %+v", fetched.Item)
	}

	// Partial update.
	rec = f.do(t, http.MethodPut, "/api/v1/questions/"+created.Item.ID, `{"category": "Go"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var updated dto.QuestionItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("parse update response: %v", err)
	}
	if updated.Item.Category != "Go" || updated.Item.Question != "Pick one" {
		t.Fatalf("partial update wrong: %+v", updated.Item)
	}

	// Delete, then 404.
	rec = f.do(t, http.MethodDelete, "/api/v1/questions/"+created.Item.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d, want 200", rec.Code)
	}
	rec = f.do(t, http.MethodGet, "/api/v1/questions/"+created.Item.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d, want 404", rec.Code)
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/questions", `{"question": "q", "options": ["a", "b"], "correctAnswer": 5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	var errBody dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("parse error body: %v", err)
	}
	if !strings.Contains(errBody.Error, "correctAnswer") {
		t.Fatalf("error should name the offending field: %q", errBody.Error)
	}
}

func TestUnknownQuestion404(t *testing.T) {
	f := newFixture(t)
	for _, probe := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/questions/missing"},
		{http.MethodPut, "/api/v1/questions/missing"},
		{http.MethodDelete, "/api/v1/questions/missing"},
	} {
		body := ""
		if probe.method == http.MethodPut {
			body = `{"category": "x"}`
		}
		rec := f.do(t, probe.method, probe.path, body)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s: status %d, want 404", probe.method, probe.path, rec.Code)
		}
	}
}

func TestCreateAssessmentDefaultsAndRedaction(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/assessments", `{"title": "Screening", "secret": "abc123"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created dto.AssessmentItemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("parse create response: %v", err)
	}
	if created.Item.TimeLimit != 30 || created.Item.PassingScore != 70 {
		t.Fatalf("defaults not applied: %+v", created.Item)
	}
	if created.Item.Secret != "" || strings.Contains(rec.Body.String(), "abc123") {
		t.Fatalf("create response must strip the secret: %s", rec.Body.String())
	}

	// Authoring list view includes the secret.
	rec = f.do(t, http.MethodGet, "/api/v1/assessments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "abc123") {
		t.Fatalf("authoring list must include the secret: %s", rec.Body.String())
	}
}

func TestCreateAssessmentValidation(t *testing.T) {
	f := newFixture(t)
	cases := []string{
		`{"title": "  "}`,
		`{"title": "x", "passingScore": 101}`,
		`{"title": "x", "passingScore": -1}`,
		`{"title": "x", "timeLimit": 0}`,
	}
	for _, body := range cases {
		rec := f.do(t, http.MethodPost, "/api/v1/assessments", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", body, rec.Code)
		}
	}
}

func TestDeleteQuestionDoesNotCascade(t *testing.T) {
	f := newFixture(t)

	q1 := &model.Question{Question: "First?", Options: []string{"no", "yes"}, CorrectAnswer: 1, Difficulty: "easy", Category: "General"}
	q2 := &model.Question{Question: "Second?", Options: []string{"yes", "no"}, CorrectAnswer: 0, Difficulty: "easy", Category: "General"}
	for _, q := range []*model.Question{q1, q2} {
		if err := f.questionRepo.Create(q); err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
	assessment := &model.Assessment{Title: "Screening", SelectedChallenges: []string{q1.ID, q2.ID}, TimeLimit: 30, PassingScore: 70}
	if err := f.assessmentRepo.Create(assessment); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	submission := &model.Submission{AssessmentID: assessment.ID, CandidateEmail: "jo@example.com", Answers: map[string]int{q1.ID: 1}, Score: 50, CorrectCount: 1, TotalQuestions: 2}
	if err := f.submissionRepo.Create(submission); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	rec := f.do(t, http.MethodDelete, "/api/v1/questions/"+q2.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d, want 200", rec.Code)
	}

	// The assessment keeps the stale id; the detail view just skips it.
	rec = f.do(t, http.MethodGet, "/api/v1/assessments/"+assessment.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("assessment detail: status %d, want 200", rec.Code)
	}
	var detail dto.AssessmentDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("parse detail: %v", err)
	}
	if len(detail.Item.SelectedChallenges) != 2 {
		t.Fatalf("delete cascaded into the assessment: %+v", detail.Item.SelectedChallenges)
	}
	if len(detail.Questions) != 1 {
		t.Fatalf("stale id not skipped in detail view: %d questions", len(detail.Questions))
	}

	// The submission is untouched.
	got, err := f.submissionRepo.FindByID(submission.ID)
	if err != nil {
		t.Fatalf("submission gone after question delete: %v", err)
	}
	if got.TotalQuestions != 2 || got.Score != 50 {
		t.Fatalf("submission modified by question delete: %+v", got)
	}
}

func TestAssessmentResultsAggregation(t *testing.T) {
	f := newFixture(t)
	assessment := &model.Assessment{Title: "Screening", SelectedChallenges: []string{}, TimeLimit: 30, PassingScore: 70}
	if err := f.assessmentRepo.Create(assessment); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	for _, s := range []struct {
		score  int
		passed bool
	}{{90, true}, {70, true}, {20, false}} {
		sub := &model.Submission{AssessmentID: assessment.ID, CandidateEmail: "c@example.com", Answers: map[string]int{}, Score: s.score, Passed: s.passed}
		if err := f.submissionRepo.Create(sub); err != nil {
			t.Fatalf("seed submission: %v", err)
		}
	}

	rec := f.do(t, http.MethodGet, "/api/v1/assessments/"+assessment.ID+"/results", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("results: status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var results dto.AssessmentResultsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
		t.Fatalf("parse results: %v", err)
	}
	if results.Stats.TotalSubmissions != 3 {
		t.Fatalf("totalSubmissions = %d, want 3", results.Stats.TotalSubmissions)
	}
	if results.Stats.AverageScore != 60 {
		t.Fatalf("averageScore = %d, want 60", results.Stats.AverageScore)
	}
	if results.Stats.PassRate != 67 {
		t.Fatalf("passRate = %d, want 67 (2 of 3, rounded)", results.Stats.PassRate)
	}
	if len(results.Submissions) != 3 {
		t.Fatalf("expected 3 submissions in results, got %d", len(results.Submissions))
	}
}

func TestSubmissionListJoinsAssessmentTitle(t *testing.T) {
	f := newFixture(t)
	assessment := &model.Assessment{Title: "Backend Screening", SelectedChallenges: []string{}, TimeLimit: 30, PassingScore: 70}
	if err := f.assessmentRepo.Create(assessment); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	sub := &model.Submission{AssessmentID: assessment.ID, CandidateEmail: "jo@example.com", Answers: map[string]int{}, Score: 80, Passed: true}
	if err := f.submissionRepo.Create(sub); err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	orphan := &model.Submission{AssessmentID: "gone", CandidateEmail: "jo@example.com", Answers: map[string]int{}}
	if err := f.submissionRepo.Create(orphan); err != nil {
		t.Fatalf("seed orphan submission: %v", err)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/submissions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d, want 200", rec.Code)
	}
	var list dto.SubmissionListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(list.Items))
	}
	byID := map[string]dto.SubmissionSummaryResponse{}
	for _, item := range list.Items {
		byID[item.ID] = item
	}
	if byID[sub.ID].AssessmentTitle != "Backend Screening" {
		t.Fatalf("title not joined: %+v", byID[sub.ID])
	}
	if byID[orphan.ID].AssessmentTitle != "" {
		t.Fatalf("orphan submission should have empty title: %+v", byID[orphan.ID])
	}
}

func TestSubmissionReviewDetail(t *testing.T) {
	f := newFixture(t)

	q1 := &model.Question{Question: "First?", Options: []string{"no", "yes"}, CorrectAnswer: 1, Difficulty: "easy", Category: "General"}
	q2 := &model.Question{Question: "Second?", Options: []string{"yes", "no"}, CorrectAnswer: 0, Difficulty: "easy", Category: "General"}
	for _, q := range []*model.Question{q1, q2} {
		if err := f.questionRepo.Create(q); err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}
	assessment := &model.Assessment{Title: "Screening", SelectedChallenges: []string{q1.ID, q2.ID}, TimeLimit: 30, PassingScore: 70}
	if err := f.assessmentRepo.Create(assessment); err != nil {
		t.Fatalf("seed assessment: %v", err)
	}
	sub := &model.Submission{AssessmentID: assessment.ID, CandidateEmail: "jo@example.com", Answers: map[string]int{q1.ID: 1}, Score: 50, CorrectCount: 1, TotalQuestions: 2}
	if err := f.submissionRepo.Create(sub); err != nil {
		t.Fatalf("seed submission: %v", err)
	}

	rec := f.do(t, http.MethodGet, "/api/v1/submissions/"+sub.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("detail: status %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var detail dto.SubmissionDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("parse detail: %v", err)
	}
	if len(detail.Detail) != 2 {
		t.Fatalf("expected 2 review entries, got %d", len(detail.Detail))
	}
	answered := detail.Detail[q1.ID]
	if !answered.IsCorrect || answered.CandidateAnswer != 1 || answered.CorrectAnswer != 1 {
		t.Fatalf("answered entry wrong: %+v", answered)
	}
	unanswered := detail.Detail[q2.ID]
	if unanswered.IsCorrect || unanswered.CandidateAnswer != -1 {
		t.Fatalf("unanswered entry wrong: %+v", unanswered)
	}
}

func TestGenerateQuestionsUnavailableWithoutKey(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPost, "/api/v1/questions/generate", `{"category": "Go", "count": 2}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status %d, want 503", rec.Code)
	}
}

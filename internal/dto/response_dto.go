package dto

import "time"

// ErrorResponse is the uniform error body. RequiresSecret is set only on 401
// responses from the access gate so the caller knows to prompt for one.
type ErrorResponse struct {
	Error          string `json:"error"`
	RequiresSecret bool   `json:"requiresSecret,omitempty"`
}

// QuestionResponse is the authoring view of a question, correct answer included.
type QuestionResponse struct {
	ID            string     `json:"id"`
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer int        `json:"correctAnswer"`
	Difficulty    string     `json:"difficulty"`
	Category      string     `json:"category"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// CandidateQuestionResponse is the candidate-safe view: no correct answer.
type CandidateQuestionResponse struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
}

// AssessmentResponse is the authoring view of an assessment. Secret is
// cleared (and therefore omitted) on candidate-facing and creation responses.
type AssessmentResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	SelectedChallenges []string   `json:"selectedChallenges"`
	TimeLimit          int        `json:"timeLimit"`
	PassingScore       int        `json:"passingScore"`
	Secret             string     `json:"secret,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          *time.Time `json:"updatedAt,omitempty"`
}

type SubmissionResponse struct {
	ID             string         `json:"id"`
	AssessmentID   string         `json:"assessmentId"`
	CandidateEmail string         `json:"candidateEmail"`
	Answers        map[string]int `json:"answers"`
	Score          int            `json:"score"`
	CorrectCount   int            `json:"correctCount"`
	TotalQuestions int            `json:"totalQuestions"`
	Passed         bool           `json:"passed"`
	SubmittedAt    time.Time      `json:"submittedAt"`
}

// SubmissionSummaryResponse joins a submission with its parent assessment's
// title for list views. Title is empty when the assessment no longer exists.
type SubmissionSummaryResponse struct {
	SubmissionResponse
	AssessmentTitle string `json:"assessmentTitle"`
}

// QuestionReviewDetail is the per-question breakdown on the review screen.
// CandidateAnswer is -1 when the question was left unanswered.
type QuestionReviewDetail struct {
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   int      `json:"correctAnswer"`
	CandidateAnswer int      `json:"candidateAnswer"`
	IsCorrect       bool     `json:"isCorrect"`
}

// QuestionDraft is an AI-generated question proposal. Drafts are returned to
// the author for review, never persisted directly.
type QuestionDraft struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
}

type ResultsStats struct {
	TotalSubmissions int `json:"totalSubmissions"`
	AverageScore     int `json:"averageScore"`
	PassRate         int `json:"passRate"`
}

// Envelope shapes.

type QuestionListResponse struct {
	Items []QuestionResponse `json:"items"`
}

type QuestionItemResponse struct {
	Item QuestionResponse `json:"item"`
}

type QuestionDraftListResponse struct {
	Items []QuestionDraft `json:"items"`
}

type AssessmentListResponse struct {
	Items []AssessmentResponse `json:"items"`
}

type AssessmentItemResponse struct {
	Item AssessmentResponse `json:"item"`
}

// AssessmentDetailResponse is the authoring detail view: full question bodies,
// correct answers included.
type AssessmentDetailResponse struct {
	Item      AssessmentResponse `json:"item"`
	Questions []QuestionResponse `json:"questions"`
}

// CandidateAssessmentResponse is the take view: secret stripped from the
// assessment, correct answers stripped from the questions.
type CandidateAssessmentResponse struct {
	Item      AssessmentResponse          `json:"item"`
	Questions []CandidateQuestionResponse `json:"questions"`
}

type SubmissionCreatedResponse struct {
	Submission SubmissionResponse `json:"submission"`
}

type SubmissionListResponse struct {
	Items []SubmissionSummaryResponse `json:"items"`
}

type SubmissionDetailResponse struct {
	Item   SubmissionResponse              `json:"item"`
	Detail map[string]QuestionReviewDetail `json:"detail"`
}

type AssessmentResultsResponse struct {
	Assessment  AssessmentResponse   `json:"assessment"`
	Stats       ResultsStats         `json:"stats"`
	Submissions []SubmissionResponse `json:"submissions"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

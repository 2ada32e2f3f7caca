package dto

// CreateQuestionRequest carries the authoring fields for a new question.
// Missing fields are defaulted by the service (difficulty "medium", category
// "General") before the invariant check rejects unanswerable questions.
type CreateQuestionRequest struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Category      string   `json:"category"`
}

// UpdateQuestionRequest is a partial update: only non-nil fields replace the
// stored values.
type UpdateQuestionRequest struct {
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correctAnswer"`
	Difficulty    *string   `json:"difficulty"`
	Category      *string   `json:"category"`
}

// CreateAssessmentRequest bundles question ids into a timed assessment.
// TimeLimit and PassingScore are pointers so an explicit zero survives
// defaulting (30 minutes / 70 percent when absent).
type CreateAssessmentRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	SelectedChallenges []string `json:"selectedChallenges"`
	TimeLimit          *int     `json:"timeLimit"`
	PassingScore       *int     `json:"passingScore"`
	Secret             string   `json:"secret"`
}

// SubmitAssessmentRequest is a candidate's answer sheet. Answers is sparse:
// unanswered question ids are absent.
type SubmitAssessmentRequest struct {
	CandidateEmail string         `json:"candidateEmail"`
	Answers        map[string]int `json:"answers"`
}

// GenerateQuestionsRequest asks the AI generator for question drafts.
type GenerateQuestionsRequest struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/store"
)

const submissionCollection = "submissions"

// SubmissionRepository has no update or delete: submissions are written once
// and retained indefinitely.
type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id string) (*model.Submission, error)
	FindAll() ([]model.Submission, error)
	FindAllByAssessmentID(assessmentID string) ([]model.Submission, error)
}

type submissionRepository struct {
	fs *store.FileStore
	mu sync.RWMutex
}

func NewSubmissionRepository(fs *store.FileStore) SubmissionRepository {
	return &submissionRepository{fs: fs}
}

func (r *submissionRepository) load() ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.fs.Load(submissionCollection, &submissions); err != nil {
		return nil, apperr.Storage("read submissions", err)
	}
	return submissions, nil
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	submissions, err := r.load()
	if err != nil {
		return err
	}
	submission.ID = uuid.NewString()
	submission.SubmittedAt = time.Now().UTC()
	if err := r.fs.Save(submissionCollection, append(submissions, *submission)); err != nil {
		return apperr.Storage("write submissions", err)
	}
	return nil
}

func (r *submissionRepository) FindByID(id string) (*model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	submissions, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range submissions {
		if submissions[i].ID == id {
			s := submissions[i]
			return &s, nil
		}
	}
	return nil, apperr.NotFound("submission", id)
}

func (r *submissionRepository) FindAll() ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	submissions, err := r.load()
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []model.Submission{}
	}
	return submissions, nil
}

func (r *submissionRepository) FindAllByAssessmentID(assessmentID string) ([]model.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	submissions, err := r.load()
	if err != nil {
		return nil, err
	}
	matched := []model.Submission{}
	for _, s := range submissions {
		if s.AssessmentID == assessmentID {
			matched = append(matched, s)
		}
	}
	return matched, nil
}

package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/store"
)

const assessmentCollection = "assessments"

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id string) (*model.Assessment, error)
	FindAll() ([]model.Assessment, error)
	Update(assessment *model.Assessment) error
	Delete(id string) (bool, error)
}

type assessmentRepository struct {
	fs *store.FileStore
	mu sync.RWMutex
}

func NewAssessmentRepository(fs *store.FileStore) AssessmentRepository {
	return &assessmentRepository{fs: fs}
}

func (r *assessmentRepository) load() ([]model.Assessment, error) {
	var assessments []model.Assessment
	if err := r.fs.Load(assessmentCollection, &assessments); err != nil {
		return nil, apperr.Storage("read assessments", err)
	}
	return assessments, nil
}

func (r *assessmentRepository) persist(assessments []model.Assessment) error {
	if err := r.fs.Save(assessmentCollection, assessments); err != nil {
		return apperr.Storage("write assessments", err)
	}
	return nil
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assessments, err := r.load()
	if err != nil {
		return err
	}
	assessment.ID = uuid.NewString()
	assessment.CreatedAt = time.Now().UTC()
	assessment.UpdatedAt = nil
	return r.persist(append(assessments, *assessment))
}

func (r *assessmentRepository) FindByID(id string) (*model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range assessments {
		if assessments[i].ID == id {
			a := assessments[i]
			return &a, nil
		}
	}
	return nil, apperr.NotFound("assessment", id)
}

func (r *assessmentRepository) FindAll() ([]model.Assessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assessments, err := r.load()
	if err != nil {
		return nil, err
	}
	if assessments == nil {
		assessments = []model.Assessment{}
	}
	return assessments, nil
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	assessments, err := r.load()
	if err != nil {
		return err
	}
	for i := range assessments {
		if assessments[i].ID == assessment.ID {
			now := time.Now().UTC()
			assessment.UpdatedAt = &now
			assessments[i] = *assessment
			return r.persist(assessments)
		}
	}
	return apperr.NotFound("assessment", assessment.ID)
}

func (r *assessmentRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	assessments, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range assessments {
		if assessments[i].ID == id {
			assessments = append(assessments[:i], assessments[i+1:]...)
			if err := r.persist(assessments); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

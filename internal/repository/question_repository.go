package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/model"
	"github.com/minhanle/skillcheck/internal/store"
)

const questionCollection = "questions"

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id string) (*model.Question, error)
	FindAll() ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id string) (bool, error)
}

type questionRepository struct {
	fs *store.FileStore
	mu sync.RWMutex // serializes load-mutate-persist per collection
}

func NewQuestionRepository(fs *store.FileStore) QuestionRepository {
	return &questionRepository{fs: fs}
}

func (r *questionRepository) load() ([]model.Question, error) {
	var questions []model.Question
	if err := r.fs.Load(questionCollection, &questions); err != nil {
		return nil, apperr.Storage("read questions", err)
	}
	return questions, nil
}

func (r *questionRepository) persist(questions []model.Question) error {
	if err := r.fs.Save(questionCollection, questions); err != nil {
		return apperr.Storage("write questions", err)
	}
	return nil
}

func (r *questionRepository) Create(question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, err := r.load()
	if err != nil {
		return err
	}
	question.ID = uuid.NewString()
	question.CreatedAt = time.Now().UTC()
	question.UpdatedAt = nil
	return r.persist(append(questions, *question))
}

func (r *questionRepository) FindByID(id string) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range questions {
		if questions[i].ID == id {
			q := questions[i]
			return &q, nil
		}
	}
	return nil, apperr.NotFound("question", id)
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions, err := r.load()
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, nil
}

// Update replaces the stored record matching question.ID and stamps
// UpdatedAt. It never creates on a miss.
func (r *questionRepository) Update(question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, err := r.load()
	if err != nil {
		return err
	}
	for i := range questions {
		if questions[i].ID == question.ID {
			now := time.Now().UTC()
			question.UpdatedAt = &now
			questions[i] = *question
			return r.persist(questions)
		}
	}
	return apperr.NotFound("question", question.ID)
}

func (r *questionRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	questions, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range questions {
		if questions[i].ID == id {
			questions = append(questions[:i], questions[i+1:]...)
			if err := r.persist(questions); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

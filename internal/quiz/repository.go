package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(q *Quiz, questions []*QuizQuestion) error
	GetByID(id uuid.UUID) (*Quiz, error)
	Update(q *Quiz) error
	AddAnswers(answers []*QuizAnswer) error
	ListByUser(userID uuid.UUID) ([]*Quiz, error)
	ListAnswersByQuiz(quizID uuid.UUID) ([]*QuizAnswer, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(q *Quiz, questions []*QuizQuestion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		if len(questions) > 0 {
			if err := tx.Create(&questions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	if err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) Update(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *quizRepository) AddAnswers(answers []*QuizAnswer) error {
	if len(answers) == 0 {
		return nil
	}
	return r.db.Create(&answers).Error
}

func (r *quizRepository) ListByUser(userID uuid.UUID) ([]*Quiz, error) {
	var quizzes []*Quiz
	if err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) ListAnswersByQuiz(quizID uuid.UUID) ([]*QuizAnswer, error) {
	var answers []*QuizAnswer
	if err := r.db.
		Where("quiz_id = ?", quizID).
		Order("answered_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionService предоставляет операции над вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List возвращает страницу вопросов и total count до пагинации.
// page и perPage должны быть положительными, иначе ErrValidation.
func (s *QuestionService) List(page, perPage int, categoryID *uint) ([]entity.Question, int64, error) {
	if page < 1 {
		return nil, 0, fmt.Errorf("%w: page must be a positive integer", apperrors.ErrValidation)
	}
	if perPage < 1 {
		return nil, 0, fmt.Errorf("%w: per_page must be a positive integer", apperrors.ErrValidation)
	}

	offset := (page - 1) * perPage
	return s.questionRepo.List(perPage, offset, categoryID)
}

// Create валидирует и сохраняет новый вопрос.
// Все четыре поля обязательны и не могут быть "ложными" значениями; проверка
// выполняется до обращения к хранилищу. Существование категории не проверяется.
func (s *QuestionService) Create(question *entity.Question) error {
	if !question.IsComplete() {
		return fmt.Errorf("%w: question, answer, category and difficulty are required and must be non-empty", apperrors.ErrValidation)
	}
	return s.questionRepo.Create(question)
}

// Delete удаляет вопрос по ID. Несуществующий ID — ErrNotFound.
func (s *QuestionService) Delete(id uint) error {
	return s.questionRepo.Delete(id)
}

// Search возвращает вопросы, текст которых содержит term (без учета регистра).
// Пустой term дает пустой результат, а не все вопросы — намеренное поведение.
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	if term == "" {
		return []entity.Question{}, nil
	}
	return s.questionRepo.Search(term)
}

// All возвращает все вопросы (для экспорта)
func (s *QuestionService) All() ([]entity.Question, error) {
	return s.questionRepo.GetAll()
}

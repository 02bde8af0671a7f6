package service

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
)

// CategoryService предоставляет операции над категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	questionRepo repository.QuestionRepository
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	questionRepo repository.QuestionRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

// Map возвращает отображение id категории → её название.
// Клиенты индексируют по id, порядок не имеет значения.
func (s *CategoryService) Map() (map[uint]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result, nil
}

// QuestionsForCategory возвращает все вопросы категории вместе с самой категорией.
// Неизвестная категория — ErrNotFound (двухшаговая выборка вместо ленивой загрузки ORM).
func (s *CategoryService) QuestionsForCategory(categoryID uint) ([]entity.Question, *entity.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, nil, err
	}

	return questions, category, nil
}

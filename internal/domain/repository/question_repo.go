package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	CreateBatch(questions []entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	// List возвращает страницу вопросов (id DESC) и общее количество до пагинации.
	// categoryID == nil означает отсутствие фильтра по категории.
	List(limit, offset int, categoryID *uint) ([]entity.Question, int64, error)
	GetByCategory(categoryID uint) ([]entity.Question, error)
	// Search выполняет регистронезависимый поиск подстроки по тексту вопроса
	Search(term string) ([]entity.Question, error)
	// GetRandomExcluding возвращает случайный вопрос, id которого нет в excludeIDs.
	// categoryID == 0 означает "любая категория". (nil, nil) — кандидатов не осталось.
	GetRandomExcluding(excludeIDs []uint, categoryID uint) (*entity.Question, error)
	GetAll() ([]entity.Question, error)
	Delete(id uint) error
}

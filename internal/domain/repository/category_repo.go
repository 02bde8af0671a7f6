package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	GetAll() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}

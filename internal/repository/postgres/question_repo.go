package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос.
// Нарушение внешнего ключа questions.category транслируется в ErrUnprocessable:
// сервисный слой существование категории перед вставкой не проверяет.
func (r *QuestionRepo) Create(question *entity.Question) error {
	err := r.db.Create(question).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: category %d does not exist", apperrors.ErrUnprocessable, question.Category)
		}
		return err
	}
	return nil
}

// CreateBatch создает пакет вопросов
func (r *QuestionRepo) CreateBatch(questions []entity.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// List возвращает страницу вопросов (новые первыми) и total count до пагинации.
// Страница за пределами диапазона — пустой список с тем же total, не ошибка.
func (r *QuestionRepo) List(limit, offset int, categoryID *uint) ([]entity.Question, int64, error) {
	var questions []entity.Question
	var total int64

	query := r.db.Model(&entity.Question{})
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}

	return questions, total, nil
}

// GetByCategory возвращает все вопросы указанной категории
func (r *QuestionRepo) GetByCategory(categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Search выполняет регистронезависимый поиск подстроки по тексту вопроса
func (r *QuestionRepo) Search(term string) ([]entity.Question, error) {
	var questions []entity.Question
	pattern := "%" + term + "%"
	err := r.db.Where("question ILIKE ?", pattern).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// GetRandomExcluding возвращает равновероятно выбранный вопрос, исключая excludeIDs.
// categoryID == 0 означает выбор по всем категориям. Если кандидатов не осталось,
// возвращает (nil, nil) — исчерпанная викторина не является ошибкой.
func (r *QuestionRepo) GetRandomExcluding(excludeIDs []uint, categoryID uint) (*entity.Question, error) {
	var question entity.Question

	query := r.db
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}

	err := query.Order("RANDOM()").First(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// GetAll возвращает все вопросы (используется экспортом)
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete удаляет вопрос по ID одним атомарным запросом.
// RowsAffected == 0 означает, что вопроса не существует.
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: question #%d", apperrors.ErrNotFound, id)
	}
	return nil
}

// isForeignKeyViolation проверяет Postgres foreign key violation (23503) для pgconn и lib/pq драйверов
func isForeignKeyViolation(err error) bool {
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return true
	}
	return false
}

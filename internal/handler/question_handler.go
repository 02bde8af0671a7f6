package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает пагинированный список вопросов с опциональным
// фильтром по категории
// GET /questions?page=1&per_page=10&category_id=2
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid page"})
		return
	}

	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid per_page"})
		return
	}

	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category_id"})
			return
		}
		v := uint(id)
		categoryID = &v
	}

	questions, total, err := h.questionService.List(page, perPage, categoryID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.Map()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Название выбранной категории; null, если фильтр не задан или категория неизвестна
	var currentCategory *string
	if categoryID != nil {
		if label, ok := categories[*categoryID]; ok {
			currentCategory = &label
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewListQuestionResponse(questions),
		"total_questions":  total,
		"categories":       categories,
		"current_category": currentCategory,
	})
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Обязательность полей проверяет сервис (все четыре должны быть непустыми),
// поэтому binding-теги здесь не используются.
type CreateQuestionRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	question := entity.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}

	if err := h.questionService.Create(&question); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"question_id": question.ID,
	})
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.Delete(questionID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      questionID,
	})
}

// SearchQuestionsRequest представляет запрос на поиск вопросов
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// SearchQuestions выполняет поиск вопросов по подстроке текста.
// Пустой searchTerm дает пустой результат, а не все вопросы.
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	questions, err := h.questionService.Search(req.SearchTerm)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        dto.NewListQuestionResponse(questions),
		"total_questions":  len(questions),
		"current_category": nil, // Поиск не ограничен категорией
	})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/trivia-game-api/internal/handler/dto"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// QuizHandler обрабатывает запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryPayload представляет категорию в запросе викторины.
// ID — указатель, чтобы отличать отсутствующее поле от валидного sentinel-значения 0.
type QuizCategoryPayload struct {
	ID   *uint  `json:"id"`
	Type string `json:"type"`
}

// NextQuestionRequest представляет запрос следующего вопроса викторины.
// previous_questions обязателен, но может быть пустым; quiz_category обязателен
// и должен содержать id (0 = любая категория).
type NextQuestionRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryPayload `json:"quiz_category"`
}

// NextQuestion возвращает случайный еще не заданный вопрос или null,
// когда кандидатов не осталось (исчерпанная викторина — не ошибка)
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request data"})
		return
	}

	if req.PreviousQuestions == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "previous_questions and quiz_category are required"})
		return
	}

	question, err := h.quizService.NextQuestion(*req.PreviousQuestions, *req.QuizCategory.ID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"question": dto.NewQuestionResponse(question), // nil сериализуется в null
	})
}

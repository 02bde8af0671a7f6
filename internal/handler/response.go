package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// handleServiceError отображает ошибки сервисного слоя на HTTP статусы.
// Тело ошибки всегда содержит человекочитаемое поле message; внутренние
// детали хранилища клиенту не раскрываются.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperrors.ErrUnprocessable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
	default:
		log.Printf("ERROR: Internal server error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}

// NotFoundRoute обрабатывает запросы к несуществующим маршрутам
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource Not Found"})
}

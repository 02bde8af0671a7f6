package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

func TestQuizService_NextQuestion_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockQuestionRepository)
	expected := &entity.Question{
		ID:         7,
		Question:   "Who discovered penicillin?",
		Answer:     "Alexander Fleming",
		Category:   1,
		Difficulty: 3,
	}

	previousIDs := []uint{1, 3, 5}
	mockRepo.On("GetRandomExcluding", previousIDs, uint(1)).Return(expected, nil)

	quizService := NewQuizService(mockRepo)

	// Act
	question, err := quizService.NextQuestion(previousIDs, 1)

	// Assert
	require.NoError(t, err, "Выбор следующего вопроса должен быть успешным")
	assert.Equal(t, expected, question)
	mockRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_AnyCategory(t *testing.T) {
	// Arrange: categoryID == 0 — любая категория
	mockRepo := new(MockQuestionRepository)
	expected := &entity.Question{ID: 12, Question: "Q", Answer: "A", Category: 4, Difficulty: 1}

	mockRepo.On("GetRandomExcluding", []uint{}, uint(0)).Return(expected, nil)

	quizService := NewQuizService(mockRepo)

	// Act
	question, err := quizService.NextQuestion([]uint{}, 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, question)
	mockRepo.AssertExpectations(t)
}

func TestQuizService_NextQuestion_Exhausted(t *testing.T) {
	// Arrange: все вопросы категории уже заданы
	mockRepo := new(MockQuestionRepository)
	previousIDs := []uint{2, 4, 6}

	mockRepo.On("GetRandomExcluding", previousIDs, uint(2)).Return(nil, nil)

	quizService := NewQuizService(mockRepo)

	// Act
	question, err := quizService.NextQuestion(previousIDs, 2)

	// Assert: (nil, nil) — штатное завершение викторины, не ошибка
	require.NoError(t, err, "Исчерпание вопросов не является ошибкой")
	assert.Nil(t, question, "Вопрос должен быть nil, когда кандидатов не осталось")
	mockRepo.AssertExpectations(t)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsComplete_AllFieldsSet(t *testing.T) {
	// Arrange
	question := &Question{
		Question:   "What is the largest lake in Africa?",
		Answer:     "Lake Victoria",
		Category:   3,
		Difficulty: 2,
	}

	// Act & Assert
	assert.True(t, question.IsComplete(), "IsComplete должен вернуть true, когда все поля заполнены")
}

func TestQuestion_IsComplete_MissingFields(t *testing.T) {
	// Arrange
	testCases := []struct {
		name     string
		question Question
	}{
		{"пустой текст вопроса", Question{Answer: "A", Category: 1, Difficulty: 1}},
		{"пустой ответ", Question{Question: "Q", Category: 1, Difficulty: 1}},
		{"нулевая категория", Question{Question: "Q", Answer: "A", Difficulty: 1}},
		{"нулевая сложность", Question{Question: "Q", Answer: "A", Category: 1}},
		{"все поля пустые", Question{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, tc.question.IsComplete(), "IsComplete должен вернуть false при незаполненном поле")
		})
	}
}

func TestQuestion_TableName(t *testing.T) {
	question := Question{}
	assert.Equal(t, "questions", question.TableName(), "TableName должен возвращать 'questions'")
}

func TestCategory_TableName(t *testing.T) {
	category := Category{}
	assert.Equal(t, "categories", category.TableName(), "TableName должен возвращать 'categories'")
}

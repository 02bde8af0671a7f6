package service

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
)

// QuizService выбирает следующий вопрос викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает случайный вопрос, не входящий в previousIDs.
// categoryID == 0 — sentinel-значение "любая категория" (соглашение с клиентом).
// (nil, nil) означает, что кандидатов не осталось: викторина завершена штатно.
// Выбор равновероятен по отфильтрованному множеству; детерминизм не гарантируется.
func (s *QuizService) NextQuestion(previousIDs []uint, categoryID uint) (*entity.Question, error) {
	return s.questionRepo.GetRandomExcluding(previousIDs, categoryID)
}

package entity

// Question представляет вопрос викторины.
// JSON-теги формируют wire-формат клиента: { id, question, answer, difficulty, category }
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsComplete проверяет, что все обязательные поля заполнены непустыми значениями.
// Пустая строка, нулевая категория и нулевая сложность считаются отсутствующими.
func (q *Question) IsComplete() bool {
	return q.Question != "" && q.Answer != "" && q.Category != 0 && q.Difficulty != 0
}

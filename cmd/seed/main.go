package main

import (
	"log"
	"os"

	"github.com/yourusername/trivia-game-api/internal/config"
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	pgRepo "github.com/yourusername/trivia-game-api/internal/repository/postgres"
	"github.com/yourusername/trivia-game-api/pkg/database"
)

// Наполняет базу стартовым набором вопросов для локальной разработки и демо.
// Повторный запуск безопасен: если вопросы уже есть, сидирование пропускается.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	questionRepo := pgRepo.NewQuestionRepo(db)

	existing, err := questionRepo.GetAll()
	if err != nil {
		log.Fatalf("Failed to check existing questions: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("База уже содержит %d вопросов, сидирование пропущено.", len(existing))
		return
	}

	questions := fixtureQuestions()
	if err := questionRepo.CreateBatch(questions); err != nil {
		log.Fatalf("Failed to seed questions: %v", err)
	}

	log.Printf("Успешно добавлено %d вопросов.", len(questions))
}

// fixtureQuestions возвращает стартовый набор вопросов.
// Категории: 1=Science, 2=Art, 3=Geography, 4=History, 5=Entertainment, 6=Sports.
func fixtureQuestions() []entity.Question {
	return []entity.Question{
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
		{Question: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: 5, Difficulty: 4},
		{Question: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: 6, Difficulty: 4},
		{Question: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: 4, Difficulty: 2},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: 3, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: 3, Difficulty: 3},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: 2, Difficulty: 4},
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: 1, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: 1, Difficulty: 4},
		{Question: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: 4, Difficulty: 4},
	}
}

package cli

import "trivia-session-service/internal/domain"

// sampleBank provides a small built-in question set; swap the loader for a
// Postgres-backed one by configuring postgres.url.
func sampleBank() domain.Bank {
	return domain.Bank{
		Version: "builtin-1",
		Questions: []domain.Question{
			{
				ID: "e1", Category: "science", Difficulty: domain.DifficultyEasy,
				Text:        "What planet is known as the Red Planet?",
				Options:     []string{"Venus", "Mars", "Jupiter", "Mercury"},
				AnswerIndex: 1,
				Explanation: "Iron oxide on the surface gives Mars its reddish color.",
			},
			{
				ID: "e2", Category: "geography", Difficulty: domain.DifficultyEasy,
				Text:        "Which is the largest ocean on Earth?",
				Options:     []string{"Atlantic", "Indian", "Pacific", "Arctic"},
				AnswerIndex: 2,
			},
			{
				ID: "e3", Category: "science", Difficulty: domain.DifficultyEasy,
				Text:        "How many legs does a spider have?",
				Options:     []string{"Six", "Eight", "Ten", "Twelve"},
				AnswerIndex: 1,
			},
			{
				ID: "e4", Category: "history", Difficulty: domain.DifficultyEasy,
				Text:        "In which country were the first modern Olympic Games held?",
				Options:     []string{"France", "Greece", "Italy", "England"},
				AnswerIndex: 1,
				Explanation: "Athens hosted the first modern Games in 1896.",
			},
			{
				ID: "m1", Category: "science", Difficulty: domain.DifficultyMedium,
				Text:        "What is the chemical symbol for gold?",
				Options:     []string{"Go", "Gd", "Au", "Ag"},
				AnswerIndex: 2,
				Explanation: "Au comes from the Latin word aurum.",
			},
			{
				ID: "m2", Category: "geography", Difficulty: domain.DifficultyMedium,
				Text:        "Which river is the longest in the world?",
				Options:     []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
				AnswerIndex: 1,
			},
			{
				ID: "m3", Category: "history", Difficulty: domain.DifficultyMedium,
				Text:        "Who painted the ceiling of the Sistine Chapel?",
				Options:     []string{"Leonardo da Vinci", "Raphael", "Michelangelo", "Donatello"},
				AnswerIndex: 2,
			},
			{
				ID: "m4", Category: "science", Difficulty: domain.DifficultyMedium,
				Text:        "What gas do plants absorb from the atmosphere during photosynthesis?",
				Options:     []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"},
				AnswerIndex: 2,
			},
			{
				ID: "h1", Category: "science", Difficulty: domain.DifficultyHard,
				Text:        "What is the half-life of carbon-14, approximately?",
				Options:     []string{"1,200 years", "5,700 years", "12,000 years", "57,000 years"},
				AnswerIndex: 1,
				Explanation: "Carbon-14 decays with a half-life of about 5,730 years.",
			},
			{
				ID: "h2", Category: "geography", Difficulty: domain.DifficultyHard,
				Text:        "Which country has the most time zones, including overseas territories?",
				Options:     []string{"Russia", "United States", "France", "China"},
				AnswerIndex: 2,
				Explanation: "France spans twelve time zones thanks to its overseas territories.",
			},
			{
				ID: "h3", Category: "history", Difficulty: domain.DifficultyHard,
				Text:        "The Treaty of Tordesillas divided newly discovered lands between which two powers?",
				Options:     []string{"Spain and Portugal", "England and France", "Spain and England", "Portugal and the Netherlands"},
				AnswerIndex: 0,
			},
			{
				ID: "h4", Category: "science", Difficulty: domain.DifficultyHard,
				Text:        "Which particle was confirmed at CERN in 2012?",
				Options:     []string{"Graviton", "Higgs boson", "Tachyon", "Magnetic monopole"},
				AnswerIndex: 1,
			},
		},
	}
}

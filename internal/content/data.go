package content

import "amavidya/internal/models"

var builtinVideos = []models.Video{
	{
		ID:          "photosynthesis",
		Title:       "How Plants Make Food",
		Subject:     models.SubjectScience,
		Duration:    "5:30",
		Difficulty:  "Easy",
		Icon:        "🌱",
		Description: "Learn about the amazing process of photosynthesis and how plants convert sunlight into energy.",
		VideoURL:    "/media/videos/photosynthesis.mp4",
	},
	{
		ID:          "geometry",
		Title:       "Fun with Shapes",
		Subject:     models.SubjectMathematics,
		Duration:    "7:15",
		Difficulty:  "Medium",
		Icon:        "📐",
		Description: "Explore different geometric shapes and learn about their properties, angles, and relationships.",
		VideoURL:    "/media/videos/geometry.mp4",
	},
	{
		ID:          "circuits",
		Title:       "Electric Circuits",
		Subject:     models.SubjectTechnology,
		Duration:    "6:45",
		Difficulty:  "Medium",
		Icon:        "⚡",
		Description: "Understand how electric circuits work and learn about current, voltage, and resistance.",
		VideoURL:    "/media/videos/circuits.mp4",
	},
	{
		ID:          "bridges",
		Title:       "Building Bridges",
		Subject:     models.SubjectEngineering,
		Duration:    "8:20",
		Difficulty:  "Hard",
		Icon:        "🌉",
		Description: "Discover the engineering principles behind bridge construction and different bridge designs.",
		VideoURL:    "/media/videos/bridges.mp4",
	},
}

var builtinGames = []models.Game{
	{
		ID:         "math-quiz",
		Title:      "Math Quiz Challenge",
		Subject:    models.SubjectMathematics,
		Difficulty: "Easy",
		Icon:       "🧮",
		Questions: []models.Question{
			{
				Text:        "What is 15 + 27?",
				Options:     []string{"40", "42", "44", "46"},
				Correct:     1,
				Explanation: "15 + 27 = 42. When adding, align the numbers and add each column from right to left.",
			},
			{
				Text:        "What is the area of a rectangle with length 8 and width 5?",
				Options:     []string{"13", "26", "40", "45"},
				Correct:     2,
				Explanation: "Area of rectangle = length × width = 8 × 5 = 40 square units.",
			},
			{
				Text:        "Which number is prime?",
				Options:     []string{"15", "21", "17", "25"},
				Correct:     2,
				Explanation: "17 is prime because it can only be divided by 1 and itself without remainder.",
			},
			{
				Text:        "What is 144 ÷ 12?",
				Options:     []string{"11", "12", "13", "14"},
				Correct:     1,
				Explanation: "144 ÷ 12 = 12. Division is the opposite of multiplication: 12 × 12 = 144.",
			},
			{
				Text:        "What is 25% of 80?",
				Options:     []string{"15", "20", "25", "30"},
				Correct:     1,
				Explanation: "25% of 80 = 0.25 × 80 = 20. You can also think of it as 80 ÷ 4 = 20.",
			},
		},
	},
	{
		ID:         "science-lab",
		Title:      "Virtual Science Lab",
		Subject:    models.SubjectScience,
		Difficulty: "Medium",
		Icon:       "🧪",
		Questions: []models.Question{
			{
				Text:        "What gas do plants absorb during photosynthesis?",
				Options:     []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Hydrogen"},
				Correct:     1,
				Explanation: "Plants absorb carbon dioxide from the air and use it with water and sunlight to make glucose.",
			},
			{
				Text:        "What is the chemical symbol for water?",
				Options:     []string{"H2O", "CO2", "NaCl", "O2"},
				Correct:     0,
				Explanation: "H2O represents water - 2 hydrogen atoms bonded to 1 oxygen atom.",
			},
			{
				Text:        "Which planet is closest to the Sun?",
				Options:     []string{"Venus", "Earth", "Mercury", "Mars"},
				Correct:     2,
				Explanation: "Mercury is the closest planet to the Sun, with extremely hot days and cold nights.",
			},
			{
				Text:        "What type of energy does a moving car have?",
				Options:     []string{"Potential", "Kinetic", "Chemical", "Nuclear"},
				Correct:     1,
				Explanation: "Kinetic energy is the energy of motion. Moving objects have kinetic energy.",
			},
			{
				Text:        "What is the hardest natural substance?",
				Options:     []string{"Gold", "Iron", "Diamond", "Quartz"},
				Correct:     2,
				Explanation: "Diamond is the hardest natural substance, made of carbon atoms arranged in a crystal structure.",
			},
		},
	},
	{
		ID:         "pattern-game",
		Title:      "Pattern Master",
		Subject:    models.SubjectMathematics,
		Difficulty: "Hard",
		Icon:       "🎨",
		Questions: []models.Question{
			{
				Text:        "What comes next in the sequence: 2, 4, 8, 16, ?",
				Options:     []string{"24", "32", "30", "20"},
				Correct:     1,
				Explanation: "Each number is doubled: 2×2=4, 4×2=8, 8×2=16, 16×2=32.",
			},
			{
				Text:        "Complete the pattern: 1, 1, 2, 3, 5, 8, ?",
				Options:     []string{"11", "13", "15", "10"},
				Correct:     1,
				Explanation: "This is the Fibonacci sequence where each number is the sum of the two preceding ones: 5+8=13.",
			},
			{
				Text:        "What is the next number: 100, 81, 64, 49, ?",
				Options:     []string{"36", "40", "25", "30"},
				Correct:     0,
				Explanation: "These are perfect squares in reverse: 10², 9², 8², 7², 6² = 36.",
			},
			{
				Text:        "Complete: 3, 6, 12, 24, ?",
				Options:     []string{"36", "48", "42", "30"},
				Correct:     1,
				Explanation: "Each number is doubled: 3×2=6, 6×2=12, 12×2=24, 24×2=48.",
			},
		},
	},
	{
		ID:         "coding-game",
		Title:      "Code Builder",
		Subject:    models.SubjectTechnology,
		Difficulty: "Medium",
		Icon:       "💻",
		Questions: []models.Question{
			{
				Text:        "What does HTML stand for?",
				Options:     []string{"Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlink Text Management Language"},
				Correct:     0,
				Explanation: "HTML stands for Hyper Text Markup Language, used to create web pages.",
			},
			{
				Text:        "Which symbol is used for comments in Python?",
				Options:     []string{"//", "/*", "#", "<!--"},
				Correct:     2,
				Explanation: "In Python, the # symbol is used to create single-line comments.",
			},
			{
				Text:        "What is a variable in programming?",
				Options:     []string{"A fixed number", "A storage location with a name", "A type of loop", "A programming language"},
				Correct:     1,
				Explanation: "A variable is a storage location with an associated name that contains data.",
			},
			{
				Text:        "What does CSS control in web development?",
				Options:     []string{"Database connections", "Server logic", "Visual styling", "User authentication"},
				Correct:     2,
				Explanation: "CSS (Cascading Style Sheets) controls the visual styling and layout of web pages.",
			},
		},
	},
}

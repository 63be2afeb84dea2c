package achievements

// DefaultCatalog is the built-in achievement set. Content data: ids are
// stable and referenced by per-user unlock state, so entries may be
// added but never renamed.
func DefaultCatalog() []Achievement {
	return []Achievement{
		{
			ID: "first-steps", Name: "First Steps",
			Description: "Learn your first idiom.",
			Icon:        "seedling", Type: TypeLearning, Rarity: RarityCommon, XPReward: 10,
			Requirement: Requirement{IdiomsLearned: 1},
		},
		{
			ID: "word-collector", Name: "Word Collector",
			Description: "Learn 25 idioms.",
			Icon:        "books", Type: TypeLearning, Rarity: RarityCommon, XPReward: 50,
			Requirement: Requirement{IdiomsLearned: 25},
		},
		{
			ID: "idiom-scholar", Name: "Idiom Scholar",
			Description: "Learn 100 idioms.",
			Icon:        "scroll", Type: TypeLearning, Rarity: RarityRare, XPReward: 200,
			Requirement: Requirement{IdiomsLearned: 100},
		},
		{
			ID: "first-quiz", Name: "Quiz Rookie",
			Description: "Complete your first quiz.",
			Icon:        "pencil", Type: TypeQuiz, Rarity: RarityCommon, XPReward: 10,
			Requirement: Requirement{Actions: []string{"first-quiz"}},
		},
		{
			ID: "sharpshooter", Name: "Sharpshooter",
			Description: "Score 90% or better on a quiz.",
			Icon:        "target", Type: TypeQuiz, Rarity: RarityCommon, XPReward: 30,
			Requirement: Requirement{QuizAccuracy: 90},
		},
		{
			ID: "perfectionist", Name: "Perfectionist",
			Description: "Finish a quiz with a perfect score.",
			Icon:        "star", Type: TypeQuiz, Rarity: RarityRare, XPReward: 75,
			Requirement: Requirement{Actions: []string{"perfect-score"}},
		},
		{
			ID: "warming-up", Name: "Warming Up",
			Description: "Keep a 3-day streak.",
			Icon:        "flame", Type: TypeStreak, Rarity: RarityCommon, XPReward: 20,
			Requirement: Requirement{StreakDays: 3},
		},
		{
			ID: "committed", Name: "Committed",
			Description: "Keep a 7-day streak.",
			Icon:        "fire", Type: TypeStreak, Rarity: RarityRare, XPReward: 60,
			Requirement: Requirement{StreakDays: 7},
		},
		{
			ID: "unstoppable", Name: "Unstoppable",
			Description: "Keep a 30-day streak.",
			Icon:        "comet", Type: TypeStreak, Rarity: RarityLegendary, XPReward: 300,
			Requirement: Requirement{StreakDays: 30},
		},
		{
			ID: "rising-star", Name: "Rising Star",
			Description: "Earn 1,000 XP.",
			Icon:        "sparkles", Type: TypePractice, Rarity: RarityCommon, XPReward: 40,
			Requirement: Requirement{TotalXP: 1000},
		},
		{
			ID: "seasoned-learner", Name: "Seasoned Learner",
			Description: "Earn 10,000 XP.",
			Icon:        "trophy", Type: TypePractice, Rarity: RarityRare, XPReward: 150,
			Requirement: Requirement{TotalXP: 10000},
		},
		{
			ID: "night-owl", Name: "Night Owl",
			Description: "Finish a quiz between midnight and 5 AM.",
			Icon:        "owl", Type: TypeSpecial, Rarity: RarityRare, XPReward: 25, Hidden: true,
			Requirement: Requirement{Actions: []string{"night-owl"}},
		},
		{
			ID: "well-rounded", Name: "Well Rounded",
			Description: "Learn 50 idioms while holding a week-long streak.",
			Icon:        "medal", Type: TypeSpecial, Rarity: RarityLegendary, XPReward: 250,
			Requirement: Requirement{IdiomsLearned: 50, StreakDays: 7},
		},
	}
}

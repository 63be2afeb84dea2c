package idiom

// builtinIdioms is the starter content shipped with the binary so the
// app is usable before any content pack is installed.
var builtinIdioms = []Idiom{
	{
		ID:             "break-the-ice",
		Text:           "break the ice",
		Meaning:        "to make people feel more comfortable in a social situation",
		LiteralMeaning: "to shatter frozen water",
		Categories:     []Category{CategoryRelationships, CategoryEmotions},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "He told a joke to break the ice at the meeting.", Context: "a tense first meeting"},
		},
		AudioFile:     "audio/break-the-ice.mp3",
		RelatedIdioms: []string{"hit-it-off"},
	},
	{
		ID:             "hit-it-off",
		Text:           "hit it off",
		Meaning:        "to immediately get along well with someone",
		LiteralMeaning: "to strike something away",
		Categories:     []Category{CategoryRelationships},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "They hit it off as soon as they met at the conference.", Context: "new acquaintances"},
		},
		AudioFile: "audio/hit-it-off.mp3",
	},
	{
		ID:             "under-the-weather",
		Text:           "under the weather",
		Meaning:        "feeling slightly ill",
		LiteralMeaning: "standing beneath weather",
		Categories:     []Category{CategoryWeather, CategoryBody},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "I'm feeling a bit under the weather, so I'll stay home.", Context: "calling in sick"},
		},
		AudioFile: "audio/under-the-weather.mp3",
	},
	{
		ID:             "cost-an-arm-and-a-leg",
		Text:           "cost an arm and a leg",
		Meaning:        "to be very expensive",
		LiteralMeaning: "to require limbs as payment",
		Categories:     []Category{CategoryMoney, CategoryBody},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "That new car must have cost an arm and a leg.", Context: "talking about prices"},
		},
		AudioFile: "audio/cost-an-arm-and-a-leg.mp3",
	},
	{
		ID:             "let-the-cat-out-of-the-bag",
		Text:           "let the cat out of the bag",
		Meaning:        "to reveal a secret by accident",
		LiteralMeaning: "to release a cat from a sack",
		Categories:     []Category{CategoryAnimals},
		Difficulty:     DifficultyIntermediate,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "She let the cat out of the bag about the surprise party.", Context: "spoiled surprise"},
		},
		AudioFile: "audio/let-the-cat-out-of-the-bag.mp3",
	},
	{
		ID:             "once-in-a-blue-moon",
		Text:           "once in a blue moon",
		Meaning:        "very rarely",
		LiteralMeaning: "during a blue-colored moon",
		Categories:     []Category{CategoryColors, CategoryTime},
		Difficulty:     DifficultyIntermediate,
		Frequency:      FrequencyModerate,
		Examples: []Example{
			{Sentence: "We only eat out once in a blue moon.", Context: "describing rare events"},
		},
		AudioFile: "audio/once-in-a-blue-moon.mp3",
	},
	{
		ID:             "bite-the-bullet",
		Text:           "bite the bullet",
		Meaning:        "to face a difficult situation with courage",
		LiteralMeaning: "to clench a bullet between your teeth",
		Categories:     []Category{CategoryEmotions},
		Difficulty:     DifficultyIntermediate,
		Frequency:      FrequencyModerate,
		Examples: []Example{
			{Sentence: "I decided to bite the bullet and ask for a raise.", Context: "doing something unpleasant"},
		},
		AudioFile: "audio/bite-the-bullet.mp3",
	},
	{
		ID:             "spill-the-beans",
		Text:           "spill the beans",
		Meaning:        "to reveal secret information",
		LiteralMeaning: "to tip over a container of beans",
		Categories:     []Category{CategoryFood},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "Come on, spill the beans about your new job!", Context: "asking for news"},
		},
		AudioFile: "audio/spill-the-beans.mp3",
	},
	{
		ID:             "burn-the-midnight-oil",
		Text:           "burn the midnight oil",
		Meaning:        "to work late into the night",
		LiteralMeaning: "to keep an oil lamp lit past midnight",
		Categories:     []Category{CategoryTime, CategoryBusiness},
		Difficulty:     DifficultyIntermediate,
		Frequency:      FrequencyModerate,
		Examples: []Example{
			{Sentence: "She had to burn the midnight oil to finish the report.", Context: "working on a deadline"},
		},
		AudioFile: "audio/burn-the-midnight-oil.mp3",
	},
	{
		ID:             "ballpark-figure",
		Text:           "ballpark figure",
		Meaning:        "a rough numerical estimate",
		LiteralMeaning: "a number from a baseball stadium",
		Categories:     []Category{CategoryBusiness, CategoryMoney},
		Difficulty:     DifficultyAdvanced,
		Frequency:      FrequencyModerate,
		Examples: []Example{
			{Sentence: "Can you give me a ballpark figure for the renovation?", Context: "negotiating a budget"},
		},
		AudioFile: "audio/ballpark-figure.mp3",
	},
	{
		ID:             "throw-in-the-towel",
		Text:           "throw in the towel",
		Meaning:        "to give up on something",
		LiteralMeaning: "to toss a towel into a boxing ring",
		Categories:     []Category{CategoryEmotions, CategoryBusiness},
		Difficulty:     DifficultyAdvanced,
		Frequency:      FrequencyRare,
		Examples: []Example{
			{Sentence: "After three failed attempts, he threw in the towel.", Context: "abandoning an effort"},
		},
		AudioFile: "audio/throw-in-the-towel.mp3",
	},
	{
		ID:             "raining-cats-and-dogs",
		Text:           "raining cats and dogs",
		Meaning:        "raining very heavily",
		LiteralMeaning: "animals falling from the sky",
		Categories:     []Category{CategoryWeather, CategoryAnimals},
		Difficulty:     DifficultyBeginner,
		Frequency:      FrequencyCommon,
		Examples: []Example{
			{Sentence: "Take an umbrella, it's raining cats and dogs out there.", Context: "a heavy storm"},
		},
		AudioFile: "audio/raining-cats-and-dogs.mp3",
	},
}

// BuiltinCatalog returns a catalog over the embedded starter idioms.
func BuiltinCatalog() *Catalog {
	c, err := NewCatalog(builtinIdioms)
	if err != nil {
		panic("builtin idiom set is invalid: " + err.Error())
	}
	return c
}

package idiom

// Category classifies an idiom by topic.
type Category string

const (
	CategoryAnimals       Category = "animals"
	CategoryBody          Category = "body"
	CategoryColors        Category = "colors"
	CategoryWeather       Category = "weather"
	CategoryBusiness      Category = "business"
	CategoryEmotions      Category = "emotions"
	CategoryFood          Category = "food"
	CategoryTime          Category = "time"
	CategoryMoney         Category = "money"
	CategoryRelationships Category = "relationships"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAnimals, CategoryBody, CategoryColors, CategoryWeather,
		CategoryBusiness, CategoryEmotions, CategoryFood, CategoryTime,
		CategoryMoney, CategoryRelationships,
	}
}

// Difficulty is the learning difficulty of an idiom.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns the difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Frequency describes how commonly the idiom appears in everyday English.
type Frequency string

const (
	FrequencyCommon   Frequency = "common"
	FrequencyModerate Frequency = "moderate"
	FrequencyRare     Frequency = "rare"
)

// Example is a usage example for an idiom.
type Example struct {
	Sentence    string `json:"sentence"`
	Context     string `json:"context"`
	Explanation string `json:"explanation,omitempty"`
}

// Idiom is a single English idiom. Reference data: immutable once loaded.
type Idiom struct {
	ID             string     `json:"id"`
	Text           string     `json:"idiom"`
	Meaning        string     `json:"meaning"`
	LiteralMeaning string     `json:"literalMeaning"`
	Categories     []Category `json:"categories"`
	Difficulty     Difficulty `json:"difficulty"`
	Frequency      Frequency  `json:"frequency"`
	Examples       []Example  `json:"examples"`
	AudioFile      string     `json:"audioFile,omitempty"`
	RelatedIdioms  []string   `json:"relatedIdioms,omitempty"`
	Origin         string     `json:"origin,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
}

// InCategory reports whether the idiom belongs to the given category.
func (i Idiom) InCategory(c Category) bool {
	for _, cat := range i.Categories {
		if cat == c {
			return true
		}
	}
	return false
}

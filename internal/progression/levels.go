package progression

// LevelTitle names a level band for display by callers.
type LevelTitle struct {
	Level int    `json:"level" yaml:"level"`
	Title string `json:"title" yaml:"title"`
}

// Curve is the level progression table. Thresholds[k] is the cumulative
// XP required to reach level k+2 (level 1 starts at 0 XP). The curve is
// configuration: tune the table, never the arithmetic around it.
type Curve struct {
	Thresholds []int        `json:"thresholds" yaml:"thresholds"`
	Titles     []LevelTitle `json:"titles,omitempty" yaml:"titles,omitempty"`
}

// defaultLevels is the depth of the generated default curve.
const defaultLevels = 60

// DefaultCurve returns a geometrically widening curve: each level costs
// 100 XP more than the previous one (level 2 at 100, level 3 at 300,
// level 4 at 600, ...).
func DefaultCurve() Curve {
	thresholds := make([]int, 0, defaultLevels-1)
	cum := 0
	for n := 1; n < defaultLevels; n++ {
		cum += 100 * n
		thresholds = append(thresholds, cum)
	}
	return Curve{
		Thresholds: thresholds,
		Titles: []LevelTitle{
			{Level: 1, Title: "Newcomer"},
			{Level: 5, Title: "Phrase Finder"},
			{Level: 10, Title: "Idiom Apprentice"},
			{Level: 20, Title: "Expression Expert"},
			{Level: 35, Title: "Figure of Speech"},
			{Level: 50, Title: "Idiom Master"},
		},
	}
}

// LevelFor returns the level for a cumulative XP total. Pure and
// monotonic in xp.
func (c Curve) LevelFor(xp int) int {
	level := 1
	for _, t := range c.Thresholds {
		if xp < t {
			break
		}
		level++
	}
	return level
}

// XPToNext returns the XP still needed to reach the next level, or 0 at
// the top of the curve.
func (c Curve) XPToNext(xp int) int {
	for _, t := range c.Thresholds {
		if xp < t {
			return t - xp
		}
	}
	return 0
}

// TitleFor returns the display title for a level: the highest banded
// title at or below it.
func (c Curve) TitleFor(level int) string {
	title := ""
	for _, lt := range c.Titles {
		if level >= lt.Level {
			title = lt.Title
		}
	}
	return title
}

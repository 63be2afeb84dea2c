package quiz

// Grade is a letter grade for a quiz percentage.
type Grade string

const (
	GradeAPlus Grade = "A+"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// GradeBand maps an inclusive lower percentage bound to a grade.
type GradeBand struct {
	Min   int
	Grade Grade
}

// DefaultGradeBands returns the standard grade table, highest bound
// first. The table is policy, not arithmetic; callers may substitute a
// tuned table.
func DefaultGradeBands() []GradeBand {
	return []GradeBand{
		{Min: 97, Grade: GradeAPlus},
		{Min: 93, Grade: GradeA},
		{Min: 89, Grade: GradeBPlus},
		{Min: 83, Grade: GradeB},
		{Min: 77, Grade: GradeCPlus},
		{Min: 70, Grade: GradeC},
		{Min: 60, Grade: GradeD},
	}
}

// GradeFor resolves a percentage against a band table. Percentages below
// every band get an F.
func GradeFor(percentage int, bands []GradeBand) Grade {
	for _, b := range bands {
		if percentage >= b.Min {
			return b.Grade
		}
	}
	return GradeF
}

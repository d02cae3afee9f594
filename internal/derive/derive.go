// Package derive computes the survey fields that are calculated from other
// answers rather than entered directly.
package derive

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/careerform/internal/form"
)

// Grades holds the five optional grade inputs. Percentages are on a 0-100
// scale, CGPAs on a 0-10 scale; zero means absent.
type Grades struct {
	Class10  float64
	Class12  float64
	UGCGPA   float64
	GradCGPA float64
	PGCGPA   float64
}

// minScores is the number of positive scores needed for a consistency value.
const minScores = 2

// AcademicConsistency scores how even the learner's grades are across levels.
// The result is 1 - stddev/mean over the normalized positive scores, clamped
// to [0, 1] and rounded to two decimals. ok is false when fewer than two
// scores are available or their mean is zero.
func AcademicConsistency(g Grades) (score float64, ok bool) {
	normalized := []float64{g.Class10 / 100, g.Class12 / 100}
	for _, cgpa := range []float64{g.UGCGPA, g.GradCGPA, g.PGCGPA} {
		if cgpa > 0 {
			normalized = append(normalized, cgpa/10)
		}
	}

	var scores []float64
	for _, s := range normalized {
		if s > 0 {
			scores = append(scores, s)
		}
	}
	if len(scores) < minScores {
		return 0, false
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	mean := sum / float64(len(scores))
	if mean == 0 {
		return 0, false
	}

	var variance float64
	for _, s := range scores {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(scores))
	stdDev := math.Sqrt(variance)

	c := 1 - stdDev/mean
	c = math.Max(0, math.Min(1, c))
	return math.Round(c*100) / 100, true
}

// SkillEmbedding joins the selected technical skills followed by the soft
// skills into a human-readable list.
func SkillEmbedding(technical, soft []string) string {
	all := make([]string, 0, len(technical)+len(soft))
	all = append(all, technical...)
	all = append(all, soft...)
	return strings.Join(all, ", ")
}

// GradesFrom reads the grade fields from reg. Unparsable values count as absent.
func GradesFrom(reg form.Registry) Grades {
	return Grades{
		Class10:  form.ParseFloat(reg.Value(form.Class10Percentage)),
		Class12:  form.ParseFloat(reg.Value(form.Class12Percentage)),
		UGCGPA:   form.ParseFloat(reg.Value(form.UGCGPA)),
		GradCGPA: form.ParseFloat(reg.Value(form.GradCGPA)),
		PGCGPA:   form.ParseFloat(reg.Value(form.PGCGPA)),
	}
}

// Apply recomputes both derived fields and writes them into reg.
func Apply(reg form.Registry) {
	if c, ok := AcademicConsistency(GradesFrom(reg)); ok {
		reg.SetValue(form.AcademicConsistency, FormatConsistency(c))
	} else {
		reg.SetValue(form.AcademicConsistency, "")
	}
	reg.SetValue(form.SkillEmbedding, SkillEmbedding(
		reg.Checked(form.TechnicalSkills),
		reg.Checked(form.SoftSkills),
	))
}

// FormatConsistency renders a consistency score the way it is stored.
func FormatConsistency(c float64) string {
	return strconv.FormatFloat(c, 'f', 2, 64)
}

// Affects reports whether editing f can change a derived field.
func Affects(f form.Field) bool {
	switch f {
	case form.Class10Percentage, form.Class12Percentage,
		form.UGCGPA, form.GradCGPA, form.PGCGPA,
		form.TechnicalSkills, form.SoftSkills:
		return true
	}
	return false
}

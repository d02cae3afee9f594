package derive

import (
	"math"
	"testing"

	"github.com/abhisek/careerform/internal/form"
)

func TestAcademicConsistency(t *testing.T) {
	tests := []struct {
		name   string
		grades Grades
		want   float64
		wantOK bool
	}{
		{"two percentages", Grades{Class10: 80, Class12: 90}, 0.94, true},
		{"identical scores", Grades{Class10: 70, Class12: 70, UGCGPA: 7}, 1, true},
		{"all five", Grades{Class10: 92, Class12: 85, UGCGPA: 8.1, GradCGPA: 7.6, PGCGPA: 9}, 0.93, true},
		{"wildly uneven clamps at zero", Grades{Class10: 1, Class12: 100, UGCGPA: 10, GradCGPA: 0.1, PGCGPA: 0.1}, 0, true},
		{"single score", Grades{Class10: 80}, 0, false},
		{"cgpa only one", Grades{UGCGPA: 8}, 0, false},
		{"nothing", Grades{}, 0, false},
		{"negatives ignored", Grades{Class10: -50, Class12: 90}, 0, false},
		{"cgpa pair", Grades{UGCGPA: 8, PGCGPA: 8}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AcademicConsistency(tt.grades)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("consistency = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAcademicConsistencyMatchesFormula(t *testing.T) {
	g := Grades{Class10: 80, Class12: 90}
	mean := 0.85
	sd := 0.05
	want := math.Round((1-sd/mean)*100) / 100

	got, ok := AcademicConsistency(g)
	if !ok || got != want {
		t.Errorf("AcademicConsistency = %v (%v), want %v", got, ok, want)
	}
}

func TestAcademicConsistencyAlwaysInRange(t *testing.T) {
	values := []float64{0, 0.5, 3, 7.2, 10, 35, 60, 99.9, 100}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				g := Grades{Class10: a, Class12: b, UGCGPA: c / 10}
				got, ok := AcademicConsistency(g)
				if !ok {
					continue
				}
				if got < 0 || got > 1 {
					t.Fatalf("AcademicConsistency(%+v) = %v, out of [0,1]", g, got)
				}
			}
		}
	}
}

func TestSkillEmbedding(t *testing.T) {
	tests := []struct {
		name      string
		technical []string
		soft      []string
		want      string
	}{
		{"one each", []string{"Python"}, []string{"Communication"}, "Python, Communication"},
		{"technical first", []string{"Go", "SQL"}, []string{"Teamwork"}, "Go, SQL, Teamwork"},
		{"soft only", nil, []string{"Leadership"}, "Leadership"},
		{"empty", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkillEmbedding(tt.technical, tt.soft)
			if got != tt.want {
				t.Errorf("SkillEmbedding = %q, want %q", got, tt.want)
			}
			if again := SkillEmbedding(tt.technical, tt.soft); again != got {
				t.Errorf("SkillEmbedding not idempotent: %q then %q", got, again)
			}
		})
	}
}

func TestApply(t *testing.T) {
	reg := form.NewValues()
	reg.SetValue(form.Class10Percentage, "80")
	reg.SetValue(form.Class12Percentage, "90")
	reg.SetChecked(form.TechnicalSkills, []string{"Python"})
	reg.SetChecked(form.SoftSkills, []string{"Communication"})

	Apply(reg)

	if got := reg.Value(form.AcademicConsistency); got != "0.94" {
		t.Errorf("academic_consistency = %q, want %q", got, "0.94")
	}
	if got := reg.Value(form.SkillEmbedding); got != "Python, Communication" {
		t.Errorf("skill_embedding = %q", got)
	}

	reg.SetValue(form.Class12Percentage, "")
	Apply(reg)
	if got := reg.Value(form.AcademicConsistency); got != "" {
		t.Errorf("academic_consistency after clearing = %q, want empty", got)
	}
}

func TestGradesFromIgnoresGarbage(t *testing.T) {
	reg := form.NewValues()
	reg.SetValue(form.Class10Percentage, "eighty")
	reg.SetValue(form.UGCGPA, " 7.5 ")

	g := GradesFrom(reg)
	if g.Class10 != 0 {
		t.Errorf("Class10 = %v, want 0", g.Class10)
	}
	if g.UGCGPA != 7.5 {
		t.Errorf("UGCGPA = %v, want 7.5", g.UGCGPA)
	}
}

func TestAffects(t *testing.T) {
	if !Affects(form.UGCGPA) || !Affects(form.SoftSkills) {
		t.Error("grade and skill fields should affect derived values")
	}
	if Affects(form.Age) {
		t.Error("age should not affect derived values")
	}
}

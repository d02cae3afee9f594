// Package record assembles the payload submitted at the end of the survey.
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/careerform/internal/derive"
	"github.com/abhisek/careerform/internal/form"
)

// TimestampFormat is ISO-8601 in UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// FormRecord is the canonical submission payload.
type FormRecord struct {
	UserID    string `json:"user_id"`
	Timestamp string `json:"timestamp"`

	Age       int      `json:"age"`
	Gender    string   `json:"gender"`
	Location  string   `json:"location"`
	Languages []string `json:"languages"`

	Class10Percentage     float64  `json:"class10_percentage"`
	Class12Percentage     float64  `json:"class12_percentage"`
	Class12Stream         string   `json:"class12_stream"`
	UGMajor               string   `json:"ug_major"`
	UGCGPA                float64  `json:"ug_cgpa"`
	GradMajor             string   `json:"grad_major"`
	GradCGPA              float64  `json:"grad_cgpa"`
	PGMajor               string   `json:"pg_major"`
	PGCGPA                float64  `json:"pg_cgpa"`
	HighestEducation      string   `json:"highest_education"`
	StandardizedTestScore float64  `json:"standardized_test_score"`
	AcademicConsistency   *float64 `json:"academic_consistency"`

	TechnicalSkills      []string `json:"technical_skills"`
	TechSkillProficiency int      `json:"tech_skill_proficiency"`
	SoftSkills           []string `json:"soft_skills"`
	SoftSkillProficiency int      `json:"soft_skill_proficiency"`
	SkillEmbedding       string   `json:"skill_embedding"`

	CoursesCompleted    int     `json:"courses_completed"`
	AvgCourseDifficulty int     `json:"avg_course_difficulty"`
	TotalHoursLearning  float64 `json:"total_hours_learning"`
	CourseKeywords      string  `json:"course_keywords"`

	ProjectCount         int    `json:"project_count"`
	AvgProjectComplexity int    `json:"avg_project_complexity"`
	ProjectKeywords      string `json:"project_keywords"`

	ExperienceMonths int      `json:"experience_months"`
	ExperienceTypes  []string `json:"experience_types"`
	JobLevel         string   `json:"job_level"`
	WorkKeywords     string   `json:"work_keywords"`

	InterestSTEM          int      `json:"interest_stem"`
	InterestBusiness      int      `json:"interest_business"`
	InterestArts          int      `json:"interest_arts"`
	InterestDesign        int      `json:"interest_design"`
	InterestMedical       int      `json:"interest_medical"`
	InterestSocialScience int      `json:"interest_social_science"`
	CareerPreference      string   `json:"career_preference"`
	WorkPreference        []string `json:"work_preference"`
	PreferredIndustries   []string `json:"preferred_industries"`
	PreferredRoles        []string `json:"preferred_roles"`

	Conscientiousness  int    `json:"conscientiousness"`
	Extraversion       int    `json:"extraversion"`
	Openness           int    `json:"openness"`
	Agreeableness      int    `json:"agreeableness"`
	EmotionalStability int    `json:"emotional_stability"`
	CurrentStatus      string `json:"current_status"`
	CurrentJobRole     string `json:"current_job_role"`
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock overrides the source of submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithIDGenerator overrides how user IDs are minted.
func WithIDGenerator(gen func() string) Option {
	return func(a *Assembler) { a.newID = gen }
}

// Assembler builds FormRecords from a field registry.
type Assembler struct {
	now   func() time.Time
	newID func() string
}

// NewAssembler returns an Assembler stamping records with the wall clock
// and random version-4 UUIDs.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble reads every field from reg and returns the submission record.
// Numeric text that does not parse becomes 0; derived fields are computed
// from their inputs rather than read back.
func (a *Assembler) Assemble(reg form.Registry) FormRecord {
	text := func(f form.Field) string { return reg.Value(f) }
	num := func(f form.Field) int { return form.ParseInt(reg.Value(f)) }
	dec := func(f form.Field) float64 { return form.ParseFloat(reg.Value(f)) }
	set := func(f form.Field) []string {
		if v := reg.Checked(f); len(v) > 0 {
			return v
		}
		return []string{}
	}

	rec := FormRecord{
		UserID:    a.newID(),
		Timestamp: a.now().UTC().Format(TimestampFormat),

		Age:       num(form.Age),
		Gender:    text(form.Gender),
		Location:  text(form.Location),
		Languages: set(form.Languages),

		Class10Percentage:     dec(form.Class10Percentage),
		Class12Percentage:     dec(form.Class12Percentage),
		Class12Stream:         text(form.Class12Stream),
		UGMajor:               text(form.UGMajor),
		UGCGPA:                dec(form.UGCGPA),
		GradMajor:             text(form.GradMajor),
		GradCGPA:              dec(form.GradCGPA),
		PGMajor:               text(form.PGMajor),
		PGCGPA:                dec(form.PGCGPA),
		HighestEducation:      text(form.HighestEducation),
		StandardizedTestScore: dec(form.StandardizedTestScore),

		TechnicalSkills:      set(form.TechnicalSkills),
		TechSkillProficiency: num(form.TechSkillProficiency),
		SoftSkills:           set(form.SoftSkills),
		SoftSkillProficiency: num(form.SoftSkillProficiency),

		CoursesCompleted:    num(form.CoursesCompleted),
		AvgCourseDifficulty: num(form.AvgCourseDifficulty),
		TotalHoursLearning:  dec(form.TotalHoursLearning),
		CourseKeywords:      text(form.CourseKeywords),

		ProjectCount:         num(form.ProjectCount),
		AvgProjectComplexity: num(form.AvgProjectComplexity),
		ProjectKeywords:      text(form.ProjectKeywords),

		ExperienceMonths: num(form.ExperienceMonths),
		ExperienceTypes:  set(form.ExperienceTypes),
		JobLevel:         text(form.JobLevel),
		WorkKeywords:     text(form.WorkKeywords),

		InterestSTEM:          num(form.InterestSTEM),
		InterestBusiness:      num(form.InterestBusiness),
		InterestArts:          num(form.InterestArts),
		InterestDesign:        num(form.InterestDesign),
		InterestMedical:       num(form.InterestMedical),
		InterestSocialScience: num(form.InterestSocialScience),
		CareerPreference:      text(form.CareerPreference),
		WorkPreference:        set(form.WorkPreference),
		PreferredIndustries:   set(form.PreferredIndustries),
		PreferredRoles:        set(form.PreferredRoles),

		Conscientiousness:  num(form.Conscientiousness),
		Extraversion:       num(form.Extraversion),
		Openness:           num(form.Openness),
		Agreeableness:      num(form.Agreeableness),
		EmotionalStability: num(form.EmotionalStability),
		CurrentStatus:      text(form.CurrentStatus),
	}

	if c, ok := derive.AcademicConsistency(derive.GradesFrom(reg)); ok {
		rec.AcademicConsistency = &c
	}
	rec.SkillEmbedding = derive.SkillEmbedding(rec.TechnicalSkills, rec.SoftSkills)
	rec.CurrentJobRole = ResolveJobRole(rec.CurrentStatus, reg.Selected(form.CurrentJobRole))

	return rec
}

// ResolveJobRole applies the current-status rule: students are recorded as
// "Student", working respondents keep their selection, anything else is
// blank.
func ResolveJobRole(status, selected string) string {
	switch status {
	case form.StatusStudent:
		return form.StudentJobRole
	case form.StatusWorking:
		return selected
	}
	return ""
}

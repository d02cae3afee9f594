package form

// Field is the logical name of a survey field. It doubles as the JSON key
// used in persisted drafts and in the submitted record.
type Field string

// Step 1: personal information.
const (
	Age       Field = "age"
	Gender    Field = "gender"
	Location  Field = "location"
	Languages Field = "languages"
)

// Step 2: academic performance.
const (
	Class10Percentage     Field = "class10_percentage"
	Class12Percentage     Field = "class12_percentage"
	Class12Stream         Field = "class12_stream"
	UGMajor               Field = "ug_major"
	UGCGPA                Field = "ug_cgpa"
	GradMajor             Field = "grad_major"
	GradCGPA              Field = "grad_cgpa"
	PGMajor               Field = "pg_major"
	PGCGPA                Field = "pg_cgpa"
	HighestEducation      Field = "highest_education"
	StandardizedTestScore Field = "standardized_test_score"
	AcademicConsistency   Field = "academic_consistency"
)

// Step 3: technical and soft skills.
const (
	TechnicalSkills      Field = "technical_skills"
	TechSkillProficiency Field = "tech_skill_proficiency"
	SoftSkills           Field = "soft_skills"
	SoftSkillProficiency Field = "soft_skill_proficiency"
	SkillEmbedding       Field = "skill_embedding"
)

// Step 4: learning and development.
const (
	CoursesCompleted    Field = "courses_completed"
	AvgCourseDifficulty Field = "avg_course_difficulty"
	TotalHoursLearning  Field = "total_hours_learning"
	CourseKeywords      Field = "course_keywords"
)

// Step 5: projects.
const (
	ProjectCount         Field = "project_count"
	AvgProjectComplexity Field = "avg_project_complexity"
	ProjectKeywords      Field = "project_keywords"
)

// Step 6: work experience.
const (
	ExperienceMonths Field = "experience_months"
	ExperienceTypes  Field = "experience_types"
	JobLevel         Field = "job_level"
	WorkKeywords     Field = "work_keywords"
)

// Step 7: interests and preferences.
const (
	InterestSTEM          Field = "interest_stem"
	InterestBusiness      Field = "interest_business"
	InterestArts          Field = "interest_arts"
	InterestDesign        Field = "interest_design"
	InterestMedical       Field = "interest_medical"
	InterestSocialScience Field = "interest_social_science"
	CareerPreference      Field = "career_preference"
	WorkPreference        Field = "work_preference"
	PreferredIndustries   Field = "preferred_industries"
	PreferredRoles        Field = "preferred_roles"
)

// Step 8: personality assessment and current status.
const (
	Conscientiousness  Field = "conscientiousness"
	Extraversion       Field = "extraversion"
	Openness           Field = "openness"
	Agreeableness      Field = "agreeableness"
	EmotionalStability Field = "emotional_stability"
	CurrentStatus      Field = "current_status"
	CurrentJobRole     Field = "current_job_role"
)

// Values of CurrentStatus that drive the job-role rule.
const (
	StatusStudent = "student"
	StatusWorking = "working"

	// StudentJobRole is the job role recorded for students.
	StudentJobRole = "Student"
)

// Kind describes how a field is edited and stored.
type Kind int

const (
	KindText    Kind = iota // free text
	KindInt                 // whole number typed as text
	KindFloat               // decimal number typed as text
	KindSelect              // exactly one of Options
	KindSlider              // integer in [Min, Max]
	KindMulti               // checkbox group, any subset of Options
	KindRadio               // radio group, at most one of Options
	KindDerived             // computed from other fields, read-only
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindSelect:
		return "select"
	case KindSlider:
		return "slider"
	case KindMulti:
		return "multi"
	case KindRadio:
		return "radio"
	case KindDerived:
		return "derived"
	default:
		return "unknown"
	}
}

// Spec declares one field of the survey.
type Spec struct {
	Field       Field
	Label       string
	Kind        Kind
	Step        int
	Required    bool
	Options     []string
	Placeholder string

	// Slider range and default.
	Min, Max, Default int

	// MaxLen caps free-text input; zero means unlimited.
	MaxLen int
}

// IsMulti reports whether the field holds a set of values.
func (s Spec) IsMulti() bool {
	return s.Kind == KindMulti
}

// HasOption reports whether v is one of the declared options.
func (s Spec) HasOption(v string) bool {
	for _, o := range s.Options {
		if o == v {
			return true
		}
	}
	return false
}

package form

import "strconv"

// TotalSteps is the number of screens in the survey.
const TotalSteps = 8

// Option catalogs.
var (
	GenderOptions = []string{"male", "female", "non_binary", "prefer_not_to_say"}

	LanguageOptions = []string{
		"English", "Hindi", "Bengali", "Tamil", "Telugu", "Marathi",
		"Kannada", "Malayalam", "Gujarati", "Punjabi", "Urdu", "French",
		"German", "Spanish", "Mandarin", "Japanese",
	}

	StreamOptions    = []string{"science", "commerce", "arts", "vocational"}
	EducationOptions = []string{"high_school", "diploma", "bachelors", "masters", "phd"}

	TechnicalSkillOptions = []string{
		"Python", "Java", "JavaScript", "C++", "Go", "SQL", "HTML/CSS",
		"React", "Node.js", "Machine Learning", "Data Analysis", "Cloud Computing",
		"DevOps", "Cybersecurity", "Mobile Development", "UI/UX Design",
		"Excel", "Tableau", "Figma", "AutoCAD",
	}

	SoftSkillOptions = []string{
		"Communication", "Teamwork", "Leadership", "Problem Solving",
		"Critical Thinking", "Time Management", "Adaptability", "Creativity",
		"Negotiation", "Public Speaking",
	}

	ExperienceTypeOptions = []string{
		"Internship", "Full-time", "Part-time", "Freelance",
		"Research", "Volunteer", "Startup", "Teaching Assistant",
	}

	JobLevelOptions = []string{"none", "intern", "entry", "mid", "senior", "lead"}

	CareerPreferenceOptions = []string{
		"technical", "management", "research", "creative",
		"entrepreneurship", "public_service",
	}

	WorkPreferenceOptions = []string{
		"Remote", "Hybrid", "On-site", "Flexible Hours",
		"Fixed Hours", "Travel", "Shift Work",
	}

	IndustryOptions = []string{
		"Information Technology", "Finance", "Healthcare", "Education",
		"Manufacturing", "Retail", "Media", "Government", "Consulting",
		"Energy", "Telecommunications", "Non-profit",
	}

	RoleOptions = []string{
		"Software Engineer", "Data Scientist", "Data Analyst", "Product Manager",
		"Designer", "Business Analyst", "Marketing Specialist", "Consultant",
		"Researcher", "Teacher", "Doctor", "Civil Engineer", "Accountant",
		"Entrepreneur",
	}

	StatusOptions = []string{StatusStudent, StatusWorking}
)

var stepTitles = [TotalSteps]string{
	"Personal Information",
	"Academic Performance",
	"Technical & Soft Skills",
	"Learning & Development",
	"Projects",
	"Work Experience",
	"Interests & Preferences",
	"Personality Assessment",
}

var catalog = []Spec{
	{Field: Age, Label: "Age", Kind: KindInt, Step: 1, Required: true, Placeholder: "e.g. 21"},
	{Field: Gender, Label: "Gender", Kind: KindSelect, Step: 1, Required: true, Options: GenderOptions},
	{Field: Location, Label: "Location", Kind: KindText, Step: 1, Required: true, Placeholder: "City, Country", MaxLen: 100},
	{Field: Languages, Label: "Languages", Kind: KindMulti, Step: 1, Required: true, Options: LanguageOptions},

	{Field: Class10Percentage, Label: "Class 10 percentage", Kind: KindFloat, Step: 2, Required: true, Placeholder: "0-100"},
	{Field: Class12Percentage, Label: "Class 12 percentage", Kind: KindFloat, Step: 2, Required: true, Placeholder: "0-100"},
	{Field: Class12Stream, Label: "Class 12 stream", Kind: KindSelect, Step: 2, Required: true, Options: StreamOptions},
	{Field: UGMajor, Label: "Undergraduate major", Kind: KindText, Step: 2, MaxLen: 100},
	{Field: UGCGPA, Label: "Undergraduate CGPA", Kind: KindFloat, Step: 2, Placeholder: "0-10"},
	{Field: GradMajor, Label: "Graduate major", Kind: KindText, Step: 2, MaxLen: 100},
	{Field: GradCGPA, Label: "Graduate CGPA", Kind: KindFloat, Step: 2, Placeholder: "0-10"},
	{Field: PGMajor, Label: "Postgraduate major", Kind: KindText, Step: 2, MaxLen: 100},
	{Field: PGCGPA, Label: "Postgraduate CGPA", Kind: KindFloat, Step: 2, Placeholder: "0-10"},
	{Field: HighestEducation, Label: "Highest education", Kind: KindSelect, Step: 2, Required: true, Options: EducationOptions},
	{Field: StandardizedTestScore, Label: "Standardized test score", Kind: KindFloat, Step: 2, Placeholder: "optional"},
	{Field: AcademicConsistency, Label: "Academic consistency", Kind: KindDerived, Step: 2},

	{Field: TechnicalSkills, Label: "Technical skills", Kind: KindMulti, Step: 3, Required: true, Options: TechnicalSkillOptions},
	{Field: TechSkillProficiency, Label: "Technical proficiency", Kind: KindSlider, Step: 3, Min: 1, Max: 10, Default: 5},
	{Field: SoftSkills, Label: "Soft skills", Kind: KindMulti, Step: 3, Required: true, Options: SoftSkillOptions},
	{Field: SoftSkillProficiency, Label: "Soft skill proficiency", Kind: KindSlider, Step: 3, Min: 1, Max: 10, Default: 5},
	{Field: SkillEmbedding, Label: "Skill summary", Kind: KindDerived, Step: 3},

	{Field: CoursesCompleted, Label: "Courses completed", Kind: KindInt, Step: 4, Required: true},
	{Field: AvgCourseDifficulty, Label: "Average course difficulty", Kind: KindSlider, Step: 4, Min: 1, Max: 5, Default: 3},
	{Field: TotalHoursLearning, Label: "Total hours of learning", Kind: KindFloat, Step: 4, Required: true},
	{Field: CourseKeywords, Label: "Course keywords", Kind: KindText, Step: 4, MaxLen: 500, Placeholder: "topics you studied"},

	{Field: ProjectCount, Label: "Projects completed", Kind: KindInt, Step: 5, Required: true},
	{Field: AvgProjectComplexity, Label: "Average project complexity", Kind: KindSlider, Step: 5, Min: 1, Max: 5, Default: 3},
	{Field: ProjectKeywords, Label: "Project keywords", Kind: KindText, Step: 5, MaxLen: 500, Placeholder: "what you built"},

	{Field: ExperienceMonths, Label: "Experience (months)", Kind: KindInt, Step: 6, Required: true},
	{Field: ExperienceTypes, Label: "Experience types", Kind: KindMulti, Step: 6, Options: ExperienceTypeOptions},
	{Field: JobLevel, Label: "Job level", Kind: KindSelect, Step: 6, Required: true, Options: JobLevelOptions},
	{Field: WorkKeywords, Label: "Work keywords", Kind: KindText, Step: 6, MaxLen: 500, Placeholder: "what you worked on"},

	{Field: InterestSTEM, Label: "Interest: STEM", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: InterestBusiness, Label: "Interest: Business", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: InterestArts, Label: "Interest: Arts", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: InterestDesign, Label: "Interest: Design", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: InterestMedical, Label: "Interest: Medical", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: InterestSocialScience, Label: "Interest: Social science", Kind: KindSlider, Step: 7, Min: 1, Max: 10, Default: 5},
	{Field: CareerPreference, Label: "Career preference", Kind: KindSelect, Step: 7, Required: true, Options: CareerPreferenceOptions},
	{Field: WorkPreference, Label: "Work preference", Kind: KindMulti, Step: 7, Required: true, Options: WorkPreferenceOptions},
	{Field: PreferredIndustries, Label: "Preferred industries", Kind: KindMulti, Step: 7, Required: true, Options: IndustryOptions},
	{Field: PreferredRoles, Label: "Preferred roles", Kind: KindMulti, Step: 7, Required: true, Options: RoleOptions},

	{Field: Conscientiousness, Label: "Conscientiousness", Kind: KindSlider, Step: 8, Min: 1, Max: 10, Default: 5},
	{Field: Extraversion, Label: "Extraversion", Kind: KindSlider, Step: 8, Min: 1, Max: 10, Default: 5},
	{Field: Openness, Label: "Openness", Kind: KindSlider, Step: 8, Min: 1, Max: 10, Default: 5},
	{Field: Agreeableness, Label: "Agreeableness", Kind: KindSlider, Step: 8, Min: 1, Max: 10, Default: 5},
	{Field: EmotionalStability, Label: "Emotional stability", Kind: KindSlider, Step: 8, Min: 1, Max: 10, Default: 5},
	{Field: CurrentStatus, Label: "Current status", Kind: KindSelect, Step: 8, Required: true, Options: StatusOptions},
	{Field: CurrentJobRole, Label: "Current job role", Kind: KindRadio, Step: 8, Options: RoleOptions},
}

var index = func() map[Field]int {
	m := make(map[Field]int, len(catalog))
	for i, s := range catalog {
		m[s.Field] = i
	}
	return m
}()

// Specs returns every field declaration in display order.
func Specs() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the declaration for f.
func Lookup(f Field) (Spec, bool) {
	i, ok := index[f]
	if !ok {
		return Spec{}, false
	}
	return catalog[i], true
}

// StepFields returns the fields shown on the given step, in display order.
func StepFields(step int) []Spec {
	var out []Spec
	for _, s := range catalog {
		if s.Step == step {
			out = append(out, s)
		}
	}
	return out
}

// StepTitle returns the heading of a step, or "" when out of range.
func StepTitle(step int) string {
	if step < 1 || step > TotalSteps {
		return ""
	}
	return stepTitles[step-1]
}

// DefaultValue is the value a scalar field holds on a blank form.
func (s Spec) DefaultValue() string {
	if s.Kind == KindSlider {
		return strconv.Itoa(s.Default)
	}
	return ""
}

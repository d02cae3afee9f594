// Package formtest provides filled-in registries for tests.
package formtest

import "github.com/abhisek/careerform/internal/form"

// Complete returns a registry where every required field on every step is
// answered, for a respondent who is currently working as a software engineer.
func Complete() *form.Values {
	v := form.NewValues()
	Fill(v)
	return v
}

// Fill answers every required field of reg.
func Fill(reg form.Registry) {
	reg.SetValue(form.Age, "24")
	reg.SetValue(form.Gender, "female")
	reg.SetValue(form.Location, "Bengaluru, India")
	reg.SetChecked(form.Languages, []string{"English", "Kannada"})

	reg.SetValue(form.Class10Percentage, "80")
	reg.SetValue(form.Class12Percentage, "90")
	reg.SetValue(form.Class12Stream, "science")
	reg.SetValue(form.HighestEducation, "bachelors")

	reg.SetChecked(form.TechnicalSkills, []string{"Python", "Go"})
	reg.SetChecked(form.SoftSkills, []string{"Communication"})

	reg.SetValue(form.CoursesCompleted, "6")
	reg.SetValue(form.TotalHoursLearning, "240")

	reg.SetValue(form.ProjectCount, "4")

	reg.SetValue(form.ExperienceMonths, "18")
	reg.SetValue(form.JobLevel, "entry")

	reg.SetValue(form.CareerPreference, "technical")
	reg.SetChecked(form.WorkPreference, []string{"Hybrid"})
	reg.SetChecked(form.PreferredIndustries, []string{"Information Technology"})
	reg.SetChecked(form.PreferredRoles, []string{"Software Engineer", "Data Scientist"})

	reg.SetValue(form.CurrentStatus, form.StatusWorking)
	reg.Select(form.CurrentJobRole, "Software Engineer")
}

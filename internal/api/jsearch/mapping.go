package jsearch

import (
	"time"

	"jobpulse/internal/models"

	"github.com/google/uuid"
)

const (
	defaultEmployer = "Confidential"
	defaultJobType  = "full-time"
)

// mapPosting translates the provider schema into the canonical job shape,
// field by field, with a default for everything the provider may omit.
func mapPosting(p jobPosting) models.Job {
	job := models.Job{
		ID:    p.JobID,
		Title: p.JobTitle,
		Company: models.Company{
			Name: p.EmployerName,
			Logo: p.EmployerLogo,
		},
		Location: models.Location{
			City:    p.JobCity,
			State:   p.JobState,
			Country: p.JobCountry,
			Remote:  p.JobIsRemote,
		},
		Type:        p.JobEmploymentType,
		Skills:      p.JobRequiredSkills,
		Description: p.JobDescription,
		URL:         p.JobApplyLink,
		Source:      sourceName,
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Company.Name == "" {
		job.Company.Name = defaultEmployer
	}
	if job.Type == "" {
		job.Type = defaultJobType
	}
	if len(job.Skills) == 0 {
		job.Skills = p.JobHighlights.Qualifications
	}

	if p.JobMinSalary > 0 || p.JobMaxSalary > 0 {
		currency := p.JobSalaryCurrency
		if currency == "" {
			currency = "USD"
		}
		job.Salary = &models.Salary{
			Min:      int(p.JobMinSalary),
			Max:      int(p.JobMaxSalary),
			Currency: currency,
		}
	}

	if p.JobPostedAt != "" {
		if ts, err := time.Parse(time.RFC3339, p.JobPostedAt); err == nil {
			job.PostedAt = ts
		}
	}

	return job
}

package staticjobs

import (
	"context"
	"time"

	"jobpulse/internal/models"
)

// Source is the last-resort data provider: a fixed set of plausible listings
// served when both real sources are down. It never fails, and its results are
// never cached so the real sources get retried on the next call.
type Source struct{}

func New() *Source {
	return &Source{}
}

func (s *Source) Name() string {
	return "static"
}

func (s *Source) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) ([]models.Job, error) {
	if page > 0 {
		return []models.Job{}, nil
	}
	jobs := listings()
	if len(jobs) > perPage {
		jobs = jobs[:perPage]
	}
	return jobs, nil
}

func (s *Source) Featured(ctx context.Context, limit int) ([]models.Job, error) {
	jobs := listings()
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (s *Source) Latest(ctx context.Context, limit int) ([]models.Job, error) {
	jobs := listings()
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nil
}

func (s *Source) Categories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{
		{Name: "Software Development", Count: 1240},
		{Name: "Data Science", Count: 486},
		{Name: "Design", Count: 352},
		{Name: "Product Management", Count: 298},
		{Name: "DevOps", Count: 274},
		{Name: "Marketing", Count: 231},
		{Name: "Sales", Count: 189},
		{Name: "Customer Support", Count: 143},
	}, nil
}

func (s *Source) Stats(ctx context.Context) (*models.JobStats, error) {
	return &models.JobStats{
		TotalJobs:      3213,
		TotalCompanies: 847,
		NewToday:       52,
		RemoteJobs:     1105,
	}, nil
}

func listings() []models.Job {
	posted := time.Now().AddDate(0, 0, -3)

	return []models.Job{
		{
			ID:          "static-1",
			Title:       "Senior Backend Engineer",
			Company:     models.Company{Name: "Nimbus Labs", Location: "San Francisco, CA"},
			Location:    models.Location{City: "San Francisco", State: "CA", Country: "US", Remote: true},
			Salary:      &models.Salary{Min: 150000, Max: 195000, Currency: "USD"},
			Type:        "full-time",
			Experience:  "senior",
			Skills:      []string{"Go", "PostgreSQL", "Kubernetes"},
			Description: "Own the services powering our marketplace APIs.",
			PostedAt:    posted,
			Source:      "static",
		},
		{
			ID:          "static-2",
			Title:       "Frontend Developer",
			Company:     models.Company{Name: "Brightpath", Location: "Austin, TX"},
			Location:    models.Location{City: "Austin", State: "TX", Country: "US"},
			Salary:      &models.Salary{Min: 95000, Max: 130000, Currency: "USD"},
			Type:        "full-time",
			Experience:  "mid",
			Skills:      []string{"TypeScript", "React", "CSS"},
			Description: "Build accessible, fast interfaces for our learning platform.",
			PostedAt:    posted,
			Source:      "static",
		},
		{
			ID:          "static-3",
			Title:       "Data Analyst",
			Company:     models.Company{Name: "Harbor Analytics", Location: "Remote"},
			Location:    models.Location{Remote: true},
			Salary:      &models.Salary{Min: 80000, Max: 105000, Currency: "USD"},
			Type:        "full-time",
			Experience:  "junior",
			Skills:      []string{"SQL", "Python", "Tableau"},
			Description: "Turn product telemetry into decisions.",
			PostedAt:    posted,
			Source:      "static",
		},
		{
			ID:          "static-4",
			Title:       "DevOps Engineer",
			Company:     models.Company{Name: "Cloudmere", Location: "Seattle, WA"},
			Location:    models.Location{City: "Seattle", State: "WA", Country: "US", Remote: true},
			Salary:      &models.Salary{Min: 130000, Max: 170000, Currency: "USD"},
			Type:        "full-time",
			Experience:  "mid",
			Skills:      []string{"Terraform", "AWS", "CI/CD"},
			Description: "Keep our deployment pipelines boring.",
			PostedAt:    posted,
			Source:      "static",
		},
		{
			ID:          "static-5",
			Title:       "Product Designer",
			Company:     models.Company{Name: "Fieldnote", Location: "New York, NY"},
			Location:    models.Location{City: "New York", State: "NY", Country: "US"},
			Type:        "contract",
			Experience:  "mid",
			Skills:      []string{"Figma", "Prototyping", "User Research"},
			Description: "Shape the next generation of our mobile experience.",
			PostedAt:    posted,
			Source:      "static",
		},
		{
			ID:          "static-6",
			Title:       "Machine Learning Engineer",
			Company:     models.Company{Name: "Quanta AI", Location: "Boston, MA"},
			Location:    models.Location{City: "Boston", State: "MA", Country: "US", Remote: true},
			Salary:      &models.Salary{Min: 160000, Max: 210000, Currency: "USD"},
			Type:        "full-time",
			Experience:  "senior",
			Skills:      []string{"Python", "PyTorch", "MLOps"},
			Description: "Productionize ranking models for job recommendations.",
			PostedAt:    posted,
			Source:      "static",
		},
	}
}

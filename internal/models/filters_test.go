package models_test

import (
	"testing"

	"jobpulse/internal/models"
)

func TestFilterValues_OmitsAbsentFields(t *testing.T) {
	f := models.SearchFilters{
		Query:    "golang",
		Location: "  ",
		JobType:  "",
	}

	v := f.Values()

	if got := v.Get("query"); got != "golang" {
		t.Errorf("query = %q, want %q", got, "golang")
	}
	for _, key := range []string{"location", "type", "salaryMin", "salaryMax", "experience", "company", "skills"} {
		if _, ok := v[key]; ok {
			t.Errorf("absent field %q must be omitted, not sent empty", key)
		}
	}
}

func TestFilterValues_AllFields(t *testing.T) {
	f := models.SearchFilters{
		Query:      "engineer",
		Location:   "Berlin",
		JobType:    "full-time",
		SalaryMin:  50000,
		SalaryMax:  90000,
		Experience: "senior",
		Company:    "Acme",
		Skills:     []string{"Go", "SQL"},
	}

	v := f.Values()
	if len(v) != 8 {
		t.Errorf("got %d parameters, want 8: %v", len(v), v)
	}
	if got := v.Get("skills"); got != "Go,SQL" {
		t.Errorf("skills = %q, want %q", got, "Go,SQL")
	}
	if got := v.Get("salaryMin"); got != "50000" {
		t.Errorf("salaryMin = %q, want %q", got, "50000")
	}
}

func TestFilterIsZero(t *testing.T) {
	if !(models.SearchFilters{}).IsZero() {
		t.Error("empty filters should be zero")
	}
	if !(models.SearchFilters{Location: "   "}).IsZero() {
		t.Error("whitespace-only fields should count as absent")
	}
	if (models.SearchFilters{Query: "go"}).IsZero() {
		t.Error("filters with a query are not zero")
	}
}

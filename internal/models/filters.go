package models

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchFilters describes a job search request. Zero-valued fields mean
// "no constraint" and are omitted from any outbound query.
type SearchFilters struct {
	Query      string   `json:"query,omitempty"`
	Location   string   `json:"location,omitempty"`
	JobType    string   `json:"jobType,omitempty"`
	SalaryMin  int      `json:"salaryMin,omitempty"`
	SalaryMax  int      `json:"salaryMax,omitempty"`
	Experience string   `json:"experience,omitempty"`
	Company    string   `json:"company,omitempty"`
	Skills     []string `json:"skills,omitempty"`
}

// Values encodes the filters as query parameters, skipping absent fields.
func (f SearchFilters) Values() url.Values {
	v := url.Values{}

	if q := strings.TrimSpace(f.Query); q != "" {
		v.Set("query", q)
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		v.Set("location", loc)
	}
	if f.JobType != "" {
		v.Set("type", f.JobType)
	}
	if f.SalaryMin > 0 {
		v.Set("salaryMin", strconv.Itoa(f.SalaryMin))
	}
	if f.SalaryMax > 0 {
		v.Set("salaryMax", strconv.Itoa(f.SalaryMax))
	}
	if f.Experience != "" {
		v.Set("experience", f.Experience)
	}
	if c := strings.TrimSpace(f.Company); c != "" {
		v.Set("company", c)
	}
	if len(f.Skills) > 0 {
		v.Set("skills", strings.Join(f.Skills, ","))
	}

	return v
}

// IsZero reports whether no constraint is set.
func (f SearchFilters) IsZero() bool {
	return len(f.Values()) == 0
}

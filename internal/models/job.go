package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Job is the canonical job shape every part of the system sees after the
// adapter boundary. Sources disagree on field names and nesting; decoding
// normalizes once, here.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     Company   `json:"company"`
	Location    Location  `json:"location"`
	Salary      *Salary   `json:"salary,omitempty"`
	Type        string    `json:"type,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	Description string    `json:"description,omitempty"`
	PostedAt    time.Time `json:"postedAt,omitempty"`
	URL         string    `json:"url,omitempty"`
	Source      string    `json:"source,omitempty"`
}

type Company struct {
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Location string `json:"location,omitempty"`
}

type Location struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Remote  bool   `json:"remote,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

type Salary struct {
	Min      int    `json:"min,omitempty"`
	Max      int    `json:"max,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type JobStats struct {
	TotalJobs      int `json:"totalJobs"`
	TotalCompanies int `json:"totalCompanies"`
	NewToday       int `json:"newToday"`
	RemoteJobs     int `json:"remoteJobs"`
}

// UnmarshalJSON accepts both wire shapes a job may arrive in: the identifier
// as "_id" or "id" (string or number), company as a plain string or a nested
// object, location as a plain string or a structured object, and the posted
// timestamp under either "postedAt" or "postedDate".
func (j *Job) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID     json.RawMessage `json:"_id"`
		ID          json.RawMessage `json:"id"`
		Title       string          `json:"title"`
		Company     Company         `json:"company"`
		Location    Location        `json:"location"`
		Salary      *Salary         `json:"salary"`
		Type        string          `json:"type"`
		Experience  string          `json:"experience"`
		Skills      []string        `json:"skills"`
		Description string          `json:"description"`
		PostedAt    string          `json:"postedAt"`
		PostedDate  string          `json:"postedDate"`
		URL         string          `json:"url"`
		Source      string          `json:"source"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// identity is the first non-empty candidate
	j.ID = flexString(raw.MongoID)
	if j.ID == "" {
		j.ID = flexString(raw.ID)
	}

	j.Title = raw.Title
	j.Company = raw.Company
	j.Location = raw.Location
	j.Salary = raw.Salary
	j.Type = raw.Type
	j.Experience = raw.Experience
	j.Skills = raw.Skills
	j.Description = raw.Description
	j.URL = raw.URL
	j.Source = raw.Source

	ts := raw.PostedAt
	if ts == "" {
		ts = raw.PostedDate
	}
	j.PostedAt = parseTimestamp(ts)

	return nil
}

func (c *Company) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		c.Name = name
		return nil
	}

	var obj struct {
		Name     string `json:"name"`
		Logo     string `json:"logo"`
		Location string `json:"location"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Name = obj.Name
	c.Logo = obj.Logo
	c.Location = obj.Location
	return nil
}

func (l *Location) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		l.Raw = raw
		return nil
	}

	var obj struct {
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
		Raw     string `json:"raw"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	l.City = obj.City
	l.State = obj.State
	l.Country = obj.Country
	l.Remote = obj.Remote
	l.Raw = obj.Raw
	return nil
}

// String renders a location for display and substring matching.
func (l Location) String() string {
	if l.Raw != "" {
		return l.Raw
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{l.City, l.State, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	s := strings.Join(parts, ", ")
	if l.Remote {
		if s == "" {
			return "Remote"
		}
		return s + " (Remote)"
	}
	return s
}

// DedupeJobs drops entries whose identity was already seen, preserving order.
// Entries without any identity are kept as-is.
func DedupeJobs(jobs []Job) []Job {
	seen := make(map[string]bool, len(jobs))
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID != "" {
			if seen[j.ID] {
				continue
			}
			seen[j.ID] = true
		}
		out = append(out, j)
	}
	return out
}

func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	// numeric identifiers come through as-is
	return strings.Trim(string(raw), `"`)
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

package models

import (
	"fmt"
	"time"
)

// SavedJob is a job snapshot taken at save time.
type SavedJob struct {
	Job     Job       `json:"job"`
	SavedAt time.Time `json:"savedAt"`
}

// ContainsJob reports whether the saved list already holds the job identity.
func ContainsJob(saved []SavedJob, jobID string) bool {
	for _, s := range saved {
		if s.Job.ID == jobID {
			return true
		}
	}
	return false
}

// ApplicationStatus transitions are server-authoritative; the client only
// parses and displays them.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusRejected  ApplicationStatus = "rejected"
)

func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	switch ApplicationStatus(s) {
	case StatusPending, StatusReviewing, StatusInterview, StatusAccepted, StatusRejected:
		return ApplicationStatus(s), nil
	}
	return "", fmt.Errorf("unknown application status: %q", s)
}

type Applicant struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Application is created by the apply intent and never mutated client-side
// after creation.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"jobId"`
	UserID      string            `json:"userId"`
	SubmittedAt time.Time         `json:"submittedAt"`
	Status      ApplicationStatus `json:"status"`
	Applicant   Applicant         `json:"applicant,omitempty"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `json:"resumeUrl,omitempty"`
	Links       []string          `json:"links,omitempty"`
}

// ApplicationRequest carries the free-form fields of an apply intent.
type ApplicationRequest struct {
	CoverLetter string   `json:"coverLetter,omitempty"`
	ResumeURL   string   `json:"resumeUrl,omitempty"`
	Links       []string `json:"links,omitempty"`
}

// UserProfile is the mirrored "user" object; the auth layer owns the real one.
type UserProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

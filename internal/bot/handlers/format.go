package handlers

import (
	"fmt"
	"strings"

	"jobpulse/internal/models"
)

func formatJobCard(j models.Job) string {
	var b strings.Builder

	fmt.Fprintf(&b, "💼 %s\n", j.Title)
	fmt.Fprintf(&b, "🏢 %s\n", j.Company.Name)

	if loc := j.Location.String(); loc != "" {
		fmt.Fprintf(&b, "📍 %s\n", loc)
	}

	if j.Salary != nil {
		fmt.Fprintf(&b, "💰 %s\n", formatSalary(j.Salary))
	}

	if j.Type != "" {
		fmt.Fprintf(&b, "⏰ %s\n", j.Type)
	}

	if len(j.Skills) > 0 {
		fmt.Fprintf(&b, "🛠 %s\n", strings.Join(j.Skills, ", "))
	}

	fmt.Fprintf(&b, "\nSave with /save %s", j.ID)

	return b.String()
}

func formatSalary(s *models.Salary) string {
	currency := s.Currency
	if currency == "" {
		currency = "USD"
	}

	switch {
	case s.Min > 0 && s.Max > 0:
		return fmt.Sprintf("%d–%d %s", s.Min, s.Max, currency)
	case s.Min > 0:
		return fmt.Sprintf("from %d %s", s.Min, currency)
	case s.Max > 0:
		return fmt.Sprintf("up to %d %s", s.Max, currency)
	}
	return "not specified"
}

func formatJobList(jobs []models.Job, header string) string {
	if len(jobs) == 0 {
		return "No jobs found. Try a different query."
	}

	var b strings.Builder
	b.WriteString(header + "\n\n")
	for _, j := range jobs {
		b.WriteString(formatJobCard(j))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

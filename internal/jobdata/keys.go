package jobdata

import (
	"fmt"

	"jobpulse/internal/models"
)

// Cache keys are deterministic signatures of operation + parameters.
// url.Values.Encode sorts by key, so equal filters always produce equal keys.

func searchKey(filters models.SearchFilters, page, perPage int) string {
	return fmt.Sprintf("jobs:search:%s:p%d:n%d", filters.Values().Encode(), page, perPage)
}

func featuredKey(limit int) string {
	return fmt.Sprintf("jobs:featured:%d", limit)
}

func latestKey(limit int) string {
	return fmt.Sprintf("jobs:latest:%d", limit)
}

func categoriesKey() string {
	return "jobs:categories"
}

func statsKey() string {
	return "jobs:stats"
}

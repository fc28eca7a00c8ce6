package jsearch

// Wire types for the external search provider. Almost every field may be
// absent; mapping substitutes defaults.

type searchResponse struct {
	Status string       `json:"status"`
	Data   []jobPosting `json:"data"`
}

type jobPosting struct {
	JobID             string        `json:"job_id"`
	EmployerName      string        `json:"employer_name"`
	EmployerLogo      string        `json:"employer_logo"`
	JobTitle          string        `json:"job_title"`
	JobDescription    string        `json:"job_description"`
	JobEmploymentType string        `json:"job_employment_type"`
	JobApplyLink      string        `json:"job_apply_link"`
	JobCity           string        `json:"job_city"`
	JobState          string        `json:"job_state"`
	JobCountry        string        `json:"job_country"`
	JobIsRemote       bool          `json:"job_is_remote"`
	JobPostedAt       string        `json:"job_posted_at_datetime_utc"`
	JobMinSalary      float64       `json:"job_min_salary"`
	JobMaxSalary      float64       `json:"job_max_salary"`
	JobSalaryCurrency string        `json:"job_salary_currency"`
	JobRequiredSkills []string      `json:"job_required_skills"`
	JobBenefits       []string      `json:"job_benefits"`
	JobHighlights     jobHighlights `json:"job_highlights"`
}

type jobHighlights struct {
	Qualifications   []string `json:"Qualifications"`
	Responsibilities []string `json:"Responsibilities"`
	Benefits         []string `json:"Benefits"`
}

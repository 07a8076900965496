// Package types provides type definitions for the structured entities exchanged
// between the analyzer and its clients. Every list-typed field is normalized to
// an empty slice before an entity is returned, so responses never contain null
// arrays regardless of what the model omitted.
package types

// StructuredJobDescription is the normalized representation of a free-text job
// description produced by the extraction prompt.
type StructuredJobDescription struct {
	Title                 string   `json:"title"`
	Company               string   `json:"company"`
	Location              string   `json:"location"`
	EmploymentType        string   `json:"employmentType"`
	ExperienceLevel       string   `json:"experienceLevel"`
	EducationRequirements []string `json:"educationRequirements"`
	Domain                string   `json:"domain"`
	Responsibilities      []string `json:"responsibilities"`
	MustHaveSkills        []string `json:"mustHaveSkills"`
	NiceToHaveSkills      []string `json:"niceToHaveSkills"`
	Technologies          []string `json:"technologies"`
	Summary               string   `json:"summary"`
}

// Normalize replaces nil slices with empty slices so the JSON encoding never
// contains null for a list field.
func (jd *StructuredJobDescription) Normalize() {
	jd.EducationRequirements = ensureSlice(jd.EducationRequirements)
	jd.Responsibilities = ensureSlice(jd.Responsibilities)
	jd.MustHaveSkills = ensureSlice(jd.MustHaveSkills)
	jd.NiceToHaveSkills = ensureSlice(jd.NiceToHaveSkills)
	jd.Technologies = ensureSlice(jd.Technologies)
}

// Education is a single education entry in a structured resume.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// ExperienceEntry is a single work experience entry in a structured resume.
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
}

// InferredExperience holds experience the model inferred from skill lists when
// the resume has no explicit work history section.
type InferredExperience struct {
	Bullets      []string `json:"bullets"`
	Technologies []string `json:"technologies"`
}

// Project is a single project entry in a structured resume.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Bullets      []string `json:"bullets"`
}

// StructuredResume is the normalized representation of free-text resume content.
type StructuredResume struct {
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Phone              string               `json:"phone"`
	Location           string               `json:"location"`
	Summary            string               `json:"summary"`
	Skills             []string             `json:"skills"`
	Education          []Education          `json:"education"`
	InferredExperience []InferredExperience `json:"inferredExperience,omitempty"`
	Experience         []ExperienceEntry    `json:"experience"`
	Projects           []Project            `json:"projects"`
	Certifications     []string             `json:"certifications"`
}

// Normalize replaces nil slices (including those of nested entries) with empty
// slices. InferredExperience stays nil when absent; it is an optional section.
func (r *StructuredResume) Normalize() {
	r.Skills = ensureSlice(r.Skills)
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	for i := range r.Experience {
		r.Experience[i].Bullets = ensureSlice(r.Experience[i].Bullets)
		r.Experience[i].Technologies = ensureSlice(r.Experience[i].Technologies)
	}
	for i := range r.InferredExperience {
		r.InferredExperience[i].Bullets = ensureSlice(r.InferredExperience[i].Bullets)
		r.InferredExperience[i].Technologies = ensureSlice(r.InferredExperience[i].Technologies)
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		r.Projects[i].Technologies = ensureSlice(r.Projects[i].Technologies)
		r.Projects[i].Bullets = ensureSlice(r.Projects[i].Bullets)
	}
	r.Certifications = ensureSlice(r.Certifications)
}

// DegradedResume builds the fallback structure used when the model response
// cannot be parsed: every field empty except the summary, which carries the
// first maxSummary characters of the sanitized input text.
func DegradedResume(sanitizedInput string, maxSummary int) *StructuredResume {
	summary := sanitizedInput
	if len(summary) > maxSummary {
		summary = summary[:maxSummary]
	}
	r := &StructuredResume{Summary: summary}
	r.Normalize()
	return r
}

// ParsedJobMetadata mirrors the nested JSON shape the metadata extraction
// prompt asks the model for. It is an intermediate form, flattened into a
// JobMetadataResponse before leaving the parsing layer.
type ParsedJobMetadata struct {
	Company struct {
		Name        string `json:"name"`
		Logo        string `json:"logo"`
		LinkedinURL string `json:"linkedinUrl"`
	} `json:"company"`
	Job struct {
		Title            string `json:"title"`
		Location         string `json:"location"`
		EmploymentType   string `json:"employmentType"`
		ApplyURL         string `json:"applyUrl"`
		Posted           string `json:"posted"`
		Applicants       string `json:"applicants"`
		PromotedBy       string `json:"promotedBy"`
		ResponsesManaged string `json:"responsesManaged"`
	} `json:"job"`
}

// JobMetadataResponse is the flat job metadata record returned to clients.
// Salary, applicationDeadline, remote, benefits, and additionalInfo have no
// extraction instruction and are always emitted empty.
type JobMetadataResponse struct {
	CompanyName         string            `json:"companyName"`
	CompanyLogo         string            `json:"companyLogo"`
	CompanyLinkedinURL  string            `json:"companyLinkedinUrl"`
	Title               string            `json:"title"`
	Location            string            `json:"location"`
	EmploymentType      string            `json:"employmentType"`
	ApplyURL            string            `json:"applyUrl"`
	Posted              string            `json:"posted"`
	Applicants          string            `json:"applicants"`
	PromotedBy          string            `json:"promotedBy"`
	ResponsesManaged    string            `json:"responsesManaged"`
	Salary              string            `json:"salary"`
	ApplicationDeadline string            `json:"applicationDeadline"`
	Remote              string            `json:"remote"`
	Benefits            []string          `json:"benefits"`
	AdditionalInfo      map[string]string `json:"additionalInfo"`
}

// Flatten converts the nested intermediate form into the response record.
func (m *ParsedJobMetadata) Flatten() *JobMetadataResponse {
	resp := EmptyJobMetadataResponse()
	resp.CompanyName = m.Company.Name
	resp.CompanyLogo = m.Company.Logo
	resp.CompanyLinkedinURL = m.Company.LinkedinURL
	resp.Title = m.Job.Title
	resp.Location = m.Job.Location
	resp.EmploymentType = m.Job.EmploymentType
	resp.ApplyURL = m.Job.ApplyURL
	resp.Posted = m.Job.Posted
	resp.Applicants = m.Job.Applicants
	resp.PromotedBy = m.Job.PromotedBy
	resp.ResponsesManaged = m.Job.ResponsesManaged
	return resp
}

// EmptyJobMetadataResponse returns a metadata response with every field empty.
func EmptyJobMetadataResponse() *JobMetadataResponse {
	return &JobMetadataResponse{
		Benefits:       []string{},
		AdditionalInfo: map[string]string{},
	}
}

// TailoredExperience is a rewritten experience entry in a tailored resume.
type TailoredExperience struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Bullets []string `json:"bullets"`
}

// TailoredProject is a rewritten project entry in a tailored resume.
type TailoredProject struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// TailoredResume is the output of the tailoring prompt: resume content
// rewritten to target a specific job description.
type TailoredResume struct {
	TailoredSummary       string               `json:"tailoredSummary"`
	TailoredSkills        []string             `json:"tailoredSkills"`
	TailoredExperience    []TailoredExperience `json:"tailoredExperience"`
	TailoredProjects      []TailoredProject    `json:"tailoredProjects"`
	CoverLetterHighlights []string             `json:"coverLetterHighlights"`
}

// Normalize replaces nil slices with empty slices.
func (t *TailoredResume) Normalize() {
	t.TailoredSkills = ensureSlice(t.TailoredSkills)
	if t.TailoredExperience == nil {
		t.TailoredExperience = []TailoredExperience{}
	}
	for i := range t.TailoredExperience {
		t.TailoredExperience[i].Bullets = ensureSlice(t.TailoredExperience[i].Bullets)
	}
	if t.TailoredProjects == nil {
		t.TailoredProjects = []TailoredProject{}
	}
	for i := range t.TailoredProjects {
		t.TailoredProjects[i].Bullets = ensureSlice(t.TailoredProjects[i].Bullets)
	}
	t.CoverLetterHighlights = ensureSlice(t.CoverLetterHighlights)
}

// EmptyTailoredResume returns a tailored resume with every field empty. It is
// the placeholder used when tailoring fails or has not run.
func EmptyTailoredResume() *TailoredResume {
	t := &TailoredResume{}
	t.Normalize()
	return t
}

// AnalysisResult is the combined output of the analyze operation. MatchScore
// is always an integer in [0, 100]. JobMetadata is omitted when metadata
// extraction was skipped or failed; StructuredJD is omitted on the raw-text
// path, which never runs JD extraction.
type AnalysisResult struct {
	MatchScore     int                       `json:"matchScore"`
	MatchedSkills  []string                  `json:"matchedSkills"`
	MissingSkills  []string                  `json:"missingSkills"`
	Suggestions    []string                  `json:"suggestions"`
	SampleBullets  []string                  `json:"sampleBullets"`
	Summary        string                    `json:"summary"`
	StructuredJD   *StructuredJobDescription `json:"structuredJD,omitempty"`
	TailoredResume *TailoredResume           `json:"tailoredResume"`
	JobMetadata    *JobMetadataResponse      `json:"jobMetadata,omitempty"`
}

func ensureSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

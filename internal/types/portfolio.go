// Package types provides type definitions for structured data used throughout the portfolio-generator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DefaultSkillLevel is the tier label assigned to a freshly added skill entry.
const DefaultSkillLevel = "intermediate"

// EducationEntry is one row of the education section
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// SkillEntry is one row of the skills section. Level is a free-form tier label.
type SkillEntry struct {
	Name        string `json:"name"`
	Level       string `json:"level,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry is one row of the projects section
type ProjectEntry struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

// ExperienceEntry is one row of the experience section
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// PortfolioDraft is the structured document assembled by the wizard.
// Every collection holds at least one entry at all times; display order is
// slice order.
type PortfolioDraft struct {
	Name       string            `json:"name" validate:"required"`
	Title      string            `json:"title" validate:"required"`
	Email      string            `json:"email" validate:"required,email"`
	Phone      string            `json:"phone,omitempty"`
	About      string            `json:"about" validate:"required"`
	Education  []EducationEntry  `json:"education" validate:"min=1"`
	Skills     []SkillEntry      `json:"skills" validate:"min=1"`
	Projects   []ProjectEntry    `json:"projects" validate:"min=1"`
	Experience []ExperienceEntry `json:"experience" validate:"min=1"`
}

// NewDraft returns an empty draft seeded with one default entry per collection,
// matching the state a user sees on the first wizard step.
func NewDraft() PortfolioDraft {
	return PortfolioDraft{
		Education:  []EducationEntry{{}},
		Skills:     []SkillEntry{{Level: DefaultSkillLevel}},
		Projects:   []ProjectEntry{{}},
		Experience: []ExperienceEntry{{}},
	}
}

// Clone returns a deep copy of the draft. Collection slices are copied so the
// result can be handed out without aliasing the original.
func (d PortfolioDraft) Clone() PortfolioDraft {
	out := d
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Skills = append([]SkillEntry(nil), d.Skills...)
	out.Projects = append([]ProjectEntry(nil), d.Projects...)
	out.Experience = append([]ExperienceEntry(nil), d.Experience...)
	return out
}

// EnhanceRequest is the wire shape for POST /api/enhance-content
type EnhanceRequest struct {
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	About      string            `json:"about"`
	Skills     []SkillEntry      `json:"skills"`
	Projects   []ProjectEntry    `json:"projects"`
	Experience []ExperienceEntry `json:"experience"`
}

// EnhancedContent carries the fields the enhancement service chose to improve.
// A nil field means "no change"; a present field replaces the current value
// wholesale.
type EnhancedContent struct {
	About    *string        `json:"about,omitempty"`
	Skills   []SkillEntry   `json:"skills,omitempty"`
	Projects []ProjectEntry `json:"projects,omitempty"`
}

// EnhanceResponse is the wire shape returned by the enhancement endpoint
type EnhanceResponse struct {
	Success     bool            `json:"success"`
	Enhanced    EnhancedContent `json:"enhanced"`
	Suggestions []string        `json:"suggestions"`
}

// GenerateRequest is the wire shape for POST /api/generate-portfolio
type GenerateRequest struct {
	Data     PortfolioDraft `json:"data"`
	Template string         `json:"template"`
}

// GenerateResponse is the wire shape returned by the generation endpoint.
// PortfolioID is the opaque artifact handle consumed by the downloader.
type GenerateResponse struct {
	Success       bool   `json:"success"`
	PortfolioID   string `json:"portfolioId"`
	DownloadReady bool   `json:"downloadReady"`
	Message       string `json:"message"`
}

// EnhanceRequestFromDraft extracts the textual content the enhancement
// service is contracted to work on.
func EnhanceRequestFromDraft(d PortfolioDraft) EnhanceRequest {
	return EnhanceRequest{
		Name:       d.Name,
		Title:      d.Title,
		About:      d.About,
		Skills:     append([]SkillEntry(nil), d.Skills...),
		Projects:   append([]ProjectEntry(nil), d.Projects...),
		Experience: append([]ExperienceEntry(nil), d.Experience...),
	}
}

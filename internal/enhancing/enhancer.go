// Package enhancing improves portfolio content with an LLM, falling back to
// deterministic enhancements when the model is unavailable.
package enhancing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/portfolio-generator/internal/llm"
	"github.com/jonathan/portfolio-generator/internal/prompts"
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Result carries the enhanced content plus improvement suggestions
type Result struct {
	Enhanced    types.EnhancedContent
	Suggestions []string
}

// Enhancer produces enhanced portfolio content from a request
type Enhancer interface {
	Enhance(ctx context.Context, req *types.EnhanceRequest) (*Result, error)
}

// GeminiEnhancer enhances content via the Gemini API. Model or parse
// failures degrade to Fallback rather than surfacing an error.
type GeminiEnhancer struct {
	client llm.Client
}

// NewGeminiEnhancer creates an enhancer backed by the given LLM client
func NewGeminiEnhancer(client llm.Client) *GeminiEnhancer {
	return &GeminiEnhancer{client: client}
}

// Enhance runs the enhancement prompt and parses the model's JSON response
func (e *GeminiEnhancer) Enhance(ctx context.Context, req *types.EnhanceRequest) (*Result, error) {
	prompt := BuildPrompt(req)

	responseText, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("enhancement model call failed, using fallback: %v", err)
		return Fallback(req), nil
	}

	result, err := parseResponse(responseText, req)
	if err != nil {
		log.Printf("failed to parse enhancement response, using fallback: %v", err)
		return Fallback(req), nil
	}

	return result, nil
}

// BuildPrompt assembles the enhancement prompt from the request content
func BuildPrompt(req *types.EnhanceRequest) string {
	template := prompts.MustGet("enhance.json", "enhance_portfolio")
	return prompts.Format(template, map[string]string{
		"Name":       req.Name,
		"Title":      req.Title,
		"About":      req.About,
		"Skills":     formatSkills(req.Skills),
		"Projects":   formatProjects(req.Projects),
		"Experience": formatExperience(req.Experience),
	})
}

func formatSkills(skills []types.SkillEntry) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func formatProjects(projects []types.ProjectEntry) string {
	if len(projects) == 0 {
		return "No projects provided"
	}
	lines := make([]string, 0, len(projects))
	for i, p := range projects {
		title := p.Title
		if title == "" {
			title = "Untitled"
		}
		desc := p.Description
		if desc == "" {
			desc = "No description"
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %s", i+1, title, desc))
	}
	return strings.Join(lines, "\n")
}

func formatExperience(experience []types.ExperienceEntry) string {
	if len(experience) == 0 {
		return "No experience provided"
	}
	lines := make([]string, 0, len(experience))
	for i, e := range experience {
		position := e.Position
		if position == "" {
			position = "Position"
		}
		company := e.Company
		if company == "" {
			company = "Company"
		}
		desc := e.Description
		if desc == "" {
			desc = "No description"
		}
		lines = append(lines, fmt.Sprintf("%d. %s at %s: %s", i+1, position, company, desc))
	}
	return strings.Join(lines, "\n")
}

// modelResponse is the JSON shape the prompt instructs the model to return
type modelResponse struct {
	About  string `json:"about"`
	Skills []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"skills"`
	Projects []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"projects"`
	Suggestions []string `json:"suggestions"`
}

// parseResponse maps the model output back onto portfolio entries. The model
// only returns names and descriptions, so levels, technologies and links are
// carried over from the request by matching entries.
func parseResponse(text string, req *types.EnhanceRequest) (*Result, error) {
	var parsed modelResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(text)), &parsed); err != nil {
		return nil, fmt.Errorf("invalid enhancement JSON: %w", err)
	}

	result := &Result{Suggestions: parsed.Suggestions}

	if parsed.About != "" {
		about := parsed.About
		result.Enhanced.About = &about
	}

	levels := make(map[string]string, len(req.Skills))
	for _, s := range req.Skills {
		levels[s.Name] = s.Level
	}
	for _, s := range parsed.Skills {
		result.Enhanced.Skills = append(result.Enhanced.Skills, types.SkillEntry{
			Name:        s.Name,
			Level:       levels[s.Name],
			Description: s.Description,
		})
	}

	originals := make(map[string]types.ProjectEntry, len(req.Projects))
	for _, p := range req.Projects {
		originals[p.Title] = p
	}
	for _, p := range parsed.Projects {
		entry := types.ProjectEntry{Title: p.Title, Description: p.Description}
		if orig, ok := originals[p.Title]; ok {
			entry.Technologies = orig.Technologies
			entry.Link = orig.Link
		}
		result.Enhanced.Projects = append(result.Enhanced.Projects, entry)
	}

	return result, nil
}

// Fallback produces a deterministic enhancement used when the model call or
// response parsing fails.
func Fallback(req *types.EnhanceRequest) *Result {
	about := req.About + " Passionate professional with proven expertise in delivering high-quality results."

	skills := make([]types.SkillEntry, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, types.SkillEntry{
			Name:        s.Name,
			Level:       s.Level,
			Description: fmt.Sprintf("Proficient in %s", s.Name),
		})
	}

	projects := make([]types.ProjectEntry, 0, len(req.Projects))
	for _, p := range req.Projects {
		enhanced := p
		enhanced.Description = p.Description + " Delivered with attention to detail and best practices."
		projects = append(projects, enhanced)
	}

	return &Result{
		Enhanced: types.EnhancedContent{
			About:    &about,
			Skills:   skills,
			Projects: projects,
		},
		Suggestions: []string{
			"Consider adding quantifiable achievements to your projects",
			"Include specific technologies and tools in your experience",
			"Highlight leadership and collaboration skills",
		},
	}
}

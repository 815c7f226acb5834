// Package wizard sequences the six fixed data-entry steps of the portfolio builder.
package wizard

import "github.com/jonathan/portfolio-generator/internal/draft"

// Step is one stage of the guided form. Ordinals are 1-based and fixed.
type Step int

// The six wizard steps in display order
const (
	StepBasicInfo Step = iota + 1
	StepEducation
	StepSkills
	StepProjects
	StepExperience
	StepTemplate
)

const stepCount = 6

// Steps returns every step in order
func Steps() []Step {
	return []Step{StepBasicInfo, StepEducation, StepSkills, StepProjects, StepExperience, StepTemplate}
}

// Ordinal returns the 1-based position of the step
func (s Step) Ordinal() int {
	return int(s)
}

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepEducation:
		return "Education"
	case StepSkills:
		return "Skills"
	case StepProjects:
		return "Projects"
	case StepExperience:
		return "Experience"
	case StepTemplate:
		return "Template"
	default:
		return "Unknown"
	}
}

// Collection maps a step to the draft collection it edits. The basic-info and
// template steps edit no collection.
func (s Step) Collection() (draft.Collection, bool) {
	switch s {
	case StepEducation:
		return draft.CollectionEducation, true
	case StepSkills:
		return draft.CollectionSkills, true
	case StepProjects:
		return draft.CollectionProjects, true
	case StepExperience:
		return draft.CollectionExperience, true
	default:
		return "", false
	}
}

// Controller holds the active-step cursor. Navigation is strictly one step at
// a time and never gated on field contents: required-field marking is
// advisory, so a user may advance with empty fields.
type Controller struct {
	current Step
}

// NewController starts at step 1
func NewController() *Controller {
	return &Controller{current: StepBasicInfo}
}

// Step returns the active step
func (c *Controller) Step() Step {
	return c.current
}

// Next advances one step. It reports false (and stays put) on the last step;
// generation is a separate action, not a step.
func (c *Controller) Next() bool {
	if c.current >= Step(stepCount) {
		return false
	}
	c.current++
	return true
}

// Previous retreats one step, clamped at step 1
func (c *Controller) Previous() bool {
	if c.current <= StepBasicInfo {
		return false
	}
	c.current--
	return true
}

// AtGenerationGate reports whether generation may be attempted. Reaching the
// template step does not imply a template has been selected.
func (c *Controller) AtGenerationGate() bool {
	return c.current == StepTemplate
}

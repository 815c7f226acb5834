// Package draft owns the in-progress portfolio document and its mutation API.
// The store is the only writer of the draft value; every other component reads
// through Snapshot.
package draft

import (
	"github.com/jonathan/portfolio-generator/internal/types"
)

// Collection identifies one of the four dynamic sections of the draft
type Collection string

// Collection names match the draft's JSON keys
const (
	CollectionEducation  Collection = "education"
	CollectionSkills     Collection = "skills"
	CollectionProjects   Collection = "projects"
	CollectionExperience Collection = "experience"
)

// Collections returns the fixed set of dynamic sections in display order
func Collections() []Collection {
	return []Collection{CollectionEducation, CollectionSkills, CollectionProjects, CollectionExperience}
}

// Store holds the single mutable portfolio draft. All mutations are
// synchronous; failed mutations leave the draft unchanged.
type Store struct {
	doc types.PortfolioDraft
}

// NewStore creates a store seeded with a fresh draft
func NewStore() *Store {
	return &Store{doc: types.NewDraft()}
}

// NewStoreFrom creates a store holding a copy of an existing draft
func NewStoreFrom(doc types.PortfolioDraft) *Store {
	return &Store{doc: doc.Clone()}
}

// Snapshot returns a deep copy of the current draft for read-only consumption
func (s *Store) Snapshot() types.PortfolioDraft {
	return s.doc.Clone()
}

// Len returns the number of entries in a collection
func (s *Store) Len(c Collection) int {
	switch c {
	case CollectionEducation:
		return len(s.doc.Education)
	case CollectionSkills:
		return len(s.doc.Skills)
	case CollectionProjects:
		return len(s.doc.Projects)
	case CollectionExperience:
		return len(s.doc.Experience)
	default:
		return 0
	}
}

// AddEntry appends a freshly initialized entry to the given collection
func (s *Store) AddEntry(c Collection) error {
	switch c {
	case CollectionEducation:
		s.doc.Education = append(s.doc.Education, types.EducationEntry{})
	case CollectionSkills:
		s.doc.Skills = append(s.doc.Skills, types.SkillEntry{Level: types.DefaultSkillLevel})
	case CollectionProjects:
		s.doc.Projects = append(s.doc.Projects, types.ProjectEntry{})
	case CollectionExperience:
		s.doc.Experience = append(s.doc.Experience, types.ExperienceEntry{})
	default:
		return &UnknownCollectionError{Collection: c}
	}
	return nil
}

// RemoveEntry deletes the entry at index and closes the gap. Removal is
// refused when it would leave the collection empty.
func (s *Store) RemoveEntry(c Collection, index int) error {
	length := s.Len(c)
	switch {
	case length == 0:
		return &UnknownCollectionError{Collection: c}
	case length == 1:
		return &InvariantViolationError{Collection: c}
	case index < 0 || index >= length:
		return &IndexOutOfRangeError{Collection: c, Index: index, Length: length}
	}

	switch c {
	case CollectionEducation:
		s.doc.Education = append(s.doc.Education[:index], s.doc.Education[index+1:]...)
	case CollectionSkills:
		s.doc.Skills = append(s.doc.Skills[:index], s.doc.Skills[index+1:]...)
	case CollectionProjects:
		s.doc.Projects = append(s.doc.Projects[:index], s.doc.Projects[index+1:]...)
	case CollectionExperience:
		s.doc.Experience = append(s.doc.Experience[:index], s.doc.Experience[index+1:]...)
	}
	return nil
}

// UpdateField replaces one field of the entry at index. Field values are free
// text; no content validation is applied.
func (s *Store) UpdateField(c Collection, index int, field, value string) error {
	length := s.Len(c)
	if length == 0 {
		return &UnknownCollectionError{Collection: c}
	}
	if index < 0 || index >= length {
		return &IndexOutOfRangeError{Collection: c, Index: index, Length: length}
	}

	switch c {
	case CollectionEducation:
		return setEducationField(&s.doc.Education[index], c, field, value)
	case CollectionSkills:
		return setSkillField(&s.doc.Skills[index], c, field, value)
	case CollectionProjects:
		return setProjectField(&s.doc.Projects[index], c, field, value)
	case CollectionExperience:
		return setExperienceField(&s.doc.Experience[index], c, field, value)
	}
	return &UnknownCollectionError{Collection: c}
}

// UpdateScalar replaces one of the draft's top-level text fields
func (s *Store) UpdateScalar(field, value string) error {
	switch field {
	case "name":
		s.doc.Name = value
	case "title":
		s.doc.Title = value
	case "email":
		s.doc.Email = value
	case "phone":
		s.doc.Phone = value
	case "about":
		s.doc.About = value
	default:
		return &UnknownFieldError{Field: field}
	}
	return nil
}

// MergeEnhanced applies the enhancement merge policy: each field present in
// the response replaces the current value wholesale, absent fields leave the
// draft untouched. An empty returned collection is treated as absent so the
// non-emptiness invariant holds.
func (s *Store) MergeEnhanced(enhanced types.EnhancedContent) {
	if enhanced.About != nil {
		s.doc.About = *enhanced.About
	}
	if len(enhanced.Skills) > 0 {
		s.doc.Skills = append([]types.SkillEntry(nil), enhanced.Skills...)
	}
	if len(enhanced.Projects) > 0 {
		s.doc.Projects = append([]types.ProjectEntry(nil), enhanced.Projects...)
	}
}

func setEducationField(e *types.EducationEntry, c Collection, field, value string) error {
	switch field {
	case "institution":
		e.Institution = value
	case "degree":
		e.Degree = value
	case "year":
		e.Year = value
	case "description":
		e.Description = value
	default:
		return &UnknownFieldError{Collection: c, Field: field}
	}
	return nil
}

func setSkillField(e *types.SkillEntry, c Collection, field, value string) error {
	switch field {
	case "name":
		e.Name = value
	case "level":
		e.Level = value
	case "description":
		e.Description = value
	default:
		return &UnknownFieldError{Collection: c, Field: field}
	}
	return nil
}

func setProjectField(e *types.ProjectEntry, c Collection, field, value string) error {
	switch field {
	case "title":
		e.Title = value
	case "description":
		e.Description = value
	case "technologies":
		e.Technologies = value
	case "link":
		e.Link = value
	default:
		return &UnknownFieldError{Collection: c, Field: field}
	}
	return nil
}

func setExperienceField(e *types.ExperienceEntry, c Collection, field, value string) error {
	switch field {
	case "company":
		e.Company = value
	case "position":
		e.Position = value
	case "duration":
		e.Duration = value
	case "description":
		e.Description = value
	default:
		return &UnknownFieldError{Collection: c, Field: field}
	}
	return nil
}

package valueobjects

import "fmt"

// ExperienceLevel classifies a job seeker's seniority.
type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceExpert ExperienceLevel = "expert"
)

var validExperienceLevels = map[ExperienceLevel]bool{
	ExperienceEntry:  true,
	ExperienceJunior: true,
	ExperienceMid:    true,
	ExperienceSenior: true,
	ExperienceExpert: true,
}

func NewExperienceLevel(value string) (ExperienceLevel, error) {
	e := ExperienceLevel(value)
	if !e.IsValid() {
		return "", fmt.Errorf("invalid experience level: %s", value)
	}
	return e, nil
}

func (e ExperienceLevel) String() string {
	return string(e)
}

func (e ExperienceLevel) IsValid() bool {
	return validExperienceLevels[e]
}

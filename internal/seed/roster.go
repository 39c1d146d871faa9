package seed

import (
	"fmt"
	"os"

	"teamops-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk shape of a roster definition.
type rosterFile struct {
	Members []rosterEntry `yaml:"members"`
}

type rosterEntry struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Code   string `yaml:"code"`
	Gender string `yaml:"gender"`
}

// LoadRoster reads a roster definition from a YAML file. The roster is fixed
// configuration: it is loaded once and persisted, never mutated through the
// API.
func LoadRoster(path string) ([]models.TeamMember, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if len(file.Members) == 0 {
		return nil, fmt.Errorf("roster file %s defines no members", path)
	}

	members := make([]models.TeamMember, 0, len(file.Members))
	for i, entry := range file.Members {
		if entry.Name == "" || entry.Code == "" {
			return nil, fmt.Errorf("roster entry %d is missing a name or code", i)
		}
		gender := models.Gender(entry.Gender)
		if !gender.IsValid() {
			gender = models.GenderMale
		}
		members = append(members, models.TeamMember{
			Name:     entry.Name,
			Role:     entry.Role,
			Code:     entry.Code,
			Gender:   gender,
			IsActive: true,
		})
	}
	return members, nil
}

// DefaultRoster returns the built-in eight-member squad used when no roster
// file is configured.
func DefaultRoster() []models.TeamMember {
	return []models.TeamMember{
		{Name: "Romeo", Role: "AI Specialist", Code: "ROMEO", Gender: models.GenderMale, IsActive: true},
		{Name: "Arnaz", Role: "Backend Developer", Code: "ARNAZ", Gender: models.GenderMale, IsActive: true},
		{Name: "Frankie", Role: "AI Analyst", Code: "FRANKIE", Gender: models.GenderFemale, IsActive: true},
		{Name: "Ronio", Role: "Junior AI Engineer", Code: "RONIO", Gender: models.GenderMale, IsActive: true},
		{Name: "Raven", Role: "Intern", Code: "RAVEN", Gender: models.GenderMale, IsActive: true},
		{Name: "Ian", Role: "Intern", Code: "IAN", Gender: models.GenderMale, IsActive: true},
		{Name: "Karl", Role: "Intern", Code: "KARL", Gender: models.GenderMale, IsActive: true},
		{Name: "Angelica", Role: "Intern", Code: "ANGELICA", Gender: models.GenderFemale, IsActive: true},
	}
}

package assets

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/skills.yaml
var embeddedSkillsYAML []byte

//go:embed data/achievements.yaml
var embeddedAchievementsYAML []byte

// ErrInvalidCatalog is wrapped by every catalog validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// SkillDef is one entry of the static skill catalog
type SkillDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// AchievementDef is one entry of the static achievement catalog
type AchievementDef struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Catalog is the static content a session is created from. Order is
// preserved from the YAML sources.
type Catalog struct {
	Skills       []SkillDef
	Achievements []AchievementDef
}

type skillsFile struct {
	Skills []SkillDef `yaml:"skills"`
}

type achievementsFile struct {
	Achievements []AchievementDef `yaml:"achievements"`
}

// LoadCatalog parses and validates the skill and achievement documents
func LoadCatalog(skillsYAML, achievementsYAML []byte) (*Catalog, error) {
	var sf skillsFile
	if err := yaml.Unmarshal(skillsYAML, &sf); err != nil {
		return nil, fmt.Errorf("parse skills: %w", err)
	}
	var af achievementsFile
	if err := yaml.Unmarshal(achievementsYAML, &af); err != nil {
		return nil, fmt.Errorf("parse achievements: %w", err)
	}

	cat := &Catalog{Skills: sf.Skills, Achievements: af.Achievements}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Skills) == 0 {
		return fmt.Errorf("%w: no skills", ErrInvalidCatalog)
	}
	seen := make(map[string]bool, len(c.Skills))
	for i, s := range c.Skills {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("%w: skill %d missing id or name", ErrInvalidCatalog, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate skill %q", ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = true
	}

	seen = make(map[string]bool, len(c.Achievements))
	for i, a := range c.Achievements {
		if a.ID == "" || a.Title == "" {
			return fmt.Errorf("%w: achievement %d missing id or title", ErrInvalidCatalog, i)
		}
		if seen[a.ID] {
			return fmt.Errorf("%w: duplicate achievement %q", ErrInvalidCatalog, a.ID)
		}
		seen[a.ID] = true
	}
	return nil
}

// Skill looks up a skill definition by id
func (c *Catalog) Skill(id string) (SkillDef, bool) {
	for _, s := range c.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return SkillDef{}, false
}

// Achievement looks up an achievement definition by id
func (c *Catalog) Achievement(id string) (AchievementDef, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return AchievementDef{}, false
}

var defaultCatalog *Catalog

// Default returns the embedded catalog. It panics if the embedded data is
// broken, which can only happen at build time.
func Default() *Catalog {
	if defaultCatalog == nil {
		cat, err := LoadCatalog(embeddedSkillsYAML, embeddedAchievementsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = cat
	}
	return defaultCatalog
}

// Embedded returns the raw embedded catalog documents
func Embedded() (skills, achievements []byte) {
	return embeddedSkillsYAML, embeddedAchievementsYAML
}

package content

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed data/resources.yaml
var resourcesYAML []byte

type catalogFile struct {
	Tiers []tierSection `yaml:"tiers" validate:"required,min=1,dive"`
}

type tierSection struct {
	Tier   Tier    `yaml:"tier" validate:"required,oneof=A B C"`
	Topics []Topic `yaml:"topics" validate:"required,min=1,dive"`
}

// Catalog is the static tier -> topics mapping, loaded once at startup and
// never mutated afterwards.
type Catalog struct {
	topics map[Tier][]Topic
	order  []Tier
}

// NewCatalog decodes and validates the embedded resource data.
func NewCatalog() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(resourcesYAML, &file); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate resources: %w", err)
	}

	c := &Catalog{topics: make(map[Tier][]Topic, len(file.Tiers))}
	for _, section := range file.Tiers {
		if _, dup := c.topics[section.Tier]; dup {
			return nil, fmt.Errorf("validate resources: duplicate tier %s", section.Tier)
		}
		c.topics[section.Tier] = section.Topics
		c.order = append(c.order, section.Tier)
	}
	return c, nil
}

// Tiers returns the tiers that have topics, in file order.
func (c *Catalog) Tiers() []Tier {
	out := make([]Tier, len(c.order))
	copy(out, c.order)
	return out
}

// Topics returns the ordered topic list for a tier.
func (c *Catalog) Topics(tier Tier) ([]Topic, error) {
	topics, ok := c.topics[tier]
	if !ok {
		return nil, ErrUnknownTier
	}
	return topics, nil
}

// Topic returns the topic at a zero-based index within a tier.
func (c *Catalog) Topic(tier Tier, index int) (Topic, error) {
	topics, err := c.Topics(tier)
	if err != nil {
		return Topic{}, err
	}
	if index < 0 || index >= len(topics) {
		return Topic{}, ErrIndexOutOfRange
	}
	return topics[index], nil
}

package quiz

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/JamesKanneh/computer-literacy-app/internal/content"
)

//go:embed data/quizzes.yaml
var quizzesYAML []byte

type bankFile struct {
	Tiers []bankSection `yaml:"tiers" validate:"required,min=1,dive"`
}

type bankSection struct {
	Tier      content.Tier `yaml:"tier" validate:"required,oneof=A B C"`
	Questions []Question   `yaml:"questions" validate:"required,min=1,dive"`
}

// Bank is the static tier -> questions mapping, loaded once at startup.
type Bank struct {
	questions map[content.Tier][]Question
}

// NewBank decodes and validates the embedded quiz data. Beyond the struct
// tags, every answer index must point inside its own option list.
func NewBank() (*Bank, error) {
	var file bankFile
	if err := yaml.Unmarshal(quizzesYAML, &file); err != nil {
		return nil, fmt.Errorf("decode quizzes: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate quizzes: %w", err)
	}

	b := &Bank{questions: make(map[content.Tier][]Question, len(file.Tiers))}
	for _, section := range file.Tiers {
		for i, q := range section.Questions {
			if q.Answer > len(q.Options) {
				return nil, fmt.Errorf("validate quizzes: tier %s question %d: answer %d out of range (%d options)",
					section.Tier, i+1, q.Answer, len(q.Options))
			}
		}
		b.questions[section.Tier] = section.Questions
	}
	return b, nil
}

// Questions returns the ordered question list for a tier.
func (b *Bank) Questions(tier content.Tier) ([]Question, error) {
	questions, ok := b.questions[tier]
	if !ok {
		return nil, ErrUnknownTier
	}
	return questions, nil
}

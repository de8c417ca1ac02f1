package publish

import (
	"context"
	"fmt"

	"github.com/aescanero/rds-guard/internal/config"
	"github.com/aescanero/rds-guard/internal/eval/cel"
)

// EssentialFields are the decoded fields published in essential mode:
// traffic announcement and traffic program flags, RadioText, program type,
// and traffic announcements signalled for other networks (EON).
var EssentialFields = []string{"ta", "tp", "radiotext", "prog_type", "other_network.ta"}

// expressions maps each recognized mode to its field filter
var expressions = map[config.PublishMode]string{
	config.PublishEssential: `field in ["ta", "tp", "radiotext", "prog_type", "other_network.ta"]`,
	config.PublishAll:       `true`,
}

// Selector decides which decoded fields the MQTT publisher emits
type Selector struct {
	mode       config.PublishMode
	expression string
	evaluator  *cel.Evaluator
}

// NewSelector creates a selector for the resolved PUBLISH_MODE. Modes the
// publisher does not recognize select like essential.
func NewSelector(mode config.PublishMode) (*Selector, error) {
	effective := mode
	if !effective.Known() {
		effective = config.PublishEssential
	}

	evaluator, err := cel.NewEvaluator()
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluator: %w", err)
	}

	expression := expressions[effective]
	if err := evaluator.Validate(expression); err != nil {
		return nil, fmt.Errorf("invalid %s filter: %w", effective, err)
	}

	return &Selector{
		mode:       effective,
		expression: expression,
		evaluator:  evaluator,
	}, nil
}

// Mode returns the mode the selector applies
func (s *Selector) Mode() config.PublishMode {
	return s.mode
}

// Publishes reports whether field gets its own topic
func (s *Selector) Publishes(ctx context.Context, field string) (bool, error) {
	return s.evaluator.Match(ctx, s.expression, map[string]interface{}{
		"field": field,
		"mode":  string(s.mode),
	})
}

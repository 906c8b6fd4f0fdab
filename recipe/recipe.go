package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/danthegoodman1/janitor/registry"
	"github.com/danthegoodman1/janitor/table"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type (
	// Recipe is a named chain of verbs, optionally bound to input and output files.
	Recipe struct {
		Name   string          `yaml:"name"`
		Input  string          `yaml:"input,omitempty"`
		Output string          `yaml:"output,omitempty"`
		Steps  []registry.Step `yaml:"steps" validate:"required,min=1,dive"`
	}
)

var (
	validate = validator.New()

	ErrInvalidRecipe = errors.New("invalid recipe")
)

func Load(path string) (*Recipe, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error in os.ReadFile: %w", err)
	}
	r, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("error parsing recipe %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a recipe. Every verb must already be registered.
func Parse(b []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("error in yaml.Unmarshal: %w", err)
	}
	if err := validate.Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRecipe, err)
	}
	for i, step := range r.Steps {
		if _, err := registry.Lookup(step.Verb); err != nil {
			return nil, fmt.Errorf("error in step %d: %w", i, err)
		}
	}
	return &r, nil
}

// Run applies the recipe steps to t in order.
func Run(ctx context.Context, r *Recipe, t *table.Table) (*table.Table, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("recipe", r.Name).Int("steps", len(r.Steps)).Msg("running recipe")
	out, err := registry.ApplyPlan(ctx, t, r.Steps)
	if err != nil {
		return nil, fmt.Errorf("error running recipe %q: %w", r.Name, err)
	}
	return out, nil
}

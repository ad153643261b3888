// Package pipeline provides a sequential stage-based execution pipeline.
package pipeline

import (
	"context"
	"fmt"
)

// Stage is a single unit of work in a build pipeline.
type Stage interface {
	Name() string
	Execute(ctx context.Context, bc *BuildContext) error
}

// Pipeline executes a sequence of stages in order.
type Pipeline struct {
	stages []Stage
}

// New creates a Pipeline from the given stages.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Stages returns the stages in execution order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Run executes each stage sequentially. It stops on the first error; no stage
// is retried, and no cleanup of earlier stages' output is attempted.
func (p *Pipeline) Run(ctx context.Context, bc *BuildContext) error {
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline cancelled before stage %s: %w", s.Name(), err)
		}
		bc.stageStarted(s.Name())
		if err := s.Execute(ctx, bc); err != nil {
			return fmt.Errorf("stage %s: %w", s.Name(), err)
		}
		bc.stageDone(s.Name())
	}
	return nil
}

// Package build implements the bento build pipeline stages.
package build

import (
	"context"
	"fmt"
	"os"

	"github.com/initializ/bento/pipeline"
)

// StagingStage guarantees a clean, empty staging area before the build starts.
// A leftover staging tree from a prior run is removed wholesale, so stale
// dependency artifacts never leak into the new build.
type StagingStage struct{}

func (s *StagingStage) Name() string { return "prepare-staging" }

func (s *StagingStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	dir := bc.Opts.StagingDir
	if dir == "" {
		return fmt.Errorf("staging directory is not set")
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing stale staging dir %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating staging dir %s: %w", dir, err)
	}

	bc.Debugf("staging area ready", "dir", dir)
	return nil
}

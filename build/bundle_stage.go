package build

import (
	"context"
	"fmt"
	"os"

	"github.com/initializ/bento/pipeline"
)

// BundleStage creates the empty bundle directory that becomes the archive's
// input root. The staging area was just created fresh, so the path must not
// exist yet.
type BundleStage struct{}

func (s *BundleStage) Name() string { return "init-bundle" }

func (s *BundleStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	dir := bc.BundleDir()
	if err := os.Mkdir(dir, 0755); err != nil {
		return fmt.Errorf("creating bundle dir %s: %w", dir, err)
	}
	bc.Debugf("bundle dir created", "dir", dir)
	return nil
}

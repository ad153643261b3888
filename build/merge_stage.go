package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/initializ/bento/pipeline"
)

// MergeStage relocates the installer's output into the bundle root, stripping
// the installer's own "lib/pythonX.Y/site-packages" nesting so that each
// dependency's package directory sits directly under the bundle root.
//
// Entries are moved, not copied; the install tree is not used after this
// stage. An empty match set is a warning unless strict_merge upgrades it to
// an error: installer layout drift otherwise yields a bundle with no
// dependencies and no diagnostic beyond the warning.
type MergeStage struct{}

func (s *MergeStage) Name() string { return "merge-payload" }

func (s *MergeStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	pattern := filepath.Join(bc.InstallDir(), filepath.FromSlash(bc.Config.UnwrapGlob))
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("bad unwrap glob %q: %w", bc.Config.UnwrapGlob, err)
	}

	if len(matches) == 0 {
		if len(bc.Config.Dependencies) == 0 {
			return nil
		}
		msg := fmt.Sprintf("no installed packages matched %s; the bundle will contain no dependencies", pattern)
		if bc.Config.StrictMerge {
			return fmt.Errorf("%s", msg)
		}
		bc.AddWarning(msg)
		return nil
	}

	sort.Strings(matches)
	for _, src := range matches {
		dest := filepath.Join(bc.BundleDir(), filepath.Base(src))
		if err := os.Rename(src, dest); err != nil {
			return fmt.Errorf("moving %s into bundle: %w", src, err)
		}
		bc.MergedPackages = append(bc.MergedPackages, filepath.Base(src))
	}

	bc.Debugf("payload merged", "entries", len(bc.MergedPackages))
	return nil
}

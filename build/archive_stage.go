package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/pipeline"
)

// ArchiveStage packs the bundle directory into the final executable archive.
type ArchiveStage struct{}

func (s *ArchiveStage) Name() string { return "write-archive" }

func (s *ArchiveStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	if bc.Archiver == nil {
		return fmt.Errorf("no archiver available")
	}

	out := bc.Config.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(bc.Opts.WorkDir, out)
	}

	res, err := bc.Archiver.Archive(ctx, archiver.ArchiveOptions{
		SourceDir:   bc.BundleDir(),
		OutputPath:  out,
		Interpreter: bc.Config.Interpreter,
		Compress:    bc.Config.CompressEnabled(),
		Python:      bc.Config.Python,
	})
	if err != nil {
		return err
	}

	bc.ArtifactPath = res.OutputPath
	bc.Debugf("archive written",
		"archiver", bc.Archiver.Name(),
		"path", res.OutputPath,
		"size", res.Size)
	return nil
}

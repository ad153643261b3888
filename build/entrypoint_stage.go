package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/initializ/bento/pipeline"
	"github.com/initializ/bento/types"
)

// EntrypointStage copies the application's entry source file into the bundle
// root under the name the zipapp loader executes. Copy, not move: the source
// file stays in place for future runs.
type EntrypointStage struct{}

func (s *EntrypointStage) Name() string { return "bind-entrypoint" }

func (s *EntrypointStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	src := bc.Config.Entry
	if !filepath.IsAbs(src) {
		src = filepath.Join(bc.Opts.WorkDir, src)
	}
	dest := filepath.Join(bc.BundleDir(), types.EntryFileName)

	if err := copyFile(src, dest); err != nil {
		return fmt.Errorf("binding entry point %s: %w", bc.Config.Entry, err)
	}

	bc.Debugf("entry point bound", "src", src, "dest", dest)
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

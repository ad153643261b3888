package build

import (
	"context"
	"fmt"

	"github.com/initializ/bento/installer"
	"github.com/initializ/bento/pipeline"
)

// InstallStage installs the declared dependencies into an install prefix
// scoped to the staging area. The host's site-packages are neither read nor
// written.
type InstallStage struct{}

func (s *InstallStage) Name() string { return "install-dependencies" }

func (s *InstallStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	if len(bc.Config.Dependencies) == 0 {
		bc.Debugf("no dependencies declared, skipping install")
		return nil
	}
	if bc.Installer == nil {
		return fmt.Errorf("no dependency installer available; install pip or uv")
	}

	res, err := bc.Installer.Install(ctx, installer.InstallOptions{
		TargetDir: bc.InstallDir(),
		Packages:  bc.Config.Dependencies,
		Python:    bc.Config.Python,
		IndexURL:  bc.Config.IndexURL,
	})
	if err != nil {
		return err
	}

	bc.Debugf("dependencies installed",
		"installer", bc.Installer.Name(),
		"target", res.TargetDir,
		"packages", len(res.Packages))
	return nil
}

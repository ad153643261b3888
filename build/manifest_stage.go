package build

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/initializ/bento/pipeline"
)

// ManifestStage writes build-manifest.json next to the artifact with build
// metadata.
type ManifestStage struct{}

func (s *ManifestStage) Name() string { return "write-build-manifest" }

func (s *ManifestStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	manifest := map[string]any{
		"app_id":       bc.Config.AppID,
		"version":      bc.Config.Version,
		"built_at":     time.Now().UTC().Format(time.RFC3339),
		"artifact":     bc.ArtifactPath,
		"entry":        bc.Config.Entry,
		"dependencies": bc.Config.Dependencies,
	}
	if len(bc.MergedPackages) > 0 {
		manifest["merged_packages"] = bc.MergedPackages
	}
	if bc.Installer != nil {
		manifest["installer"] = bc.Installer.Name()
	}
	if bc.Archiver != nil {
		manifest["archiver"] = bc.Archiver.Name()
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling build manifest: %w", err)
	}

	outPath := filepath.Join(filepath.Dir(bc.ArtifactPath), "build-manifest.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing build-manifest.json: %w", err)
	}

	bc.ManifestPath = outPath
	return nil
}

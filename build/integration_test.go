package build

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/pipeline"
	"github.com/initializ/bento/types"
)

func fullPipeline() *pipeline.Pipeline {
	return pipeline.New(
		&StagingStage{},
		&InstallStage{},
		&BundleStage{},
		&MergeStage{},
		&EntrypointStage{},
		&ArchiveStage{},
		&ManifestStage{},
	)
}

func fullContext(t *testing.T, deps ...string) *pipeline.BuildContext {
	t.Helper()
	bc := testContext(t, deps...)
	bc.Installer = &fakeInstaller{}
	bc.Archiver = &archiver.ZipArchiver{}
	if err := os.WriteFile(filepath.Join(bc.Opts.WorkDir, "main.py"), []byte("print('hi')\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return bc
}

func TestPipeline_FullRun(t *testing.T) {
	bc := fullContext(t, "click", "requests")

	if err := fullPipeline().Run(context.Background(), bc); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	sum, err := archiver.Summarize(bc.ArtifactPath)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !sum.HasEntryPoint {
		t.Error("archive missing entry point at root")
	}
	want := []string{"click", "requests"}
	if len(sum.TopLevelDirs) != len(want) {
		t.Fatalf("TopLevelDirs = %v, want %v", sum.TopLevelDirs, want)
	}
	for i, d := range want {
		if sum.TopLevelDirs[i] != d {
			t.Errorf("TopLevelDirs[%d] = %q, want %q", i, sum.TopLevelDirs[i], d)
		}
	}

	// Manifest sits next to the artifact.
	data, err := os.ReadFile(bc.ManifestPath)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if manifest["app_id"] != "demo" {
		t.Errorf("manifest app_id = %v", manifest["app_id"])
	}
}

func TestPipeline_SecondRunStartsClean(t *testing.T) {
	bc := fullContext(t, "click")
	if err := fullPipeline().Run(context.Background(), bc); err != nil {
		t.Fatalf("first Run() error: %v", err)
	}

	// Second run reuses the same staging dir; stage 1 must leave it
	// indistinguishable from a fresh run's.
	bc2 := pipeline.NewBuildContext(bc.Opts)
	bc2.Config = bc.Config
	bc2.Installer = &fakeInstaller{}
	bc2.Archiver = &archiver.ZipArchiver{}

	if err := fullPipeline().Run(context.Background(), bc2); err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	sum, err := archiver.Summarize(bc2.ArtifactPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(sum.TopLevelDirs) != 1 || sum.TopLevelDirs[0] != "click" {
		t.Errorf("second run TopLevelDirs = %v, want [click]", sum.TopLevelDirs)
	}
}

func TestPipeline_StaleFilesDoNotLeak(t *testing.T) {
	bc := fullContext(t, "click")

	// Pre-existing staging dir with unrelated junk.
	stale := filepath.Join(bc.Opts.StagingDir, "bundle", "leftover.txt")
	if err := os.MkdirAll(filepath.Dir(stale), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := fullPipeline().Run(context.Background(), bc); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	sum, err := archiver.Summarize(bc.ArtifactPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range sum.TopLevelFiles {
		if f == "leftover.txt" {
			t.Error("stale file leaked into the final bundle")
		}
	}
}

func TestPipeline_InstallFailureStopsBeforeBundle(t *testing.T) {
	bc := fullContext(t, "no-such-package")
	bc.Installer = &failInstaller{}

	err := fullPipeline().Run(context.Background(), bc)
	if err == nil {
		t.Fatal("Run() error = nil, want install failure")
	}

	// The bundle dir must never have been created.
	if _, statErr := os.Stat(bc.BundleDir()); !os.IsNotExist(statErr) {
		t.Errorf("bundle dir exists after install failure: %v", statErr)
	}
	if bc.ArtifactPath != "" {
		t.Errorf("ArtifactPath = %q, want empty", bc.ArtifactPath)
	}
}

func TestPipeline_ArchiveFailureLeavesBundle(t *testing.T) {
	bc := fullContext(t, "click")
	bc.Archiver = &failArchiver{}

	err := fullPipeline().Run(context.Background(), bc)
	if err == nil {
		t.Fatal("Run() error = nil, want archive failure")
	}

	// Bundle stays on disk; no artifact was produced.
	if _, statErr := os.Stat(filepath.Join(bc.BundleDir(), types.EntryFileName)); statErr != nil {
		t.Errorf("bundle missing after archive failure: %v", statErr)
	}
	out := filepath.Join(bc.Opts.WorkDir, bc.Config.Output)
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("artifact exists after archive failure: %v", statErr)
	}
}

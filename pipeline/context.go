package pipeline

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/installer"
	"github.com/initializ/bento/types"
)

// PipelineOptions carries shared configuration for all pipeline stages.
type PipelineOptions struct {
	// WorkDir is the project directory; relative config paths resolve
	// against it.
	WorkDir string
	// StagingDir is the scratch directory owned by this run.
	StagingDir string
	ConfigPath string
}

// BuildContext carries all state through the build pipeline.
type BuildContext struct {
	Opts      PipelineOptions
	Config    *types.Config
	Installer installer.Installer
	Archiver  archiver.Archiver
	Logger    *log.Logger
	Verbose   bool

	Warnings []string

	// MergedPackages lists the top-level entries relocated into the bundle.
	MergedPackages []string
	// ArtifactPath is set by the archive stage on success.
	ArtifactPath string
	// ManifestPath is set by the manifest stage on success.
	ManifestPath string

	// StageHook, when set, is called as each stage starts and finishes.
	StageHook func(name string, done bool)
}

// NewBuildContext creates a BuildContext with the given options.
func NewBuildContext(opts PipelineOptions) *BuildContext {
	return &BuildContext{Opts: opts}
}

// InstallDir is the isolated install prefix inside the staging area.
func (bc *BuildContext) InstallDir() string {
	return filepath.Join(bc.Opts.StagingDir, "deps")
}

// BundleDir is the directory that becomes the archive's contents.
func (bc *BuildContext) BundleDir() string {
	return filepath.Join(bc.Opts.StagingDir, "bundle")
}

// AddWarning appends a warning message to the build context.
func (bc *BuildContext) AddWarning(msg string) {
	bc.Warnings = append(bc.Warnings, msg)
}

// Debugf logs through the context logger when verbose output is on.
func (bc *BuildContext) Debugf(msg string, keyvals ...any) {
	if bc.Logger != nil && bc.Verbose {
		bc.Logger.Debug(msg, keyvals...)
	}
}

func (bc *BuildContext) stageStarted(name string) {
	if bc.StageHook != nil {
		bc.StageHook(name, false)
	}
	bc.Debugf("stage starting", "stage", name)
}

func (bc *BuildContext) stageDone(name string) {
	if bc.StageHook != nil {
		bc.StageHook(name, true)
	}
	bc.Debugf("stage complete", "stage", name)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/initializ/bento/archiver"
	"github.com/initializ/bento/build"
	"github.com/initializ/bento/config"
	"github.com/initializ/bento/installer"
	"github.com/initializ/bento/internal/tui"
	"github.com/initializ/bento/pipeline"
	"github.com/initializ/bento/validate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	installerArg string
	archiverArg  string
	stagingArg   string
	outputArg    string
	strictMerge  bool
	plainOutput  bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the executable archive",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&installerArg, "installer", "", "force specific installer (pip, uv)")
	buildCmd.Flags().StringVar(&archiverArg, "archiver", "", "force specific archiver (zipapp, zip)")
	buildCmd.Flags().StringVar(&stagingArg, "staging-dir", "", "override the staging directory")
	buildCmd.Flags().StringVarP(&outputArg, "output", "o", "", "override the output archive path")
	buildCmd.Flags().BoolVar(&strictMerge, "strict-merge", false, "treat an empty dependency merge as an error")
	buildCmd.Flags().BoolVar(&plainOutput, "plain", false, "disable the live progress display")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfgPath = filepath.Join(wd, cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flag overrides
	if installerArg != "" {
		cfg.Installer = installerArg
	}
	if archiverArg != "" {
		cfg.Archiver = archiverArg
	}
	if stagingArg != "" {
		cfg.StagingDir = stagingArg
	}
	if outputArg != "" {
		cfg.Output = outputArg
	}
	if strictMerge {
		cfg.StrictMerge = true
	}

	// Pre-validate config
	result := validate.ValidateConfig(cfg)
	if !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", e)
		}
		return fmt.Errorf("config validation failed: %d error(s)", len(result.Errors))
	}

	workDir := filepath.Dir(cfgPath)
	stagingDir := cfg.StagingDir
	if !filepath.IsAbs(stagingDir) {
		stagingDir = filepath.Join(workDir, stagingDir)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bento"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	bc := pipeline.NewBuildContext(pipeline.PipelineOptions{
		WorkDir:    workDir,
		StagingDir: stagingDir,
		ConfigPath: cfgPath,
	})
	bc.Config = cfg
	bc.Logger = logger
	bc.Verbose = verbose
	bc.Warnings = append(bc.Warnings, result.Warnings...)

	// Select the external tools up front so a missing toolchain fails
	// before any filesystem work happens.
	if cfg.Installer != "" {
		bc.Installer = installer.Get(cfg.Installer, cfg.Python)
	} else {
		bc.Installer = installer.Detect(cfg.Python)
	}
	if len(cfg.Dependencies) > 0 && bc.Installer == nil {
		return fmt.Errorf("no dependency installer found; install pip or uv")
	}

	if cfg.Archiver != "" {
		bc.Archiver = archiver.Get(cfg.Archiver, cfg.Python)
	} else {
		bc.Archiver = archiver.Detect(cfg.Python)
	}
	if bc.Archiver == nil {
		return fmt.Errorf("unknown archiver: %s (supported: zipapp, zip)", cfg.Archiver)
	}

	p := pipeline.New(
		&build.StagingStage{},
		&build.InstallStage{},
		&build.BundleStage{},
		&build.MergeStage{},
		&build.EntrypointStage{},
		&build.ArchiveStage{},
		&build.ManifestStage{},
	)

	if plainOutput || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = p.Run(context.Background(), bc)
	} else {
		err = runWithProgress(p, bc)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	for _, w := range bc.Warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w)
	}

	fmt.Printf("Build complete. Artifact: %s\n", bc.ArtifactPath)
	return nil
}

// runWithProgress runs the pipeline under a live bubbletea stage display.
func runWithProgress(p *pipeline.Pipeline, bc *pipeline.BuildContext) error {
	names := make([]string, 0, len(p.Stages()))
	for _, s := range p.Stages() {
		names = append(names, s.Name())
	}

	prog := tea.NewProgram(tui.NewProgressModel(tui.DetectTheme(themeOverride), names))
	bc.StageHook = func(name string, done bool) {
		if done {
			prog.Send(tui.StageDoneMsg{Name: name})
		} else {
			prog.Send(tui.StageStartMsg{Name: name})
		}
	}

	errCh := make(chan error, 1)
	go func() {
		err := p.Run(context.Background(), bc)
		errCh <- err
		prog.Send(tui.BuildDoneMsg{Err: err})
	}()

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("progress display: %w", err)
	}
	return <-errCh
}

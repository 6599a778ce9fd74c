package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repobak/internal/config"
	"repobak/internal/execx"
	"repobak/internal/gh"
	"repobak/internal/git"
	"repobak/internal/installer"
	"repobak/internal/ops"
	"repobak/internal/ui"
)

// Set during compilation.
var Version = "dev"

var (
	flagDir   string
	flagYes   bool
	flagQuiet bool
)

func main() {
	root := &cobra.Command{
		Use:           "repobak",
		Short:         "Automated Git/GitHub backups for a project",
		Long:          "repobak wraps git and the GitHub CLI to install itself into a project,\nlink a private GitHub repository and keep it backed up.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flagDir, "dir", "C", ".", "Project directory to operate on")
	root.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Assume yes on confirmations (disables prompts)")
	root.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print warnings and errors")

	root.AddCommand(
		initCmd(),
		qbackupCmd(),
		commitCmd(),
		statusCmd(),
		newBranchCmd(),
		cleanHistoryCmd(),
		cleanAllCmd(),
		deleteRepoCmd(),
		menuCmd(),
		installCmd(),
	)

	if err := root.Execute(); err != nil {
		if errors.Is(err, ops.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newApp wires the shared dependencies for a command invocation. The config
// is loaded when present; operations that require one check for themselves.
func newApp() *ops.App {
	runner := execx.New()

	var prompt ui.Prompter = ui.SurveyPrompter{}
	if flagYes {
		prompt = ui.AssumeYesPrompter{}
	}

	app := &ops.App{
		Dir:    flagDir,
		Git:    git.New(flagDir, runner),
		Hub:    gh.New(flagDir, runner),
		Prompt: prompt,
		Out:    ui.NewPrinter(flagQuiet),
	}

	if cfg, err := config.Load(flagDir); err == nil {
		app.Config = cfg
	}
	return app
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config and link a GitHub repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().Init()
		},
	}
}

func qbackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qbackup",
		Short: "Stage, commit and push everything with a generated message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().QuickBackup()
		},
	}
}

func commitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit [message]",
		Short: "Back up with a custom commit message",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := ""
			if len(args) == 1 {
				msg = args[0]
			}
			return newApp().Commit(msg)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show branch, changes and sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().Status()
		},
	}
}

func newBranchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-branch",
		Short: "Back up to a fresh branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().NewBranchBackup()
		},
	}
}

func cleanHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-history",
		Short: "Discard commits made by other authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().CleanHistory()
		},
	}
}

func cleanAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-all",
		Short: "Replace all history with a single fresh commit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().CleanAll()
		},
	}
}

func deleteRepoCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete-repo",
		Aliases: []string{"delrepo"},
		Short:   "Delete the linked GitHub repository",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().DeleteRepo()
		},
	}
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive menu over all operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().Menu()
		},
	}
}

func installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <target-dir>",
		Short: "Install repobak and a default config into a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bin, err := os.Executable()
			if err != nil {
				return fmt.Errorf("cannot locate the running executable: %w", err)
			}
			cfg, err := installer.Install(bin, args[0])
			if err != nil {
				return err
			}
			out := ui.NewPrinter(flagQuiet)
			out.Successf("Installed into %s (project %s)", args[0], cfg.ProjectName)
			out.Infof("Run `repobak init` inside the project to link a GitHub repository.")
			return nil
		},
	}
}

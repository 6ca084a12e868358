package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rofi-rbw/internal/app"
	"rofi-rbw/internal/debug"
)

var version = "0.3.0"

type rootFlags struct {
	configPath  string
	debug       bool
	action      string
	prompt      string
	rofiArgs    string
	selector    string
	clipboarder string
	typer       string
	showHelp    bool
}

func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}
	defaults := app.DefaultOptions()

	root := &cobra.Command{
		Use:           "rofi-rbw",
		Short:         "Insert or copy passwords and usernames from Bitwarden using rofi",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			return newService(flags).Run(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Read options from this TOML file instead of the default locations")
	pf.BoolVar(&flags.debug, "debug", false, "Print debug output to stderr")
	pf.StringVarP(&flags.action, "action", "a", string(defaults.Action), "What to do with the selected entry: "+actionChoices())
	pf.StringVarP(&flags.prompt, "prompt", "r", defaults.Prompt, "Set rofi-rbw's prompt")
	pf.StringVar(&flags.rofiArgs, "rofi-args", "", "A string of arguments to give to rofi")
	pf.StringVar(&flags.selector, "selector", "", "Choose the application to select the entry with: "+backendChoices(app.KindSelector))
	pf.StringVar(&flags.clipboarder, "clipboarder", "", "Choose the application to access the clipboard with: "+backendChoices(app.KindClipboarder))
	pf.StringVar(&flags.typer, "typer", "", "Choose the application to type with: "+backendChoices(app.KindTyper))
	pf.BoolVar(&flags.showHelp, "show-help", defaults.ShowHelp, "Show a help message about the shortcuts")

	root.AddCommand(newBackendsCommand(flags))
	root.AddCommand(newConfigCommand(flags))

	return root
}

func newService(flags *rootFlags) *app.Service {
	var log *debug.Logger
	if flags.debug {
		log = debug.NewLogger(os.Stderr)
	}
	return app.NewService(app.NewExecRunner(log), log)
}

// resolveOptions layers explicitly set flags over the config files.
func resolveOptions(fs *pflag.FlagSet, flags *rootFlags) (app.Options, error) {
	cfg, err := app.LoadConfig(flags.configPath)
	if err != nil {
		return app.Options{}, err
	}
	return cfg.Merge(flagConfig(fs, flags)).Options()
}

func flagConfig(fs *pflag.FlagSet, flags *rootFlags) app.FileConfig {
	var cfg app.FileConfig
	if fs.Changed("action") {
		cfg.Action = &flags.action
	}
	if fs.Changed("prompt") {
		cfg.Prompt = &flags.prompt
	}
	if fs.Changed("rofi-args") {
		cfg.RofiArgs = &flags.rofiArgs
	}
	if fs.Changed("show-help") {
		cfg.ShowHelp = &flags.showHelp
	}
	if fs.Changed("selector") {
		cfg.Selector = &flags.selector
	}
	if fs.Changed("clipboarder") {
		cfg.Clipboarder = &flags.clipboarder
	}
	if fs.Changed("typer") {
		cfg.Typer = &flags.typer
	}
	return cfg
}

func newBackendsCommand(flags *rootFlags) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "backends",
		Short: "Show installed backends and which ones would be used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			reports := newService(flags).Backends(opts)
			out := cmd.OutOrStdout()
			if jsonOut {
				return printJSON(out, reports)
			}
			for _, item := range reports {
				fmt.Fprintf(out, "%s\n", item.Kind)
				if item.Override != "" {
					fmt.Fprintf(out, "  override: %s\n", item.Override)
				}
				for _, candidate := range item.Candidates {
					marker := " "
					if candidate.Selected {
						marker = "*"
					}
					fmt.Fprintf(out, "  %s %-10s installed: %v\n", marker, candidate.Name, candidate.Available)
				}
				if item.Error != "" {
					fmt.Fprintf(out, "  error: %s\n", item.Error)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func newConfigCommand(flags *rootFlags) *cobra.Command {
	config := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	config.AddCommand(newConfigShowCommand(flags))
	config.AddCommand(newConfigInitCommand())
	return config
}

func newConfigShowCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective options as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd.Flags(), flags)
			if err != nil {
				return err
			}
			out, err := app.FileConfigFromOptions(opts).Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool
	var path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				userPath, err := app.UserConfigPath()
				if err != nil {
					return app.WrapExit(app.ExitIOFailure, err)
				}
				target = userPath
			}
			if err := app.InitConfig(target, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", target)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&path, "path", "", "Write to this path instead of the user config location")
	return cmd
}

func printJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func actionChoices() string {
	names := make([]string, 0, len(app.AllActions))
	for _, action := range app.AllActions {
		names = append(names, string(action))
	}
	return strings.Join(names, ", ")
}

func backendChoices(kind app.BackendKind) string {
	return strings.Join(app.CandidateNames(kind), ", ")
}

// Package cli implements the passforge command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/render"
	"github.com/passforge/passforge-go/internal/service"
	"github.com/passforge/passforge-go/internal/strength"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=1.2.3".
var version = "dev"

const (
	maxCount = 100
	barWidth = 30
)

// CopyFunc places text on the system clipboard.
type CopyFunc func(text string) error

type rootOptions struct {
	configPath string
	length     int
	categories []string
	count      int
	copy       bool
	noColor    bool
	noStrength bool
	verbose    bool
}

// Execute runs the CLI against the process's arguments and streams.
func Execute() error {
	return NewRootCmd(clipboard.WriteAll).Execute()
}

// NewRootCmd builds the command tree. copyFn backs the --copy flag.
func NewRootCmd(copyFn CopyFunc) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "passforge",
		Short:         "Generate strong random passwords",
		Long:          "passforge generates passwords that contain at least one character from every selected category and rates how long they would take to crack.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, copyFn)
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/passforge/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVarP(&opts.length, "length", "l", crypto.DefaultLength, "password length")
	flags.StringSliceVarP(&opts.categories, "categories", "c", crypto.AllCategories.Names(), "character categories: upper, lower, digit, symbol")
	flags.IntVarP(&opts.count, "count", "n", 1, "number of passwords to generate")
	flags.BoolVar(&opts.copy, "copy", false, "copy the generated passwords to the clipboard")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.noStrength, "no-strength", false, "do not print the strength estimate")

	cmd.AddCommand(newTokenCmd(opts), newVersionCmd())
	return cmd
}

// preferenceSource supplies the request resolved from flags and config.
// Defaults are already applied by viper, so the request is used as is.
type preferenceSource struct {
	req crypto.Request
}

func (s preferenceSource) Request(crypto.Request) crypto.Request {
	return s.req
}

func loadPreferences(cmd *cobra.Command, opts *rootOptions) (config.Preferences, error) {
	v := config.NewViper(opts.configPath)
	if err := v.BindEnv("jwt_secret", "PASSFORGE_JWT_SECRET", "JWT_SECRET"); err != nil {
		return config.Preferences{}, err
	}

	prefs, err := config.LoadPreferences(v)
	if err != nil {
		return config.Preferences{}, err
	}

	// Flags given on the command line win over config and environment.
	flags := cmd.Flags()
	if flags.Changed("length") {
		prefs.Length = opts.length
	}
	if flags.Changed("categories") {
		prefs.Categories = opts.categories
	}
	slog.Debug("preferences loaded", "config_file", v.ConfigFileUsed(), "length", prefs.Length, "categories", prefs.Categories)
	return prefs, nil
}

func runGenerate(cmd *cobra.Command, opts *rootOptions, copyFn CopyFunc) error {
	if opts.count < 1 || opts.count > maxCount {
		return fmt.Errorf("count must be between 1 and %d", maxCount)
	}

	prefs, err := loadPreferences(cmd, opts)
	if err != nil {
		return err
	}
	req, err := prefs.Request()
	if err != nil {
		return err
	}

	svc := service.NewGeneratorService(
		crypto.NewGenerator(prefs.Bounds()),
		strength.NewScorer(nil),
		crypto.DefaultRequest(),
	)

	out := cmd.OutOrStdout()
	color := prefs.Color && !opts.noColor && isTerminal(out)
	passwords := make([]string, 0, opts.count)

	for i := 0; i < opts.count; i++ {
		resp, err := svc.Generate(cmd.Context(), preferenceSource{req: req})
		if err != nil {
			return err
		}
		passwords = append(passwords, resp.Password)

		fmt.Fprintln(out, render.Password(crypto.Password(resp.Password), color))
		if !opts.noStrength {
			score := strength.Score{Value: resp.Score, Estimate: resp.CrackTime}
			fmt.Fprintln(out, render.StrengthBar(score, barWidth, color))
		}
	}

	if opts.copy {
		if err := copyFn(strings.Join(passwords, "\n")); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passforge version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "passforge %s\n", version)
		},
	}
}

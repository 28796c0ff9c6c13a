package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vk/recipekit/internal/app"
	"github.com/vk/recipekit/internal/ctxlog"
	"github.com/vk/recipekit/internal/registry"
)

// state carries the writers and the resolved configuration shared by all
// subcommands.
type state struct {
	out  io.Writer
	errW io.Writer
	cfg  *app.Config

	configPath  string
	registryURL string
	logLevel    string
	logFormat   string
}

// New builds the root command. Normal output goes to out, logs to errW.
func New(out, errW io.Writer) *cobra.Command {
	s := &state{out: out, errW: errW}

	root := &cobra.Command{
		Use:           "recipekit",
		Short:         "Inspect package recipes and query the package registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.configure(cmd)
		},
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", "", "Path to a settings file (default: "+app.DefaultSettingsFile+" if present).")
	root.PersistentFlags().StringVar(&s.registryURL, "registry", "", "Registry base URL.")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Log level: 'debug', 'info', 'warn', or 'error'.")
	root.PersistentFlags().StringVar(&s.logFormat, "log-format", "", "Log format: 'text' or 'json'.")

	root.AddCommand(newParseCmd(s))
	root.AddCommand(newVersionsCmd(s))
	root.AddCommand(newRecipeCmd(s))
	root.AddCommand(newDownloadCmd(s))
	return root
}

// configure resolves the settings file and flag overrides into a validated
// Config and embeds a matching logger into the command context.
func (s *state) configure(cmd *cobra.Command) error {
	var cfg app.Config

	// An explicitly named settings file must load; the default one is only
	// used when it exists.
	if s.configPath != "" {
		if err := app.LoadSettings(s.configPath, &cfg); err != nil {
			return err
		}
	} else if _, err := os.Stat(app.DefaultSettingsFile); err == nil {
		if err := app.LoadSettings(app.DefaultSettingsFile, &cfg); err != nil {
			return err
		}
	}

	if s.registryURL != "" {
		cfg.RegistryURL = s.registryURL
	}
	if s.logLevel != "" {
		cfg.LogLevel = s.logLevel
	}
	if s.logFormat != "" {
		cfg.LogFormat = s.logFormat
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return err
	}
	s.cfg = validated

	logger := app.NewLogger(validated.LogLevel, validated.LogFormat, s.errW)
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

// client builds a registry client from the resolved configuration.
func (s *state) client() (*registry.Client, error) {
	return registry.New(s.cfg.RegistryURL,
		registry.WithCacheTTL(s.cfg.CacheTTL),
		registry.WithMaxAttempts(s.cfg.MaxAttempts),
	)
}

package cli

import (
	"context"
	"fmt"

	"task-manager/internal/config"

	"github.com/spf13/cobra"
)

// BuildInfo carries version metadata injected at link time
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd          *cobra.Command
	info         BuildInfo
	errorHandler *ErrorHandler
	configPath   string
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(info BuildInfo) *RootCommand {
	root := &RootCommand{
		info:         info,
		errorHandler: NewErrorHandler(),
	}

	root.cmd = &cobra.Command{
		Use:   "taskd",
		Short: "A small HTTP API for managing tasks",
		Long: `taskd serves a JSON API for creating, listing, updating and deleting tasks.
Tasks live in memory and are lost when the process exits.

ENDPOINTS:
  POST   /api/tasks          Create a task
  GET    /api/tasks          List all tasks
  GET    /api/tasks/{id}     Fetch a task
  PUT    /api/tasks/{id}     Replace a task
  DELETE /api/tasks/{id}     Delete a task
  GET    /healthz            Health report

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file (--config or TM_CONFIG) > defaults

    TM_SERVER_ADDR                   Listen address (default: :8080)
    TM_SERVER_READ_TIMEOUT           HTTP read timeout (default: 10s)
    TM_SERVER_WRITE_TIMEOUT          HTTP write timeout (default: 10s)
    TM_SERVER_SHUTDOWN_TIMEOUT       Graceful shutdown timeout (default: 10s)
    TM_SERVER_MAX_BODY_BYTES         Maximum request body size (default: 1048576)
    TM_STORE_DRIVER                  Task store: memory or sqlite (default: memory)
    TM_VALIDATION_NAME_MAX           Maximum task name length (default: 100)
    TM_VALIDATION_DESCRIPTION_MAX    Maximum description length (default: 500)
    TM_LOG_LEVEL                     debug, info, warn or error (default: info)
    TM_LOG_FORMAT                    json or text (default: json)
    TM_DEBUG                         Print developer tracing to stderr when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with a context that subcommands observe
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.StringVar(&r.configPath, "config", "", "Path to a YAML config file (overrides TM_CONFIG)")
	flags.String("addr", "", "Listen address (overrides TM_SERVER_ADDR)")
	flags.String("store", "", "Task store driver: memory or sqlite (overrides TM_STORE_DRIVER)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: json or text (overrides TM_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newServeCommand(),
		r.newConfigCommand(),
		r.newVersionCommand(),
	)
}

// loadConfig runs the configuration cascade and applies flags that were set explicitly
func (r *RootCommand) loadConfig() (*config.Config, error) {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("addr") {
		addr, _ := flags.GetString("addr")
		overrides.Addr = &addr
	}
	if flags.Changed("store") {
		driver, _ := flags.GetString("store")
		overrides.StoreDriver = &driver
	}
	if flags.Changed("log-level") {
		level, _ := flags.GetString("log-level")
		overrides.LogLevel = &level
	}
	if flags.Changed("log-format") {
		format, _ := flags.GetString("log-format")
		overrides.LogFormat = &format
	}

	cfg, err := config.NewLoader(r.configPath).LoadWithOverrides(overrides)
	if err != nil {
		return nil, r.errorHandler.Handle("load configuration", err)
	}
	return cfg, nil
}

// newVersionCommand prints build metadata
func (r *RootCommand) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "taskd %s\n", r.info.Version)
			fmt.Fprintf(out, "  commit: %s\n", r.info.Commit)
			fmt.Fprintf(out, "  built:  %s\n", r.info.Date)
			return nil
		},
	}
}

// newConfigCommand prints the effective configuration
func (r *RootCommand) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	}
}

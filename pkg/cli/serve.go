package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/getmockd/stagehttpd/pkg/config"
	"github.com/getmockd/stagehttpd/pkg/logging"
	"github.com/getmockd/stagehttpd/pkg/remap"
	"github.com/getmockd/stagehttpd/pkg/router"
	"github.com/getmockd/stagehttpd/pkg/server"
	"github.com/spf13/cobra"
)

// serveFlags holds the values bound to the root command's flags.
type serveFlags struct {
	host            string
	configFile      string
	docRoot         string
	logLevel        string
	logFormat       string
	hide            []string
	shutdownTimeout time.Duration
}

func (f *serveFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.host, "host", config.DefaultHost, "Address to bind (empty binds every interface)")
	fs.StringVarP(&f.configFile, "config", "c", "", "Path to a YAML config file")
	fs.StringVar(&f.docRoot, "doc-root", "", "Directory served for non-remapped paths (default: working directory)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format (text, json)")
	fs.StringSliceVar(&f.hide, "hide", nil, "Glob pattern of paths answered with 404 (repeatable)")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", server.DefaultShutdownTimeout, "Maximum time to finish the in-flight response on stop")
}

// resolveConfig layers flags and the positional port over config.LoadAll.
func resolveConfig(cmd *cobra.Command, f *serveFlags, args []string, workDir string) (*config.Config, error) {
	cfg, err := config.LoadAll(workDir, f.configFile)
	if err != nil {
		return nil, err
	}

	flagCfg := &config.Config{
		DocRoot:   f.docRoot,
		LogLevel:  f.logLevel,
		LogFormat: f.logFormat,
		Hide:      f.hide,
	}
	config.MergeConfig(cfg, flagCfg, config.SourceFlag)

	// An explicit empty host must still win over a file or env value.
	if cmd.Flags().Changed("host") {
		cfg.Host = f.host
		cfg.Sources["host"] = config.SourceFlag
	}

	if len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("invalid port %q: must be a number", args[0])
		}
		cfg.Port = port
		cfg.Sources["port"] = config.SourceFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, f *serveFlags, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	cfg, err := resolveConfig(cmd, f, args, workDir)
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})

	table, err := remap.Default(cfg.Root, cfg.Remaps)
	if err != nil {
		if errors.Is(err, remap.ErrRootNotSet) {
			return fmt.Errorf("%w: set %s or root in a config file", err, config.EnvGinsuRoot)
		}
		return fmt.Errorf("failed to build remap table: %w", err)
	}

	docRoot := cfg.ResolveDocRoot(workDir)
	log.Debug("configuration loaded",
		"sources", cfg.Sources,
		"docRoot", docRoot,
		"remapRoots", table.Roots(),
	)
	log.Debug("remap table built", "count", table.Len(), "entries", table.Entries())

	var srv *server.Server
	rt := router.New(table, docRoot, stopperFunc(func() { srv.RequestStop() }),
		router.WithLogger(log),
		router.WithHidePatterns(cfg.Hide),
	)
	srv = server.New(cfg.Addr(), router.AccessLog(log, rt),
		server.WithLogger(log),
		server.WithShutdownTimeout(f.shutdownTimeout),
	)

	return srv.Start(cmd.Context())
}

// stopperFunc adapts a function to router.Stopper.
type stopperFunc func()

func (f stopperFunc) RequestStop() { f() }

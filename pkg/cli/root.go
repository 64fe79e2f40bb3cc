package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// NewRootCommand builds the stagehttpd command tree.
func NewRootCommand() *cobra.Command {
	var flags serveFlags

	root := &cobra.Command{
		Use:   "stagehttpd [port]",
		Short: "stagehttpd is a quittable static file server for browser tests",
		Long: `stagehttpd serves files from the working directory for browser-driven tests.
Requests under /closure/ and /jsunit/ are served from $GINSU_ROOT/third_party.
A GET request carrying ?quit=1 stops the server after it has been answered.

Configuration can be provided via flags, environment variables, or a configuration file.
stagehttpd reads ~/.config/stagehttpd/config.yaml and ./.stagehttpdrc.yaml when present.`,
		Example: `  # Serve on the default port 5103
  GINSU_ROOT=$HOME/src/ginsu stagehttpd

  # Serve on port 8000, loopback only
  stagehttpd 8000 --host 127.0.0.1

  # Stop it again
  stagehttpd stop --port 8000`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &flags, args)
		},
	}

	flags.register(root)
	root.AddCommand(newStopCmd(), newVersionCmd())
	return root
}

// Execute runs the root command with os.Args. SIGINT and SIGTERM stop the
// server the same way a quit request does.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

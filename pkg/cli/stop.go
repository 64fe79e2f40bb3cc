package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/getmockd/stagehttpd/pkg/config"
	"github.com/getmockd/stagehttpd/pkg/server"
	"github.com/spf13/cobra"
)

// stopPollInterval is how often stop checks whether the port was released.
const stopPollInterval = 50 * time.Millisecond

func newStopCmd() *cobra.Command {
	var (
		host    string
		port    int
		timeout int
	)

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop a running stagehttpd server",
		Long: `Send GET /?quit=1 to a running stagehttpd and wait until it stops listening.

The port defaults to STAGEHTTPD_PORT, then 5103.`,
		Example: `  # Stop the server on the default port
  stagehttpd stop

  # Stop a server on a custom port with a longer timeout
  stagehttpd stop --port 8000 --timeout 30`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.NewDefault()
			config.LoadEnvConfig(cfg)
			if cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			return runStop(cmd.Context(), cmd.OutOrStdout(), cfg.Host, cfg.Port, time.Duration(timeout)*time.Second)
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "Host the server is bound to")
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "Port the server is listening on")
	cmd.Flags().IntVar(&timeout, "timeout", 10, "Timeout in seconds to wait for shutdown")
	return cmd
}

// runStop sends the quit request and waits until the port refuses connections.
func runStop(ctx context.Context, out io.Writer, host string, port int, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	quitURL := server.ShutdownURL(host, port)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, quitURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("stagehttpd is not reachable at %s: %w", quitURL, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server at %s answered %d to the quit request", quitURL, resp.StatusCode)
	}

	u, err := url.Parse(quitURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Stopping stagehttpd on %s... ", u.Host)
	if err := waitForClose(ctx, u.Host); err != nil {
		fmt.Fprintln(out, "timeout")
		return fmt.Errorf("server on %s still accepting connections: %w", u.Host, err)
	}
	fmt.Fprintln(out, "done")
	return nil
}

func waitForClose(ctx context.Context, addr string) error {
	var d net.Dialer
	ticker := time.NewTicker(stopPollInterval)
	defer ticker.Stop()

	for {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		_ = conn.Close()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

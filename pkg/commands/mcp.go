package commands

import (
	"fmt"
	"io"
	"net"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/todo/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		addr      string
		path      string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "serve the task list to assistants over MCP",
		Long: base.Wrap80(`Serve the task list over the Model Context Protocol. Assistants can
list, add, edit, complete and delete tasks. Use --transport stdio when the
client launches todo itself.`),
		Example: `
todo mcp
todo mcp --addr :9000
todo mcp --transport stdio
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			runner, err := mcpRunner(transport, addr, path, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			// stdout may carry the protocol; logs go to the log file.
			s, err := openSession(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			runner.Service = s.Service
			runner.RemovalDelay = s.Config.RemovalDelay()
			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "http or stdio")
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address for http (port 0 picks one)")
	cmd.Flags().StringVar(&path, "path", "/mcp", "endpoint path for http")

	topLevel.AddCommand(cmd)
}

// mcpRunner validates the flags and builds a runner without a service.
func mcpRunner(transport, addr, path string, out io.Writer) (mcp.Runner, error) {
	r := mcp.Runner{
		Name:    "todo",
		Version: version,
	}
	switch mcp.Transport(transport) {
	case mcp.TransportStdio:
		r.Transport = mcp.TransportStdio
	case "", mcp.TransportHTTP:
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return r, fmt.Errorf("invalid --addr %q: %w", addr, err)
		}
		r.Transport = mcp.TransportHTTP
		r.HTTPListenAddr = addr
		r.HTTPEndpointPath = path
		r.OnHTTPListening = func(a net.Addr) {
			_, _ = fmt.Fprintf(out, "serving MCP on http://%s%s\n", a, path)
		}
	default:
		return r, fmt.Errorf("unknown transport %q, want http or stdio", transport)
	}
	return r, nil
}

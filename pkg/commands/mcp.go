package commands

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/advcontrol/pkg/app"
	"tableflip.dev/advcontrol/pkg/runner/mcp"
	"tableflip.dev/advcontrol/pkg/screens"
)

type mcpOptions struct {
	transport   string
	httpHost    string
	httpPort    int
	httpPath    string
	httpTLSCert string
	httpTLSKey  string
}

func addMCP(topLevel *cobra.Command) {
	mo := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch a read-only MCP server that exposes the dashboard, agenda, cases and
financial records of the signed-in user through the Model Context Protocol.`,
		Example: `
advcontrol mcp --transport stdio
advcontrol mcp --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withScreens(cmd, func(_ *app.App, set *screens.Set) error {
				runner, err := mo.runner(set, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				return runner.Do(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&mo.transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&mo.httpHost, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&mo.httpPort, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&mo.httpPath, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&mo.httpTLSCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&mo.httpTLSKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

func (mo *mcpOptions) runner(set *screens.Set, out io.Writer) (*mcp.Runner, error) {
	path := strings.TrimSpace(mo.httpPath)
	if path == "" {
		path = "/mcp"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	runner := &mcp.Runner{
		Screens:          set,
		Name:             "advcontrol",
		Version:          version,
		HTTPEndpointPath: path,
		HTTPServerCert:   strings.TrimSpace(mo.httpTLSCert),
		HTTPServerKey:    strings.TrimSpace(mo.httpTLSKey),
	}

	switch strings.ToLower(strings.TrimSpace(mo.transport)) {
	case "", string(mcp.TransportHTTP):
		host := strings.TrimSpace(mo.httpHost)
		if host == "" {
			host = "127.0.0.1"
		}
		if mo.httpPort < 0 || mo.httpPort > 65535 {
			return nil, fmt.Errorf("invalid http-port %d", mo.httpPort)
		}

		addr := net.JoinHostPort(host, strconv.Itoa(mo.httpPort))
		runner.Transport = mcp.TransportHTTP
		runner.HTTPListenAddr = addr
		runner.OnHTTPListening = func(a net.Addr) {
			tcpAddr, ok := a.(*net.TCPAddr)
			if !ok {
				_, _ = fmt.Fprintf(out, "MCP HTTP server listening on %s%s\n", addr, path)
				return
			}

			displayHost := host
			if displayHost == "0.0.0.0" || displayHost == "::" {
				if tcpAddr.IP != nil && !tcpAddr.IP.IsUnspecified() {
					displayHost = tcpAddr.IP.String()
				} else {
					displayHost = "127.0.0.1"
				}
			}
			if strings.Contains(displayHost, ":") && !strings.HasPrefix(displayHost, "[") {
				displayHost = "[" + displayHost + "]"
			}

			scheme := "http"
			if runner.HTTPServerCert != "" && runner.HTTPServerKey != "" {
				scheme = "https"
			}
			_, _ = fmt.Fprintf(out, "MCP HTTP server listening on %s://%s:%d%s\n", scheme, displayHost, tcpAddr.Port, path)
		}
	case string(mcp.TransportStdio):
		runner.Transport = mcp.TransportStdio
	default:
		return nil, fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.transport)
	}
	return runner, nil
}

package servecmder

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/podforge/podforge/pkg/logger"
	"github.com/podforge/podforge/server"
)

const serveLongDesc string = `Start the podforge API server.

The server exposes content acquisition, streamed dialogue generation,
and speech synthesis endpoints. Configuration comes from an optional
TOML file, with flags overriding the file.

Examples:
  podforge serve
  podforge serve --listen :9090 --debug
  podforge serve --config /etc/podforge/config.toml`

const serveShortDesc string = "Start the podforge API server"

type serveCommander struct {
	configPath string
	listenAddr string
	debug      bool
}

func NewServeCmd() *cobra.Command {
	cmder := &serveCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to TOML config file")
	cmd.Flags().StringVarP(&cmder.listenAddr, "listen", "l", "", "Address to listen on (overrides config)")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *serveCommander) run() error {
	log := logger.NewLogger(c.debug)
	defer log.Sync()

	cfg := server.Default()
	if c.configPath != "" {
		loaded, err := server.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.listenAddr != "" {
		cfg.ListenAddr = c.listenAddr
	}

	log.Info("podforge starting", zap.String("listen", cfg.ListenAddr))

	s := server.New(cfg, log)
	return s.Run()
}

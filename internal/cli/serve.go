package cli

import (
	"github.com/spf13/cobra"

	"github.com/drafterhq/drafter/internal/server"
)

// serveCommand runs the HTTP host exposing the file operations.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP host for the file operations",
		Long: `Run the HTTP host that exposes the four file operations
(save, load, DXF export, DXF import) to a local frontend.

The listen address comes from --listen, falling back to the config file
(~/.config/drafter/config.toml) and then to ` + defaultListen + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadUserConfig()
			if err != nil {
				return err
			}
			c.applyLogLevel(cmd, cfg)

			addr := listen
			if addr == "" {
				addr = cfg.Listen
			}

			srv := server.New(c.Logger)
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides the config file)")
	return cmd
}

// applyLogLevel applies the configured level. Flags win over the config
// file, so an explicit --verbose is left alone.
func (c *CLI) applyLogLevel(cmd *cobra.Command, cfg Config) {
	if f := cmd.Flags().Lookup("verbose"); f != nil && f.Changed {
		return
	}
	c.Logger.SetLevel(cfg.level())
}

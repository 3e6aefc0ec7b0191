package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/garvitthakral/GrindChain/internal/infrastructure/config"
	"github.com/garvitthakral/GrindChain/pkg/application"
	"github.com/garvitthakral/GrindChain/pkg/domain/events"
	"github.com/garvitthakral/GrindChain/pkg/sdk"
)

// clientContext bundles everything a command needs to talk to the server.
type clientContext struct {
	cfg        *config.Config
	client     *sdk.Client
	service    *application.SyncService
	dispatcher *events.EventDispatcher
}

// buildClientContext resolves config and flags into a connected service.
// Flags win over the config file.
func buildClientContext(cmd *cobra.Command) (*clientContext, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	if server, _ := cmd.Flags().GetString("server"); server != "" {
		cfg.ServerURL = server
	}
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		cfg.Token = token
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("no server configured: set --server or %s", path)
	}

	opts := []sdk.Option{sdk.WithTimeout(cfg.Timeout())}
	if cfg.Token != "" {
		opts = append(opts, sdk.WithTokenSource(
			oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})))
	}
	client := sdk.NewClient(cfg.ServerURL, opts...)

	dispatcher := events.NewEventDispatcher()
	service := application.NewSyncService(client, dispatcher,
		application.WithRemoteTimeout(cfg.Timeout()))

	return &clientContext{cfg: cfg, client: client, service: service, dispatcher: dispatcher}, nil
}

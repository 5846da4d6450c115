package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nordkost/go-erp-client/apiclient"
	"github.com/nordkost/go-erp-client/cache"
	"github.com/nordkost/go-erp-client/pkg/di"
	"github.com/nordkost/go-erp-client/resourcecache"
)

const version = "0.1.0"

// Global flag values.
var (
	flagConfig  string
	flagBaseURL string
	flagToken   string
	flagJSON    bool
	flagVerbose bool
)

// Shared state initialized by PersistentPreRunE.
var (
	logger    *slog.Logger
	client    *apiclient.Client
	container *di.Container
)

var rootCmd = &cobra.Command{
	Use:               "erpctl",
	Short:             "erpctl is a command-line client for the Nordkost ERP backend",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initClient,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: .erpctl.yaml or ~/.erpctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend origin, e.g. https://api.nordkost.no")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token for the backend session")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(mockCmd)
}

// initClient loads config and wires the client and the cache container.
func initClient(cmd *cobra.Command, args []string) error {
	logger = newLogger(flagVerbose)

	// The mock server needs no client of its own.
	if cmd.Name() == "mock" {
		return nil
	}

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	baseURL := flagBaseURL
	if baseURL == "" {
		baseURL = cfg.GetString(cfgKeyBaseURL)
	}
	token := flagToken
	if token == "" {
		token = cfg.GetString(cfgKeyToken)
	}

	client, err = apiclient.New(apiclient.Config{
		BaseURL: baseURL,
		Tokens:  apiclient.StaticToken(token),
		Logger:  logger,
		OnUnauthenticated: func() {
			logger.Warn("sesjonen er ugyldig eller utløpt, logg inn på nytt")
		},
	})
	if err != nil {
		return err
	}

	container, err = di.New(cache.DefaultConfig(), resourcecache.NewLogNotifier(logger))
	return err
}

// openResource binds a cached resource for a collection named on the command
// line. Records stay untyped; the id and label are read from conventional
// fields.
func openResource(name string) (*resourcecache.CachedResource[map[string]any], error) {
	base := apiclient.NewResource[map[string]any](client, "/v1/"+name+"/")
	return di.NewCachedResource(container, base, resourcecache.Definition[map[string]any]{
		Name:     name,
		Singular: displayName(name),
		Plural:   displayName(name),
		ID:       recordID,
		Label:    recordLabel,
	})
}

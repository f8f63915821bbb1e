// Package cli provides the cobra command tree for the research sources
// server.
package cli

import (
	"context"
	"net/http"
	"sync"

	"github.com/spf13/cobra"

	"github.com/rootline/research-sources/internal/adapters/driven/config/file"
	"github.com/rootline/research-sources/internal/adapters/driven/storage/sqlite"
	"github.com/rootline/research-sources/internal/connectors"
	"github.com/rootline/research-sources/internal/connectors/chronicling"
	"github.com/rootline/research-sources/internal/connectors/openarchives"
	"github.com/rootline/research-sources/internal/connectors/wikitree"
	"github.com/rootline/research-sources/internal/core/services"
	"github.com/rootline/research-sources/internal/logger"
)

// version is the CLI version, overridable at build time with -ldflags.
var version = "0.1.0"

var (
	verbose   bool
	dataDir   string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "research-sources",
	Short: "Genealogical research across external record sources",
	Long: `research-sources searches historic newspapers (Chronicling America),
the WikiTree collaborative tree and Open Archives European records,
and caches every match candidate locally for later correlation.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "cache directory (default ~/.research-sources/data)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.research-sources)")
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	defer Shutdown()
	return rootCmd.ExecuteContext(ctx)
}

// appServices bundles everything a command may need.
type appServices struct {
	store      *sqlite.Store
	newspapers *services.NewspaperService
	tree       *services.TreeService
	archive    *services.ArchiveService
	research   *services.ResearchService
}

var (
	appOnce sync.Once
	app     *appServices
	appErr  error
)

// buildServices builds the service graph on first use. The cache
// handle is process-wide: opened lazily here, closed by Shutdown.
func buildServices() (*appServices, error) {
	appOnce.Do(func() {
		cfg, err := file.Load(configDir)
		if err != nil {
			appErr = err
			return
		}

		storeDir := dataDir
		if storeDir == "" && cfg.DataDir != "" {
			storeDir = cfg.DataDir
		}
		store, err := sqlite.NewStore(storeDir)
		if err != nil {
			appErr = err
			return
		}
		logger.Debug("Cache opened at %s", store.Path())

		matches := store.MatchStore()
		newspaperClient := chronicling.NewClient(chronicling.Config{
			UserAgent:  cfg.UserAgent,
			HTTPClient: httpClient(cfg.Newspapers),
			RateLimit:  rateLimit(cfg.Newspapers),
		})
		treeClient := wikitree.NewClient(wikitree.Config{
			UserAgent:  cfg.UserAgent,
			HTTPClient: httpClient(cfg.WikiTree),
			RateLimit:  rateLimit(cfg.WikiTree),
		})
		archiveClient := openarchives.NewClient(openarchives.Config{
			UserAgent:  cfg.UserAgent,
			HTTPClient: httpClient(cfg.OpenArchives),
			RateLimit:  rateLimit(cfg.OpenArchives),
		})

		app = &appServices{
			store:      store,
			newspapers: services.NewNewspaperService(newspaperClient, matches),
			tree:       services.NewTreeService(treeClient, matches),
			archive:    services.NewArchiveService(archiveClient, matches),
			research:   services.NewResearchService(newspaperClient, treeClient, archiveClient, matches),
		}
	})
	return app, appErr
}

// httpClient builds a client with the configured per-provider timeout.
// Timeouts stay per provider so one slow source cannot block the rest.
// Returns nil when unset so the connector default applies.
func httpClient(cfg file.ProviderConfig) *http.Client {
	if cfg.TimeoutSeconds <= 0 {
		return nil
	}
	return &http.Client{Timeout: cfg.Timeout()}
}

// rateLimit converts a config override to a connector rate limit.
// Returns nil when unset so the connector default applies.
func rateLimit(cfg file.ProviderConfig) *connectors.RateLimitConfig {
	if cfg.RequestsPerSecond <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &connectors.RateLimitConfig{
		RequestsPerSecond: cfg.RequestsPerSecond,
		BurstSize:         burst,
	}
}

// Shutdown closes the cache handle if it was opened. Safe to call when
// no command ever touched the store.
func Shutdown() {
	if app != nil && app.store != nil {
		if err := app.store.Close(); err != nil {
			logger.Warn("Closing cache: %v", err)
		}
		app = nil
	}
}

package container

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"pokedex/browser/internal/catalog"
	"pokedex/browser/internal/client"
	"pokedex/browser/internal/config"
	"pokedex/browser/internal/proxy"
	"pokedex/browser/internal/service"
	"pokedex/browser/internal/shell"
	"pokedex/browser/internal/view"

	"github.com/charmbracelet/x/term"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	fallbackWidth = 80
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.PokeAPIClient
	Catalog *catalog.Catalog
	Loader  *catalog.Loader
	Session *service.Session
}

// RunOptions selects between the interactive shell and a one-shot batch listing
type RunOptions struct {
	Interactive bool
	Pages       int
	Search      string
	Output      string
	Out         io.Writer
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	if err := ConfigureLogging(cfg.Log); err != nil {
		return nil, err
	}

	var proxySupplier proxy.ProxySupplier
	if len(cfg.PokeAPI.Proxies) > 0 {
		testURL := strings.TrimRight(cfg.PokeAPI.BaseURL, "/") + "/pokemon?limit=1"
		proxySupplier = proxy.NewProxySupplier(ctx, cfg.PokeAPI.Proxies, testURL)
	}

	apiClient := client.NewPokeAPIClient(cfg.PokeAPI, proxySupplier)
	records := catalog.New()
	loader := catalog.NewLoader(apiClient, records, cfg.PokeAPI.PageSize)
	renderer := view.NewRenderer(cfg.UI.CardWidth, cfg.UI.Columns)

	return &Container{
		Config:  cfg,
		Client:  apiClient,
		Catalog: records,
		Loader:  loader,
		Session: service.NewSession(loader, renderer),
	}, nil
}

// ConfigureLogging applies level and format to the package-level logrus logger.
// Logs go to stderr so batch output on stdout stays machine readable.
func ConfigureLogging(cfg config.LogConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	switch cfg.Format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return nil
}

// Run drives the session until the shell exits or the batch listing is printed
func (c *Container) Run(ctx context.Context, opts RunOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if c.Config.Metrics.Addr != "" {
		srv := &http.Server{
			Addr:              c.Config.Metrics.Addr,
			Handler:           metricsMux(),
			ReadHeaderTimeout: 5 * time.Second,
		}

		g.Go(func() error {
			log.Infof("📈 Serving metrics on %s/metrics", c.Config.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server failed: %w", err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		if opts.Interactive {
			return c.runShell(ctx, opts.Out)
		}
		return c.runBatch(ctx, opts)
	})

	return g.Wait()
}

func (c *Container) runShell(ctx context.Context, out io.Writer) error {
	sh := shell.New(c.Session, out, os.Stderr, terminalWidth)
	sh.LoadInitial(ctx)
	return sh.Run(ctx)
}

func (c *Container) runBatch(ctx context.Context, opts RunOptions) error {
	pages := max(opts.Pages, 1)
	if err := c.Session.LoadPages(ctx, pages, nil); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.Session.Search(opts.Search)

	switch opts.Output {
	case OutputJSON:
		enc := json.NewEncoder(opts.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c.Session.Visible()); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
	case "", OutputText:
		fmt.Fprintln(opts.Out, c.Session.Render(terminalWidth()))
	default:
		return fmt.Errorf("unknown output format %q", opts.Output)
	}

	return nil
}

func metricsMux() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func terminalWidth() int {
	width, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

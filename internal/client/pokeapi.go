package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pokedex/browser/internal/config"
	"pokedex/browser/internal/domain"
	"pokedex/browser/internal/metrics"
	"pokedex/browser/internal/proxy"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const (
	endpointList   = "list"
	endpointDetail = "detail"
)

type PokeAPIClient interface {
	GetListPage(ctx context.Context, offset, limit int) (*domain.ListPage, error)
	GetDetail(ctx context.Context, detailURL string) (*domain.DetailRecord, error)
}

// StatusError is returned when PokeAPI answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error for %s: %s", e.URL, e.Status)
}

type pokeAPIClient struct {
	rl            ratelimit.Limiter
	baseURL       string
	httpClient    *resty.Client
	proxySupplier proxy.ProxySupplier
}

func NewPokeAPIClient(cfg config.PokeAPIConfig, proxySupplier proxy.ProxySupplier) PokeAPIClient {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout()).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using initial proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &pokeAPIClient{
		rl:            rl,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    client,
		proxySupplier: proxySupplier,
	}
}

func (c *pokeAPIClient) GetListPage(ctx context.Context, offset, limit int) (*domain.ListPage, error) {
	url := c.baseURL + "/pokemon"

	body, err := c.fetchJSON(ctx, endpointList, url, map[string]string{
		"offset": strconv.Itoa(offset),
		"limit":  strconv.Itoa(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch list page at offset %d: %w", offset, err)
	}

	page, err := parseListPage(body, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list page at offset %d: %w", offset, err)
	}

	log.Debugf("Fetched list page at offset %d with %d entries", offset, len(page.Results))
	return page, nil
}

func (c *pokeAPIClient) GetDetail(ctx context.Context, detailURL string) (*domain.DetailRecord, error) {
	body, err := c.fetchJSON(ctx, endpointDetail, detailURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail %s: %w", detailURL, err)
	}

	record, err := parseDetail(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail %s: %w", detailURL, err)
	}

	log.Debugf("Fetched detail for %s (#%d)", record.Name, record.ID)
	return record, nil
}

func (c *pokeAPIClient) fetchJSON(ctx context.Context, endpoint, url string, query map[string]string) ([]byte, error) {
	c.rl.Take()

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(url)
	metrics.PokeAPIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.PokeAPIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	metrics.PokeAPIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode())).Inc()

	if resp.IsError() {
		if resp.StatusCode() == http.StatusTooManyRequests {
			c.rotateProxy()
		}
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode(), Status: resp.Status()}
	}

	return []byte(resp.String()), nil
}

// rotateProxy switches later requests to the next proxy. The failed request is not repeated.
func (c *pokeAPIClient) rotateProxy() {
	if c.proxySupplier == nil {
		log.Warnf("🚫 PokeAPI rate limit hit and no proxies configured")
		return
	}
	if newProxy := c.proxySupplier.Get(); newProxy != "" {
		log.Infof("🔄 Switching to new proxy: %s", newProxy)
		c.httpClient.SetProxy(newProxy)
	}
}

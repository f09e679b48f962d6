// Package pricing converts manufacturer AI request volumes into cloud GPU
// spend. It holds the per-GPU-hour price index for the cloud catalog and the
// request-to-GPU-hour conversion shared by the cost formulas.
package pricing

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// PricingClient provides cloud GPU pricing lookups.
type PricingClient interface {
	// Currency returns the currency code (always "USD").
	Currency() string

	// HourlyRate returns the instance-hour price for a provider key.
	// Returns (price, true) if found, (0, false) if not found.
	HourlyRate(providerKey string) (float64, bool)

	// PerGPUHour returns the price of one GPU-hour for a provider key.
	// Returns (price, true) if found, (0, false) if not found.
	PerGPUHour(providerKey string) (float64, bool)

	// Provider returns the full provider profile for a key.
	Provider(providerKey string) (refdata.CloudProvider, bool)

	// Providers returns every priced provider in price-list order.
	Providers() []refdata.CloudProvider

	// Cheapest returns the provider with the lowest GPU-hour price.
	Cheapest() (refdata.CloudProvider, bool)
}

// Client implements PricingClient over an ordered provider list.
type Client struct {
	logger zerolog.Logger

	providers []refdata.CloudProvider

	once  sync.Once
	err   error
	index map[string]gpuPrice
}

// gpuPrice is the distilled per-provider rate used for lookups.
type gpuPrice struct {
	pos        int
	hourlyRate float64
	perGPUHour float64
}

// NewClient creates a Client for the given providers and builds its index.
// It returns an error if any provider has no GPUs or a non-positive price.
func NewClient(logger zerolog.Logger, providers []refdata.CloudProvider) (*Client, error) {
	c := &Client{
		logger:    logger,
		providers: providers,
	}
	if err := c.init(); err != nil {
		return nil, err
	}
	return c, nil
}

// init validates providers and builds the index exactly once.
func (c *Client) init() error {
	c.once.Do(func() {
		c.index = make(map[string]gpuPrice, len(c.providers))
		for i, p := range c.providers {
			if p.GPUsPerInstance < 1 {
				c.err = fmt.Errorf("cloud provider %q: gpus_per_instance must be >= 1, got %d", p.Key, p.GPUsPerInstance)
				return
			}
			if p.HourlyCost <= 0 {
				c.err = fmt.Errorf("cloud provider %q: hourly_cost must be > 0, got %g", p.Key, p.HourlyCost)
				return
			}
			if _, dup := c.index[p.Key]; dup {
				c.logger.Warn().
					Str("provider", p.Key).
					Msg("duplicate cloud provider in price list, keeping first")
				continue
			}
			c.index[p.Key] = gpuPrice{
				pos:        i,
				hourlyRate: p.HourlyCost,
				perGPUHour: PerGPUHourRate(p),
			}
		}

		c.logger.Debug().
			Int("providers", len(c.index)).
			Msg("cloud price index built")
	})
	return c.err
}

// Currency returns the currency code of all prices.
func (c *Client) Currency() string {
	return "USD"
}

// HourlyRate returns the instance-hour price for a provider key.
func (c *Client) HourlyRate(providerKey string) (float64, bool) {
	p, ok := c.index[providerKey]
	if !ok {
		c.logger.Debug().Str("provider", providerKey).Msg("cloud provider not in price list")
		return 0, false
	}
	return p.hourlyRate, true
}

// PerGPUHour returns the price of one GPU-hour for a provider key.
func (c *Client) PerGPUHour(providerKey string) (float64, bool) {
	p, ok := c.index[providerKey]
	if !ok {
		c.logger.Debug().Str("provider", providerKey).Msg("cloud provider not in price list")
		return 0, false
	}
	return p.perGPUHour, true
}

// Provider returns the full provider profile for a key.
func (c *Client) Provider(providerKey string) (refdata.CloudProvider, bool) {
	p, ok := c.index[providerKey]
	if !ok {
		return refdata.CloudProvider{}, false
	}
	return c.providers[p.pos], true
}

// Providers returns the providers in price-list order. A duplicated key
// appears once, at its first position.
func (c *Client) Providers() []refdata.CloudProvider {
	out := make([]refdata.CloudProvider, 0, len(c.index))
	for i, p := range c.providers {
		if c.index[p.Key].pos == i {
			out = append(out, p)
		}
	}
	return out
}

// Cheapest returns the provider with the lowest per-GPU-hour price. Ties
// keep the earlier provider. Returns false for an empty price list.
func (c *Client) Cheapest() (refdata.CloudProvider, bool) {
	var (
		best  refdata.CloudProvider
		found bool
	)
	for _, p := range c.Providers() {
		if !found || c.index[p.Key].perGPUHour < c.index[best.Key].perGPUHour {
			best, found = p, true
		}
	}
	return best, found
}

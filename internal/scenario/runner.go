// Package scenario runs the formula functions over the reference catalog and
// the four severity variants. Every category is a Cartesian product of
// catalog entries and variants; records come back in catalog order, then
// variant order, so two runs over the same inputs produce identical output.
package scenario

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/nhp-simulation/internal/pricing"
	"github.com/rshade/nhp-simulation/internal/refdata"
)

// Runner evaluates scenario categories and phases.
type Runner struct {
	catalog  *refdata.Catalog
	variants refdata.VariantSet
	pricing  pricing.PricingClient
	logger   zerolog.Logger // logger is immutable (copy-on-write)
}

// NewRunner creates a Runner over the given catalog, variant assumptions and
// pricing client. The logger is also injected into the refdata package so
// catalog index warnings reach the same sink.
func NewRunner(catalog *refdata.Catalog, variants refdata.VariantSet, pricingClient pricing.PricingClient, logger zerolog.Logger) *Runner {
	refdata.SetLogger(logger)

	return &Runner{
		catalog:  catalog,
		variants: variants,
		pricing:  pricingClient,
		logger:   logger,
	}
}

// NewDefaultRunner creates a Runner over the built-in catalog and variants.
func NewDefaultRunner(logger zerolog.Logger) (*Runner, error) {
	catalog := refdata.Default()
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("reference catalog: %w", err)
	}
	client, err := pricing.NewClient(logger, catalog.CloudProviders)
	if err != nil {
		return nil, fmt.Errorf("building pricing index: %w", err)
	}
	return NewRunner(catalog, refdata.DefaultVariants(), client, logger), nil
}

// categoryFunc produces the records of one category.
type categoryFunc func(r *Runner) ([]Record, error)

// RunAll evaluates every category in order. It stops at the first category
// that fails or when ctx is cancelled.
func (r *Runner) RunAll(ctx context.Context) (*Results, error) {
	runID := uuid.New().String()
	log := r.logger.With().Str("run_id", runID).Logger()

	res := &Results{RunID: runID}
	for _, def := range categoryDefs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before category %s: %w", def.Key, err)
		}

		records, err := def.run(r)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", def.Key, err)
		}

		log.Debug().
			Str("category", def.Key).
			Int("records", len(records)).
			Msg("category complete")

		res.add(CategoryResults{
			Key:     def.Key,
			Title:   def.Title,
			TitleAr: def.TitleAr,
			Records: records,
		})
	}

	log.Info().
		Int("categories", len(res.Categories)).
		Int("total_scenarios", res.Total()).
		Msg("scenario run complete")

	return res, nil
}

// RunCategories evaluates the named categories in catalog order, whatever
// order keys are given in. Unknown keys are an error listing the valid ones.
func (r *Runner) RunCategories(ctx context.Context, keys []string) (*Results, error) {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := lookupCategoryDef(k); !ok {
			return nil, fmt.Errorf("unknown category %q (want one of %v)", k, CategoryKeys())
		}
		want[k] = true
	}

	res := &Results{RunID: uuid.New().String()}
	for _, def := range categoryDefs {
		if !want[def.Key] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled before category %s: %w", def.Key, err)
		}
		records, err := def.run(r)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", def.Key, err)
		}
		res.add(CategoryResults{Key: def.Key, Title: def.Title, TitleAr: def.TitleAr, Records: records})
	}

	r.logger.Info().
		Str("run_id", res.RunID).
		Strs("categories", keys).
		Int("total_scenarios", res.Total()).
		Msg("category run complete")

	return res, nil
}

// referenceCloud resolves the cloud provider used by savings and breakeven
// scenarios.
func (r *Runner) referenceCloud() (refdata.CloudProvider, error) {
	cloud, ok := r.pricing.Provider(refdata.ReferenceCloudKey)
	if !ok {
		return refdata.CloudProvider{}, fmt.Errorf("reference cloud %q not in price index", refdata.ReferenceCloudKey)
	}
	return cloud, nil
}

package pricing

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

// priceSheet is the on-disk format of a user-supplied cloud price list.
type priceSheet struct {
	Currency  string          `json:"currency"`
	Providers []sheetProvider `json:"providers"`
}

// sheetProvider is one entry of a price sheet.
type sheetProvider struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	Short           string  `json:"short"`
	GPUModel        string  `json:"gpu_model"`
	GPUsPerInstance int     `json:"gpus_per_instance"`
	TOPSPerGPU      float64 `json:"tops_per_gpu"`
	HourlyCost      float64 `json:"hourly_cost"`
	OnDemand        *bool   `json:"on_demand,omitempty"`
}

// ParsePriceSheet decodes a JSON price sheet into cloud providers, keeping
// the sheet order. Only USD sheets are accepted. A missing on_demand flag
// defaults to true.
func ParsePriceSheet(data []byte) ([]refdata.CloudProvider, error) {
	var sheet priceSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse price sheet: %w", err)
	}

	if sheet.Currency != "" && sheet.Currency != "USD" {
		return nil, fmt.Errorf("unsupported price sheet currency %q", sheet.Currency)
	}
	if len(sheet.Providers) == 0 {
		return nil, fmt.Errorf("price sheet has no providers")
	}

	out := make([]refdata.CloudProvider, 0, len(sheet.Providers))
	for i, sp := range sheet.Providers {
		if sp.Key == "" {
			return nil, fmt.Errorf("price sheet provider %d: missing key", i)
		}
		onDemand := true
		if sp.OnDemand != nil {
			onDemand = *sp.OnDemand
		}
		short := sp.Short
		if short == "" {
			short = sp.Key
		}
		out = append(out, refdata.CloudProvider{
			Key:             sp.Key,
			Name:            sp.Name,
			Short:           short,
			GPUModel:        sp.GPUModel,
			GPUsPerInstance: sp.GPUsPerInstance,
			TOPSPerGPU:      sp.TOPSPerGPU,
			HourlyCost:      sp.HourlyCost,
			OnDemand:        onDemand,
		})
	}
	return out, nil
}

// MarshalPriceSheet encodes providers in the format ParsePriceSheet reads.
func MarshalPriceSheet(providers []refdata.CloudProvider) ([]byte, error) {
	sheet := priceSheet{Currency: "USD", Providers: make([]sheetProvider, 0, len(providers))}
	for _, p := range providers {
		onDemand := p.OnDemand
		sheet.Providers = append(sheet.Providers, sheetProvider{
			Key:             p.Key,
			Name:            p.Name,
			Short:           p.Short,
			GPUModel:        p.GPUModel,
			GPUsPerInstance: p.GPUsPerInstance,
			TOPSPerGPU:      p.TOPSPerGPU,
			HourlyCost:      p.HourlyCost,
			OnDemand:        &onDemand,
		})
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode price sheet: %w", err)
	}
	return append(data, '\n'), nil
}

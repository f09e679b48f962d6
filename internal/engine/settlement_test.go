package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/nhp-simulation/internal/refdata"
)

func mustSettlement(t *testing.T, key string) refdata.SettlementSystem {
	t.Helper()
	for _, s := range refdata.Default().SettlementSystems {
		if s.Key == key {
			return s
		}
	}
	require.Failf(t, "settlement system not found", "%s", key)
	return refdata.SettlementSystem{}
}

func TestSettlementIncome(t *testing.T) {
	got := SettlementIncome(mustSettlement(t, "blockchain_l1"), 100, 5)

	assert.Equal(t, "Blockchain", got.SystemCategory)
	assert.InDelta(t, 0.01, got.TxFee, 1e-12)
	assert.InDelta(t, 0.01, got.FeePct, 1e-12)
	assert.InDelta(t, 94.99, got.NetMonthly, 1e-9)
	assert.InDelta(t, 94.99*12, got.NetAnnual, 1e-9)
}

func TestSettlementIncome_ZeroGross(t *testing.T) {
	got := SettlementIncome(mustSettlement(t, "blockchain_l1"), 0, 2)

	assert.Zero(t, got.FeePct)
	assert.InDelta(t, -2.01, got.NetMonthly, 1e-12)
}

func TestSettlementScore(t *testing.T) {
	got := SettlementScore(mustSettlement(t, "blockchain_l1"))

	assert.InDelta(t, 30, got.UXScore, 1e-12)
	assert.InDelta(t, 20, got.MfgScore, 1e-12)
	assert.InDelta(t, 15, got.RegScore, 1e-12)
	assert.InDelta(t, 99.8, got.FeeScore, 1e-9)
	assert.InDelta(t, 100, got.SpeedScore, 1e-12)
	assert.InDelta(t, 60, got.ReachScore, 1e-12)
	assert.InDelta(t, 45.72, got.OverallScore, 1e-9)
	assert.Equal(t, 6, got.AvailableCount)
	assert.Equal(t, 2, got.BlockedCount)
	assert.True(t, got.RequiresWallet)
}

func TestSettlementScore_Speed(t *testing.T) {
	tests := []struct {
		hours float64
		want  float64
	}{
		{0.5, 100},
		{1, 60},
		{23.9, 60},
		{24, 30},
		{72, 30},
	}

	for _, tt := range tests {
		got := SettlementScore(refdata.SettlementSystem{SettlementHours: tt.hours})
		assert.InDelta(t, tt.want, got.SpeedScore, 1e-12, "hours=%v", tt.hours)
	}
}

func TestSettlementScore_UnknownLabels(t *testing.T) {
	got := SettlementScore(refdata.SettlementSystem{
		UserDifficulty:  "Trivial",
		MfgAcceptance:   "Unknown",
		RegulatoryRisk:  "None",
		TxFeePct:        10,
		SettlementHours: 48,
	})

	assert.Zero(t, got.UXScore)
	assert.Zero(t, got.MfgScore)
	assert.Zero(t, got.RegScore)
	assert.Zero(t, got.FeeScore, "fee score floors at zero")
	assert.InDelta(t, 30*weightSpeed, got.OverallScore, 1e-12)
}

func TestSettlementScore_AllSystemsInRange(t *testing.T) {
	for _, sys := range refdata.Default().SettlementSystems {
		got := SettlementScore(sys)
		assert.GreaterOrEqual(t, got.OverallScore, 0.0, sys.Key)
		assert.LessOrEqual(t, got.OverallScore, 100.0, sys.Key)
	}
}

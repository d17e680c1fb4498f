package services

import (
	"github.com/shopspring/decimal"

	"imperial/commercial-routes/internal/config"
)

// RoundingPolicy is the single monetary rounding rule shared by the pricing
// engine and the orchestrator.
type RoundingPolicy interface {
	Round(d decimal.Decimal) decimal.Decimal
}

// ConfigRounding rounds to the configured number of decimal places. The
// places value is read from the configuration on every call, so it may
// legitimately differ between deployments and tests.
type ConfigRounding struct {
	cfg *config.Config
}

var _ RoundingPolicy = ConfigRounding{}

func NewConfigRounding(cfg *config.Config) ConfigRounding {
	return ConfigRounding{cfg: cfg}
}

func (r ConfigRounding) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(r.cfg.DecimalPlaces)
}

package hygiene

import (
	"os"
	"strconv"
)

// Prices are rough fixed monthly price approximations in USD, tunable per
// environment.
type Prices struct {
	EBSGBMonth      float64
	SnapshotGBMonth float64
	EIPMonth        float64
	NATMonth        float64
	ELBMonth        float64
}

// DefaultPrices reads the HYGIENE_* price overrides from the environment.
func DefaultPrices() Prices {
	return Prices{
		EBSGBMonth:      envFloat("HYGIENE_EBS_GB_MONTH_PRICE", 0.08),
		SnapshotGBMonth: envFloat("HYGIENE_SNAPSHOT_GB_MONTH_PRICE", 0.05),
		EIPMonth:        envFloat("HYGIENE_EIP_MONTH_PRICE", 3.5),
		NATMonth:        envFloat("HYGIENE_NAT_MONTH_PRICE", 32.0),
		ELBMonth:        envFloat("HYGIENE_ELB_MONTH_PRICE", 18.0),
	}
}

func envFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

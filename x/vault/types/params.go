package types

import (
	"fmt"
)

// DefaultPlatformFeeRate is 1% in parts per million
const DefaultPlatformFeeRate uint64 = 10_000

// Params are the mutable vault settings
type Params struct {
	// PlatformFeeRate is taken from the migrated amounts, in parts per million
	PlatformFeeRate uint64 `json:"platform_fee_rate"`
}

// NewParams creates a new Params instance
func NewParams(platformFeeRate uint64) Params {
	return Params{
		PlatformFeeRate: platformFeeRate,
	}
}

// DefaultParams returns default vault params
func DefaultParams() Params {
	return NewParams(DefaultPlatformFeeRate)
}

// Validate checks the params are usable
func (p Params) Validate() error {
	if p.PlatformFeeRate > PlatformFeeDenominator {
		return ErrInvalidParams.Wrapf("platform fee rate %d exceeds %d", p.PlatformFeeRate, PlatformFeeDenominator)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("platform_fee_rate=%d", p.PlatformFeeRate)
}

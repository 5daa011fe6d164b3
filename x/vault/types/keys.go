package types

const (
	// ModuleName defines the module name
	ModuleName = "vault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// Play identifiers accepted by MsgInstantiate.Play
const (
	PlayInitAstroportPair = "init_astroport_pair"
	PlayInitDojoswapPair  = "init_dojoswap_pair"
)

// PlatformFeeDenominator is the parts-per-million base for PlatformFeeRate
const PlatformFeeDenominator uint64 = 1_000_000

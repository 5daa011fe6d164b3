// Package dojoswap holds the Dojoswap factory messages the vault sends, in
// their JSON wire encoding.
package dojoswap

import (
	"cosmossdk.io/math"
)

// DefaultFactoryAddress is the Dojoswap pair factory on Injective
const DefaultFactoryAddress = "inj1pc2vxcmnyzawnwkf03n2ggvt997avtuwagqngk"

// AssetInfo identifies an asset: a native denom or a CW20 contract
type AssetInfo struct {
	Token       *TokenInfo       `json:"token,omitempty"`
	NativeToken *NativeTokenInfo `json:"native_token,omitempty"`
}

// TokenInfo is a CW20 asset
type TokenInfo struct {
	ContractAddr string `json:"contract_addr"`
}

// NativeTokenInfo is a bank denom asset
type NativeTokenInfo struct {
	Denom string `json:"denom"`
}

// NativeAsset returns the AssetInfo of a bank denom
func NativeAsset(denom string) AssetInfo {
	return AssetInfo{NativeToken: &NativeTokenInfo{Denom: denom}}
}

// Asset is an amount of an asset
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Uint `json:"amount"`
}

// FactoryExecuteMsg is the subset of factory execute messages the vault sends
type FactoryExecuteMsg struct {
	CreatePair *CreatePair `json:"create_pair,omitempty"`
}

// CreatePair creates a pair seeded with the attached assets
type CreatePair struct {
	Assets [2]Asset `json:"assets"`
}

// FactoryQueryMsg is the subset of factory queries the vault runs
type FactoryQueryMsg struct {
	Pair *PairQuery `json:"pair,omitempty"`
}

// PairQuery looks a pair up by its asset infos
type PairQuery struct {
	AssetInfos [2]AssetInfo `json:"asset_infos"`
}

// PairInfo is the factory's answer to a pair query
type PairInfo struct {
	AssetInfos     [2]AssetInfo `json:"asset_infos"`
	ContractAddr   string       `json:"contract_addr"`
	LiquidityToken string       `json:"liquidity_token"`
	AssetDecimals  [2]uint8     `json:"asset_decimals"`
}

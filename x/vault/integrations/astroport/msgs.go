// Package astroport holds the Astroport factory and pair messages the vault
// sends, in their JSON wire encoding.
package astroport

import (
	"cosmossdk.io/math"
)

// DefaultFactoryAddress is the Astroport factory the vault targets unless configured otherwise
const DefaultFactoryAddress = "stars1sd60m6a7htpa93wspccsf9vkjsk3pgz7kusrzu26ezjcwcjltguqu2gjgq"

// DefaultLPTokenCreationFee is paid to the factory, in the quote denom, when a pair is created
var DefaultLPTokenCreationFee = math.NewUint(100_000_000)

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

// TokenAsset returns the AssetInfo of a CW20 contract
func TokenAsset(contractAddr string) AssetInfo {
	return AssetInfo{Token: &TokenInfo{ContractAddr: contractAddr}}
}

// Asset is an amount of an asset
type Asset struct {
	Info   AssetInfo `json:"info"`
	Amount math.Uint `json:"amount"`
}

// PairType selects the pool curve. Only constant product is used.
type PairType struct {
	Xyk *struct{} `json:"xyk,omitempty"`
}

// XykPairType is the constant product pair type
func XykPairType() PairType {
	return PairType{Xyk: &struct{}{}}
}

// FactoryExecuteMsg is the subset of factory execute messages the vault sends
type FactoryExecuteMsg struct {
	CreatePair *CreatePair `json:"create_pair,omitempty"`
}

// CreatePair asks the factory to instantiate a pair contract
type CreatePair struct {
	PairType   PairType    `json:"pair_type"`
	AssetInfos []AssetInfo `json:"asset_infos"`
	InitParams []byte      `json:"init_params"`
}

// FactoryQueryMsg is the subset of factory queries the vault runs
type FactoryQueryMsg struct {
	Pair *PairQuery `json:"pair,omitempty"`
}

// PairQuery looks a pair up by its asset infos
type PairQuery struct {
	AssetInfos []AssetInfo `json:"asset_infos"`
}

// PairInfo is the factory's answer to a pair query
type PairInfo struct {
	AssetInfos     []AssetInfo `json:"asset_infos"`
	ContractAddr   string      `json:"contract_addr"`
	LiquidityToken string      `json:"liquidity_token"`
	PairType       PairType    `json:"pair_type"`
}

// PairExecuteMsg is the subset of pair execute messages the vault sends
type PairExecuteMsg struct {
	ProvideLiquidity *ProvideLiquidity `json:"provide_liquidity,omitempty"`
}

// ProvideLiquidity deposits assets into a pair. Nil SlippageTolerance and
// MinLPToReceive accept whatever ratio and LP amount the pair assigns.
type ProvideLiquidity struct {
	Assets            []Asset    `json:"assets"`
	SlippageTolerance *string    `json:"slippage_tolerance"`
	AutoStake         *bool      `json:"auto_stake"`
	Receiver          *string    `json:"receiver"`
	MinLPToReceive    *math.Uint `json:"min_lp_to_receive"`
}

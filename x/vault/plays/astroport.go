package plays

import (
	"context"
	"encoding/json"
	"sort"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/astroport"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

const (
	// ExchangeAstroport is the exchange name pair addresses are recorded under
	ExchangeAstroport = "astroport"
	// KindAstroportCreatePair tags continuations waiting on an Astroport create_pair
	KindAstroportCreatePair = "astroport_create_pair"
)

// AstroportCreatePairState is what the vault needs to provide liquidity once
// the factory has created the pair. Assets are in the factory's canonical order.
type AstroportCreatePairState struct {
	Assets []astroport.Asset `json:"assets"`
	Funds  wasmvmtypes.Coins `json:"funds"`
}

// Astroport migrates into a constant product pair created by an Astroport
// factory. The base asset may be a CW20; the quote must be native because the
// LP token creation fee is paid in it.
type Astroport struct {
	factory            string
	lpTokenCreationFee math.Uint
}

var _ types.Play = Astroport{}

// NewAstroport returns the Astroport play for factory
func NewAstroport(factory string, lpTokenCreationFee math.Uint) Astroport {
	return Astroport{factory: factory, lpTokenCreationFee: lpTokenCreationFee}
}

func (Astroport) Name() string             { return types.PlayInitAstroportPair }
func (Astroport) Exchange() string         { return ExchangeAstroport }
func (Astroport) ContinuationKind() string { return KindAstroportCreatePair }

// Factory returns the factory address the play targets
func (p Astroport) Factory() string { return p.factory }

// LPTokenCreationFee returns the fee the factory charges for a new pair
func (p Astroport) LPTokenCreationFee() math.Uint { return p.lpTokenCreationFee }

// CreatePair emits the platform fee transfer followed by create_pair on the
// factory, tagged with a fresh reply id.
func (p Astroport) CreatePair(ctx context.Context, host types.PlayHost, msg types.MsgInstantiate) ([]wasmvmtypes.SubMsg, error) {
	quoteDenom, err := msg.Quote.Token.GetDenom()
	if err != nil {
		return nil, errorsmod.Wrap(err, "astroport quote token")
	}

	params, err := host.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	amounts, err := PrepareAmounts(msg.Quote.Amount, msg.Base.Amount, msg.VirtualLiquidity, params.PlatformFeeRate)
	if err != nil {
		return nil, err
	}
	pairAmounts, err := AdjustForCreationFee(amounts, p.lpTokenCreationFee)
	if err != nil {
		return nil, err
	}

	// Astroport requires asset infos sorted by denom / contract address.
	legs := []types.TokenAmount{
		types.NewTokenAmount(msg.Base.Token, pairAmounts.Base),
		types.NewTokenAmount(msg.Quote.Token, pairAmounts.Quote),
	}
	sort.Slice(legs, func(i, j int) bool { return legs[i].Token.Key() < legs[j].Token.Key() })

	state := AstroportCreatePairState{
		Assets: make([]astroport.Asset, 0, len(legs)),
		Funds:  wasmvmtypes.Coins{},
	}
	assetInfos := make([]astroport.AssetInfo, 0, len(legs))
	for _, leg := range legs {
		info := astroportAssetInfo(leg.Token)
		assetInfos = append(assetInfos, info)
		state.Assets = append(state.Assets, astroport.Asset{Info: info, Amount: leg.Amount})
		if leg.Token.IsNative() {
			state.Funds = append(state.Funds, types.NewCoin(leg.Token.Denom, leg.Amount))
		}
	}
	state.Funds = sortCoins(state.Funds)

	replyID, err := host.NextReplyID(ctx)
	if err != nil {
		return nil, err
	}
	cont, err := types.NewContinuation(p.ContinuationKind(), state)
	if err != nil {
		return nil, err
	}
	if err := host.RegisterContinuation(ctx, replyID, cont); err != nil {
		return nil, err
	}

	createPair, err := json.Marshal(astroport.FactoryExecuteMsg{
		CreatePair: &astroport.CreatePair{
			PairType:   astroport.XykPairType(),
			AssetInfos: assetInfos,
		},
	})
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to marshal astroport create_pair")
	}

	creationFunds := wasmvmtypes.Coins{}
	if !p.lpTokenCreationFee.IsZero() {
		creationFunds = append(creationFunds, types.NewCoin(quoteDenom, p.lpTokenCreationFee))
	}

	msgs, err := feeTransfer(msg.Quote.Token, msg.FeeRecipient, pairAmounts.Fee)
	if err != nil {
		return nil, err
	}
	return append(msgs, wasmvmtypes.SubMsg{
		ID: replyID,
		Msg: wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: p.factory,
					Msg:          createPair,
					Funds:        creationFunds,
				},
			},
		},
		ReplyOn: wasmvmtypes.ReplySuccess,
	}), nil
}

// OnCreatePairReply resolves the new pair through the factory, records it and
// deposits the saved assets, minting LP tokens to the vault.
func (p Astroport) OnCreatePairReply(ctx context.Context, host types.PlayHost, result wasmvmtypes.SubMsgResult, cont types.Continuation) ([]wasmvmtypes.SubMsg, error) {
	if err := replyError(ExchangeAstroport, result); err != nil {
		return nil, err
	}

	var state AstroportCreatePairState
	if err := cont.Decode(&state); err != nil {
		return nil, err
	}

	assetInfos := make([]astroport.AssetInfo, 0, len(state.Assets))
	for _, asset := range state.Assets {
		assetInfos = append(assetInfos, asset.Info)
	}

	var pair astroport.PairInfo
	if err := host.QuerySmart(ctx, p.factory, astroport.FactoryQueryMsg{
		Pair: &astroport.PairQuery{AssetInfos: assetInfos},
	}, &pair); err != nil {
		return nil, errorsmod.Wrap(err, "failed to extract astroport pair address")
	}
	if err := host.SetPairAddress(ctx, ExchangeAstroport, pair.ContractAddr); err != nil {
		return nil, err
	}

	msgs := []wasmvmtypes.SubMsg{}
	for _, asset := range state.Assets {
		if asset.Info.Token == nil {
			continue
		}
		allowance, err := types.NewContractToken(asset.Info.Token.ContractAddr).IncreaseAllowance(pair.ContractAddr, asset.Amount)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, allowance)
	}

	autoStake := false
	receiver := host.ContractAddress()
	provide, err := json.Marshal(astroport.PairExecuteMsg{
		ProvideLiquidity: &astroport.ProvideLiquidity{
			Assets:    state.Assets,
			AutoStake: &autoStake,
			Receiver:  &receiver,
		},
	})
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to marshal astroport provide_liquidity")
	}

	return append(msgs, wasmvmtypes.SubMsg{
		Msg: wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: pair.ContractAddr,
					Msg:          provide,
					Funds:        state.Funds,
				},
			},
		},
		ReplyOn: wasmvmtypes.ReplyNever,
	}), nil
}

func astroportAssetInfo(t types.Token) astroport.AssetInfo {
	if t.IsNative() {
		return astroport.NativeAsset(t.Denom)
	}
	return astroport.TokenAsset(t.Address)
}

package plays

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/integrations/dojoswap"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

const (
	// ExchangeDojoswap is the exchange name pair addresses are recorded under
	ExchangeDojoswap = "dojoswap"
	// KindDojoswapCreatePair tags continuations waiting on a Dojoswap create_pair
	KindDojoswapCreatePair = "dojoswap_create_pair"
)

// DojoswapCreatePairState is what the vault needs to look the pair up
type DojoswapCreatePairState struct {
	AssetInfos []dojoswap.AssetInfo `json:"asset_infos"`
}

// Dojoswap migrates into a pair created by the Dojoswap factory. The factory
// seeds the pair with the funds attached to create_pair, so no separate
// liquidity call follows. Only native tokens are supported.
type Dojoswap struct {
	factory string
}

var _ types.Play = Dojoswap{}

// NewDojoswap returns the Dojoswap play for factory
func NewDojoswap(factory string) Dojoswap {
	return Dojoswap{factory: factory}
}

func (Dojoswap) Name() string             { return types.PlayInitDojoswapPair }
func (Dojoswap) Exchange() string         { return ExchangeDojoswap }
func (Dojoswap) ContinuationKind() string { return KindDojoswapCreatePair }

// Factory returns the factory address the play targets
func (p Dojoswap) Factory() string { return p.factory }

// CreatePair emits the platform fee transfer followed by create_pair with the
// pair amounts attached as funds.
func (p Dojoswap) CreatePair(ctx context.Context, host types.PlayHost, msg types.MsgInstantiate) ([]wasmvmtypes.SubMsg, error) {
	if !msg.Quote.Token.IsNative() || !msg.Base.Token.IsNative() {
		return nil, types.ErrNotImplemented.Wrap("cw20 tokens not supported for dojoswap pool initialization")
	}

	params, err := host.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	amounts, err := PrepareAmounts(msg.Quote.Amount, msg.Base.Amount, msg.VirtualLiquidity, params.PlatformFeeRate)
	if err != nil {
		return nil, err
	}

	assets := [2]dojoswap.Asset{
		{Info: dojoswap.NativeAsset(msg.Quote.Token.Denom), Amount: amounts.Quote},
		{Info: dojoswap.NativeAsset(msg.Base.Token.Denom), Amount: amounts.Base},
	}
	funds := sortCoins(wasmvmtypes.Coins{
		types.NewCoin(msg.Quote.Token.Denom, amounts.Quote),
		types.NewCoin(msg.Base.Token.Denom, amounts.Base),
	})

	replyID, err := host.NextReplyID(ctx)
	if err != nil {
		return nil, err
	}
	cont, err := types.NewContinuation(p.ContinuationKind(), DojoswapCreatePairState{
		AssetInfos: []dojoswap.AssetInfo{assets[0].Info, assets[1].Info},
	})
	if err != nil {
		return nil, err
	}
	if err := host.RegisterContinuation(ctx, replyID, cont); err != nil {
		return nil, err
	}

	createPair, err := json.Marshal(dojoswap.FactoryExecuteMsg{
		CreatePair: &dojoswap.CreatePair{Assets: assets},
	})
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to marshal dojoswap create_pair")
	}

	msgs, err := feeTransfer(msg.Quote.Token, msg.FeeRecipient, amounts.Fee)
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
					Funds:        funds,
				},
			},
		},
		ReplyOn: wasmvmtypes.ReplySuccess,
	}), nil
}

// OnCreatePairReply looks the new pair up through the factory and records it.
func (p Dojoswap) OnCreatePairReply(ctx context.Context, host types.PlayHost, result wasmvmtypes.SubMsgResult, cont types.Continuation) ([]wasmvmtypes.SubMsg, error) {
	if err := replyError(ExchangeDojoswap, result); err != nil {
		return nil, err
	}

	var state DojoswapCreatePairState
	if err := cont.Decode(&state); err != nil {
		return nil, err
	}
	if len(state.AssetInfos) != 2 {
		return nil, types.ErrValidation.Wrapf("dojoswap continuation has %d asset infos", len(state.AssetInfos))
	}

	var pair dojoswap.PairInfo
	if err := host.QuerySmart(ctx, p.factory, dojoswap.FactoryQueryMsg{
		Pair: &dojoswap.PairQuery{AssetInfos: [2]dojoswap.AssetInfo{state.AssetInfos[0], state.AssetInfos[1]}},
	}, &pair); err != nil {
		return nil, errorsmod.Wrap(err, "failed to extract dojoswap pair address")
	}
	if err := host.SetPairAddress(ctx, ExchangeDojoswap, pair.ContractAddr); err != nil {
		return nil, err
	}

	return nil, nil
}

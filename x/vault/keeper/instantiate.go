package keeper

import (
	"context"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// InitMigration creates the vault and starts the migration selected by
// msg.Play. It runs once, at contract creation. State written before a
// failure is left to the host to roll back with the rest of the request.
func (k Keeper) InitMigration(ctx context.Context, sender string, msg types.MsgInstantiate) (*wasmvmtypes.Response, error) {
	resp, err := k.initMigration(ctx, sender, msg)
	if err != nil {
		k.metrics.MigrationsTotal.WithLabelValues(msg.Play, types.StatusFailed.String()).Inc()
		k.Logger(ctx).Error("vault migration failed", "play", msg.Play, "error", err)
		return nil, err
	}
	k.metrics.MigrationsTotal.WithLabelValues(msg.Play, types.StatusPairCreationPending.String()).Inc()
	return resp, nil
}

func (k Keeper) initMigration(ctx context.Context, sender string, msg types.MsgInstantiate) (*wasmvmtypes.Response, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if k.HasConfig(ctx) {
		return nil, types.ErrAlreadyInitialized
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.SetConfig(ctx, types.NewMigrationConfig(sender, sdkCtx.BlockTime(), msg)); err != nil {
		return nil, err
	}
	if !k.HasParams(ctx) {
		if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
			return nil, err
		}
	}
	k.SetReplyIDCounter(ctx, 0)
	if err := k.advanceStatus(ctx, types.StatusCreated); err != nil {
		return nil, err
	}

	play, ok := k.plays[msg.Play]
	if !ok {
		return nil, types.ErrValidation.Wrapf("unrecognized play: %s", msg.Play)
	}

	msgs, err := play.CreatePair(ctx, k, msg)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "play %s", msg.Play)
	}
	if err := k.advanceStatus(ctx, types.StatusPairCreationPending); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMigrationStarted,
			sdk.NewAttribute(types.AttributeKeyPlay, msg.Play),
			sdk.NewAttribute(types.AttributeKeyExchange, play.Exchange()),
			sdk.NewAttribute(types.AttributeKeyManager, msg.Manager),
			sdk.NewAttribute(types.AttributeKeyFeeRecipient, msg.FeeRecipient),
		),
	)
	k.Logger(ctx).Info("vault migration started",
		"play", msg.Play,
		"quote", msg.Quote.String(),
		"base", msg.Base.String(),
		"vl", msg.VirtualLiquidity.String(),
		"messages", len(msgs),
	)

	return &wasmvmtypes.Response{
		Messages: msgs,
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyAction, Value: "instantiate"},
			{Key: types.AttributeKeyPlay, Value: msg.Play},
		},
	}, nil
}

// Reply resumes the migration step that emitted the call correlated by reply.ID.
// The continuation is removed before the play runs, whatever the outcome.
func (k Keeper) Reply(ctx context.Context, reply wasmvmtypes.Reply) (*wasmvmtypes.Response, error) {
	cont, err := k.ResolveContinuation(ctx, reply.ID)
	if err != nil {
		k.metrics.RepliesTotal.WithLabelValues("unknown", types.StatusFailed.String()).Inc()
		return nil, err
	}

	resp, err := k.reply(ctx, reply, cont)
	if err != nil {
		k.metrics.RepliesTotal.WithLabelValues(cont.Kind, types.StatusFailed.String()).Inc()
		k.Logger(ctx).Error("vault reply failed", "reply_id", reply.ID, "kind", cont.Kind, "error", err)
		return nil, err
	}
	k.metrics.RepliesTotal.WithLabelValues(cont.Kind, types.StatusComplete.String()).Inc()
	return resp, nil
}

func (k Keeper) reply(ctx context.Context, reply wasmvmtypes.Reply, cont types.Continuation) (*wasmvmtypes.Response, error) {
	play, ok := k.playsByKind[cont.Kind]
	if !ok {
		return nil, errorsmod.Wrapf(types.ErrUnknownContinuationKind, "%s (reply id %d)", cont.Kind, reply.ID)
	}

	msgs, err := play.OnCreatePairReply(ctx, k, reply.Result, cont)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "reply id %d", reply.ID)
	}

	if len(msgs) > 0 {
		if err := k.advanceStatus(ctx, types.StatusLiquidityProvisionPending); err != nil {
			return nil, err
		}
	}
	// Emitted messages execute inside this request; if any fails the host
	// reverts the request, including this transition.
	if err := k.advanceStatus(ctx, types.StatusComplete); err != nil {
		return nil, err
	}

	pairAddr, _ := k.GetPairAddress(ctx, play.Exchange())
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyExchange, play.Exchange()),
			sdk.NewAttribute(types.AttributeKeyPairAddress, pairAddr),
			sdk.NewAttribute(types.AttributeKeyReplyID, fmt.Sprintf("%d", reply.ID)),
		),
	)
	k.Logger(ctx).Info("vault pair created",
		"exchange", play.Exchange(),
		"pair_addr", pairAddr,
		"reply_id", reply.ID,
	)

	return &wasmvmtypes.Response{
		Messages: msgs,
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyAction, Value: "reply"},
			{Key: types.AttributeKeyExchange, Value: play.Exchange()},
			{Key: types.AttributeKeyPairAddress, Value: pairAddr},
		},
	}, nil
}

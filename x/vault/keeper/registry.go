package keeper

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// Reply correlation registry
//
// Every outbound call that expects a reply is tagged with an id drawn from a
// persisted counter; the continuation needed to finish the work is stored
// under that id. When the host delivers the reply, the continuation is
// removed and handed back, so each id resolves at most once.

// GetReplyIDCounter returns the last issued reply id (0 if none)
func (k Keeper) GetReplyIDCounter(ctx context.Context) uint64 {
	return decodeUint64(k.getStore(ctx).Get(ReplyIDCounterKey))
}

// SetReplyIDCounter overwrites the counter. Only creation and genesis call it.
func (k Keeper) SetReplyIDCounter(ctx context.Context, n uint64) {
	k.getStore(ctx).Set(ReplyIDCounterKey, encodeUint64(n))
}

// NextReplyID increments the counter and returns the new value. Ids start at 1
// and are never reused.
func (k Keeper) NextReplyID(ctx context.Context) (uint64, error) {
	next, err := types.AddUint64(k.GetReplyIDCounter(ctx), 1)
	if err != nil {
		return 0, errorsmod.Wrap(err, "reply id counter exhausted")
	}
	k.SetReplyIDCounter(ctx, next)
	return next, nil
}

// HasContinuation reports whether a reply for replyID is outstanding
func (k Keeper) HasContinuation(ctx context.Context, replyID uint64) bool {
	return k.getStore(ctx).Has(ReplyHandlerKey(replyID))
}

// RegisterContinuation stores cont under replyID
func (k Keeper) RegisterContinuation(ctx context.Context, replyID uint64, cont types.Continuation) error {
	if cont.Kind == "" {
		return types.ErrValidation.Wrap("continuation kind is required")
	}

	store := k.getStore(ctx)
	key := ReplyHandlerKey(replyID)
	if store.Has(key) {
		return errorsmod.Wrapf(types.ErrDuplicateCorrelationID, "reply id %d", replyID)
	}

	bz, err := json.Marshal(cont)
	if err != nil {
		return errorsmod.Wrap(err, "failed to marshal continuation")
	}
	store.Set(key, bz)
	k.metrics.PendingContinuations.Inc()

	k.Logger(ctx).Debug("registered continuation", "reply_id", replyID, "kind", cont.Kind)
	return nil
}

// ResolveContinuation removes and returns the continuation for replyID. An id
// that was never issued, or was already resolved, fails with ErrUnknownCorrelationID.
func (k Keeper) ResolveContinuation(ctx context.Context, replyID uint64) (types.Continuation, error) {
	store := k.getStore(ctx)
	key := ReplyHandlerKey(replyID)
	bz := store.Get(key)
	if bz == nil {
		return types.Continuation{}, errorsmod.Wrapf(types.ErrUnknownCorrelationID, "reply id %d", replyID)
	}
	store.Delete(key)
	k.metrics.PendingContinuations.Dec()

	var cont types.Continuation
	if err := json.Unmarshal(bz, &cont); err != nil {
		return types.Continuation{}, errorsmod.Wrapf(err, "corrupt continuation for reply id %d", replyID)
	}
	return cont, nil
}

// IterateContinuations walks pending continuations in reply id order until cb returns true
func (k Keeper) IterateContinuations(ctx context.Context, cb func(replyID uint64, cont types.Continuation) (stop bool)) error {
	store := prefix.NewStore(k.getStore(ctx), ReplyHandlerKeyPrefix)
	iterator := storetypes.KVStorePrefixIterator(store, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var cont types.Continuation
		if err := json.Unmarshal(iterator.Value(), &cont); err != nil {
			return errorsmod.Wrapf(err, "corrupt continuation under key %X", iterator.Key())
		}
		if cb(decodeUint64(iterator.Key()), cont) {
			break
		}
	}
	return nil
}

// GetPendingContinuations returns all outstanding continuations
func (k Keeper) GetPendingContinuations(ctx context.Context) ([]types.PendingContinuation, error) {
	pending := []types.PendingContinuation{}
	err := k.IterateContinuations(ctx, func(replyID uint64, cont types.Continuation) bool {
		pending = append(pending, types.PendingContinuation{ReplyID: replyID, Continuation: cont})
		return false
	})
	return pending, err
}

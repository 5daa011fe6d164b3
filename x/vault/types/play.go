package types

import (
	"context"

	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
)

// Play migrates the vault liquidity into a pair on one exchange. It runs in
// two phases: CreatePair emits the factory call and registers a continuation
// of ContinuationKind; OnCreatePairReply consumes that continuation once the
// host delivers the correlated reply.
type Play interface {
	// Name is the play identifier matched against MsgInstantiate.Play
	Name() string
	// Exchange names the exchange whose pair address the play records
	Exchange() string
	// ContinuationKind tags the continuations this play registers
	ContinuationKind() string

	CreatePair(ctx context.Context, host PlayHost, msg MsgInstantiate) ([]wasmvmtypes.SubMsg, error)
	OnCreatePairReply(ctx context.Context, host PlayHost, result wasmvmtypes.SubMsgResult, cont Continuation) ([]wasmvmtypes.SubMsg, error)
}

// PlayHost is the part of the keeper a play may use
type PlayHost interface {
	GetParams(ctx context.Context) (Params, error)
	// ContractAddress is the vault's own address, the receiver of minted LP tokens
	ContractAddress() string
	NextReplyID(ctx context.Context) (uint64, error)
	RegisterContinuation(ctx context.Context, replyID uint64, cont Continuation) error
	SetPairAddress(ctx context.Context, exchange, addr string) error
	// QuerySmart JSON-encodes req, queries contractAddr and decodes into resp
	QuerySmart(ctx context.Context, contractAddr string, req, resp any) error
}

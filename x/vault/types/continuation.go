package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// Continuation is the state saved with an outbound call that expects a reply.
// Kind names the play that registered it; Data is that play's own encoding.
type Continuation struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// NewContinuation encodes state under kind
func NewContinuation(kind string, state any) (Continuation, error) {
	bz, err := json.Marshal(state)
	if err != nil {
		return Continuation{}, errorsmod.Wrapf(err, "failed to marshal %s continuation", kind)
	}
	return Continuation{Kind: kind, Data: bz}, nil
}

// Decode unmarshals Data into state
func (c Continuation) Decode(state any) error {
	if err := json.Unmarshal(c.Data, state); err != nil {
		return errorsmod.Wrapf(err, "failed to unmarshal %s continuation", c.Kind)
	}
	return nil
}

// PendingContinuation is a continuation together with its correlation id
type PendingContinuation struct {
	ReplyID      uint64       `json:"reply_id"`
	Continuation Continuation `json:"continuation"`
}

package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// MsgInstantiate is the creation request of a vault. It carries the closing
// state of the bonding curve and selects the play that migrates it.
type MsgInstantiate struct {
	VirtualLiquidity math.Uint   `json:"vl"`
	Quote            TokenAmount `json:"quote"`
	Base             TokenAmount `json:"base"`
	Manager          string      `json:"manager"`
	FeeRecipient     string      `json:"fee_recipient"`
	Play             string      `json:"play"`
}

// ValidateBasic performs stateless checks. Every field is required.
func (msg MsgInstantiate) ValidateBasic() error {
	if msg.VirtualLiquidity == (math.Uint{}) {
		return ErrValidation.Wrap("virtual liquidity is required")
	}
	if err := CheckUint128(msg.VirtualLiquidity); err != nil {
		return errorsmod.Wrap(err, "virtual liquidity")
	}
	if err := msg.Quote.Validate(); err != nil {
		return errorsmod.Wrap(err, "quote")
	}
	if err := msg.Base.Validate(); err != nil {
		return errorsmod.Wrap(err, "base")
	}
	if msg.Quote.Token == msg.Base.Token {
		return ErrValidation.Wrapf("quote and base are the same token %s", msg.Quote.Token)
	}
	if err := ValidateAddress(msg.Manager); err != nil {
		return errorsmod.Wrap(err, "manager")
	}
	if err := ValidateAddress(msg.FeeRecipient); err != nil {
		return errorsmod.Wrap(err, "fee recipient")
	}
	if msg.Play == "" {
		return ErrValidation.Wrap("play is required")
	}
	return nil
}

// MsgUpdateParams replaces the vault params. Only the manager may send it.
type MsgUpdateParams struct {
	Sender string `json:"sender"`
	Params Params `json:"params"`
}

// ValidateBasic performs stateless checks
func (msg MsgUpdateParams) ValidateBasic() error {
	if err := ValidateAddress(msg.Sender); err != nil {
		return errorsmod.Wrap(err, "sender")
	}
	return msg.Params.Validate()
}

package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
)

// Token is either a native bank denom or a CW20 contract. Exactly one field is set.
type Token struct {
	Denom   string `json:"denom,omitempty"`
	Address string `json:"address,omitempty"`
}

// NewNativeToken returns a Token for a bank denom
func NewNativeToken(denom string) Token {
	return Token{Denom: denom}
}

// NewContractToken returns a Token for a CW20 contract address
func NewContractToken(addr string) Token {
	return Token{Address: addr}
}

// IsNative reports whether the token is a bank denom
func (t Token) IsNative() bool {
	return t.Denom != ""
}

// GetDenom returns the bank denom, or ErrUnsupportedToken for contract-issued tokens.
func (t Token) GetDenom() (string, error) {
	if !t.IsNative() {
		return "", errorsmod.Wrapf(ErrUnsupportedToken, "token %s has no native denom", t.Address)
	}
	return t.Denom, nil
}

// Key is the identifier exchanges sort assets by: the denom or the contract address.
func (t Token) Key() string {
	if t.IsNative() {
		return t.Denom
	}
	return t.Address
}

func (t Token) String() string {
	if t.IsNative() {
		return "native:" + t.Denom
	}
	return "cw20:" + t.Address
}

// Validate checks that exactly one variant is populated and well formed
func (t Token) Validate() error {
	switch {
	case t.Denom != "" && t.Address != "":
		return ErrValidation.Wrap("token must be either a denom or an address, not both")
	case t.Denom != "":
		if err := ValidateDenom(t.Denom); err != nil {
			return err
		}
	case t.Address != "":
		if err := ValidateAddress(t.Address); err != nil {
			return errorsmod.Wrap(err, "token address")
		}
	default:
		return ErrValidation.Wrap("token is empty")
	}
	return nil
}

// Coin builds the native funds entry for amount, failing for CW20 tokens.
func (t Token) Coin(amount math.Uint) (wasmvmtypes.Coin, error) {
	denom, err := t.GetDenom()
	if err != nil {
		return wasmvmtypes.Coin{}, err
	}
	return NewCoin(denom, amount), nil
}

// Transfer builds a fire-and-forget message moving amount of the token to recipient.
// Native tokens become a bank send; CW20 tokens a transfer executed on the token contract.
func (t Token) Transfer(recipient string, amount math.Uint) (wasmvmtypes.SubMsg, error) {
	if t.IsNative() {
		return wasmvmtypes.SubMsg{
			Msg: wasmvmtypes.CosmosMsg{
				Bank: &wasmvmtypes.BankMsg{
					Send: &wasmvmtypes.SendMsg{
						ToAddress: recipient,
						Amount:    wasmvmtypes.Coins{NewCoin(t.Denom, amount)},
					},
				},
			},
			ReplyOn: wasmvmtypes.ReplyNever,
		}, nil
	}

	return t.executeCW20(cw20ExecuteMsg{
		Transfer: &cw20Transfer{Recipient: recipient, Amount: amount},
	})
}

// IncreaseAllowance lets spender pull amount of a CW20 token from the vault.
func (t Token) IncreaseAllowance(spender string, amount math.Uint) (wasmvmtypes.SubMsg, error) {
	if t.IsNative() {
		return wasmvmtypes.SubMsg{}, errorsmod.Wrapf(ErrUnsupportedToken, "allowance on native denom %s", t.Denom)
	}
	return t.executeCW20(cw20ExecuteMsg{
		IncreaseAllowance: &cw20IncreaseAllowance{Spender: spender, Amount: amount},
	})
}

func (t Token) executeCW20(msg cw20ExecuteMsg) (wasmvmtypes.SubMsg, error) {
	bz, err := json.Marshal(msg)
	if err != nil {
		return wasmvmtypes.SubMsg{}, errorsmod.Wrap(err, "failed to marshal cw20 message")
	}
	return wasmvmtypes.SubMsg{
		Msg: wasmvmtypes.CosmosMsg{
			Wasm: &wasmvmtypes.WasmMsg{
				Execute: &wasmvmtypes.ExecuteMsg{
					ContractAddr: t.Address,
					Msg:          bz,
					Funds:        wasmvmtypes.Coins{},
				},
			},
		},
		ReplyOn: wasmvmtypes.ReplyNever,
	}, nil
}

type cw20ExecuteMsg struct {
	Transfer          *cw20Transfer          `json:"transfer,omitempty"`
	IncreaseAllowance *cw20IncreaseAllowance `json:"increase_allowance,omitempty"`
}

type cw20Transfer struct {
	Recipient string    `json:"recipient"`
	Amount    math.Uint `json:"amount"`
}

type cw20IncreaseAllowance struct {
	Spender string    `json:"spender"`
	Amount  math.Uint `json:"amount"`
}

// TokenAmount pairs a token with a 128-bit amount
type TokenAmount struct {
	Token  Token     `json:"token"`
	Amount math.Uint `json:"amount"`
}

// NewTokenAmount returns a TokenAmount
func NewTokenAmount(token Token, amount math.Uint) TokenAmount {
	return TokenAmount{Token: token, Amount: amount}
}

func (ta TokenAmount) String() string {
	return fmt.Sprintf("%s%s", ta.Amount, ta.Token)
}

// Validate checks the token and that the amount is set and fits 128 bits
func (ta TokenAmount) Validate() error {
	if err := ta.Token.Validate(); err != nil {
		return err
	}
	if ta.Amount == (math.Uint{}) {
		return ErrValidation.Wrapf("missing amount for %s", ta.Token)
	}
	return CheckUint128(ta.Amount)
}

// NewCoin builds a wasmvm coin from a 128-bit amount
func NewCoin(denom string, amount math.Uint) wasmvmtypes.Coin {
	return wasmvmtypes.Coin{Denom: denom, Amount: amount.String()}
}

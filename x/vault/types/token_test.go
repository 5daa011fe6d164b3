package types_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	wasmvmtypes "github.com/CosmWasm/wasmvm/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/Gelotto/cw-pampit-vault/testutil/keeper"
	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

func TestTokenGetDenom(t *testing.T) {
	denom, err := types.NewNativeToken("uinj").GetDenom()
	require.NoError(t, err)
	require.Equal(t, "uinj", denom)

	_, err = types.NewContractToken(keepertest.TestAddr("inj", "cw20")).GetDenom()
	require.ErrorIs(t, err, types.ErrUnsupportedToken)
}

func TestNativeTransferUsesDenom(t *testing.T) {
	recipient := keepertest.TestAddr("inj", "recipient")
	token := types.NewNativeToken("uinj")

	denom, err := token.GetDenom()
	require.NoError(t, err)

	msg, err := token.Transfer(recipient, math.NewUint(250))
	require.NoError(t, err)
	require.Equal(t, wasmvmtypes.ReplyNever, msg.ReplyOn)
	require.Nil(t, msg.Msg.Wasm)
	require.NotNil(t, msg.Msg.Bank)
	require.Equal(t, recipient, msg.Msg.Bank.Send.ToAddress)
	require.Equal(t, wasmvmtypes.Coins{{Denom: denom, Amount: "250"}}, msg.Msg.Bank.Send.Amount)
}

func TestContractTransferExecutesTokenContract(t *testing.T) {
	recipient := keepertest.TestAddr("inj", "recipient")
	tokenAddr := keepertest.TestAddr("inj", "cw20")
	token := types.NewContractToken(tokenAddr)

	msg, err := token.Transfer(recipient, math.NewUint(250))
	require.NoError(t, err)
	require.Nil(t, msg.Msg.Bank)
	require.NotNil(t, msg.Msg.Wasm)
	require.Equal(t, tokenAddr, msg.Msg.Wasm.Execute.ContractAddr)
	require.Empty(t, msg.Msg.Wasm.Execute.Funds)
	require.JSONEq(t, `{"transfer":{"recipient":"`+recipient+`","amount":"250"}}`, string(msg.Msg.Wasm.Execute.Msg))
}

func TestIncreaseAllowance(t *testing.T) {
	spender := keepertest.TestAddr("inj", "pair")
	tokenAddr := keepertest.TestAddr("inj", "cw20")

	msg, err := types.NewContractToken(tokenAddr).IncreaseAllowance(spender, math.NewUint(7))
	require.NoError(t, err)
	require.Equal(t, tokenAddr, msg.Msg.Wasm.Execute.ContractAddr)
	require.JSONEq(t, `{"increase_allowance":{"spender":"`+spender+`","amount":"7"}}`, string(msg.Msg.Wasm.Execute.Msg))

	_, err = types.NewNativeToken("uinj").IncreaseAllowance(spender, math.NewUint(7))
	require.ErrorIs(t, err, types.ErrUnsupportedToken)
}

func TestTokenJSON(t *testing.T) {
	bz, err := json.Marshal(types.NewNativeToken("uinj"))
	require.NoError(t, err)
	require.JSONEq(t, `{"denom":"uinj"}`, string(bz))

	var token types.Token
	require.NoError(t, json.Unmarshal([]byte(`{"address":"inj1abc"}`), &token))
	require.False(t, token.IsNative())
	require.Equal(t, "inj1abc", token.Key())
}

func TestTokenValidate(t *testing.T) {
	tests := []struct {
		name    string
		token   types.Token
		wantErr bool
	}{
		{name: "native", token: types.NewNativeToken("uinj")},
		{name: "factory denom", token: types.NewNativeToken("factory/inj1creator/pump")},
		{name: "cw20", token: types.NewContractToken(keepertest.TestAddr("inj", "cw20"))},
		{name: "empty", token: types.Token{}, wantErr: true},
		{name: "both set", token: types.Token{Denom: "uinj", Address: keepertest.TestAddr("inj", "cw20")}, wantErr: true},
		{name: "bad denom", token: types.NewNativeToken("1"), wantErr: true},
		{name: "bad address", token: types.NewContractToken("not-bech32"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTokenAmountValidate(t *testing.T) {
	require.NoError(t, types.NewTokenAmount(types.NewNativeToken("uinj"), types.MaxUint128).Validate())

	tooLarge := types.MaxUint128.Add(math.OneUint())
	require.ErrorIs(t, types.NewTokenAmount(types.NewNativeToken("uinj"), tooLarge).Validate(), types.ErrArithmeticOverflow)

	require.ErrorIs(t, types.TokenAmount{Token: types.NewNativeToken("uinj")}.Validate(), types.ErrValidation)
}

package plays

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"github.com/Gelotto/cw-pampit-vault/x/vault/types"
)

// PairAmounts are the amounts a migration commits: fee goes to the fee
// recipient, base and quote seed the new pair.
type PairAmounts struct {
	Fee   math.Uint `json:"fee"`
	Base  math.Uint `json:"base"`
	Quote math.Uint `json:"quote"`
}

// PrepareAmounts derives the pair amounts from the closing bonding curve state
// so the pair opens at the curve's closing price, base/(quote+vl).
//
// The reduced quote is taken from b0, not q0. That mirrors the deployed
// contract; see DESIGN.md before changing it.
func PrepareAmounts(q0, b0, v0 math.Uint, feeRate uint64) (PairAmounts, error) {
	rate := math.NewUint(feeRate)
	denom := math.NewUint(types.PlatformFeeDenominator)

	feeQuote, err := types.MulRatio(q0, rate, denom)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "quote fee")
	}
	baseReduction, err := types.MulRatio(b0, rate, denom)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "base reduction")
	}
	vlReduction, err := types.MulRatio(v0, rate, denom)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "virtual liquidity reduction")
	}

	b, err := types.SubChecked(b0, baseReduction)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "reduced base")
	}
	q, err := types.SubChecked(b0, feeQuote)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "reduced quote")
	}
	v, err := types.SubChecked(v0, vlReduction)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "reduced virtual liquidity")
	}

	qv, err := types.AddChecked(q, v)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "quote plus virtual liquidity")
	}
	base, err := types.MulRatio(b, q, qv)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "pair base amount")
	}

	return PairAmounts{
		Fee:   feeQuote,
		Base:  base,
		Quote: q,
	}, nil
}

// AdjustForCreationFee takes creationFee out of the quote side and scales the
// base side by the same factor, keeping the opening price.
func AdjustForCreationFee(amounts PairAmounts, creationFee math.Uint) (PairAmounts, error) {
	quote, err := types.SubChecked(amounts.Quote, creationFee)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "quote after creation fee")
	}
	total, err := types.AddChecked(quote, creationFee)
	if err != nil {
		return PairAmounts{}, err
	}
	base, err := types.MulRatio(amounts.Base, quote, total)
	if err != nil {
		return PairAmounts{}, errorsmod.Wrap(err, "base after creation fee")
	}
	return PairAmounts{
		Fee:   amounts.Fee,
		Base:  base,
		Quote: quote,
	}, nil
}

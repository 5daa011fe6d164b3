package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// Uint128Bits is the width every token amount handled by the vault must fit in.
const Uint128Bits = 128

// MaxUint128 is 2^128 - 1
var MaxUint128 = math.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), Uint128Bits), big.NewInt(1)))

// CheckUint128 returns ErrArithmeticOverflow if v does not fit 128 bits
func CheckUint128(v math.Uint) error {
	if v.BigInt().BitLen() > Uint128Bits {
		return errorsmod.Wrapf(ErrArithmeticOverflow, "%s exceeds 128 bits", v)
	}
	return nil
}

// MulRatio computes floor(a * b / denom). The product is carried in 512 bits
// so only a quotient wider than 128 bits is reported as overflow.
func MulRatio(a, b, denom math.Uint) (math.Uint, error) {
	if denom.IsZero() {
		return math.Uint{}, errorsmod.Wrapf(ErrDivideByZero, "mul ratio %s * %s / 0", a, b)
	}

	x, overflow := uint256.FromBig(a.BigInt())
	if overflow {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticOverflow, "operand %s", a)
	}
	y, overflow := uint256.FromBig(b.BigInt())
	if overflow {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticOverflow, "operand %s", b)
	}
	d, overflow := uint256.FromBig(denom.BigInt())
	if overflow {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticOverflow, "denominator %s", denom)
	}

	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow || z.BitLen() > Uint128Bits {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticOverflow, "%s * %s / %s", a, b, denom)
	}

	return math.NewUintFromBigInt(z.ToBig()), nil
}

// AddChecked adds two 128-bit amounts
func AddChecked(a, b math.Uint) (math.Uint, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if sum.BitLen() > Uint128Bits {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticOverflow, "%s + %s", a, b)
	}
	return math.NewUintFromBigInt(sum), nil
}

// SubChecked subtracts b from a, failing instead of wrapping below zero
func SubChecked(a, b math.Uint) (math.Uint, error) {
	if a.LT(b) {
		return math.Uint{}, errorsmod.Wrapf(ErrArithmeticUnderflow, "cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// AddUint64 adds two uint64 values with overflow checking
func AddUint64(a, b uint64) (uint64, error) {
	if a > (1<<64 - 1 - b) {
		return 0, errorsmod.Wrapf(ErrArithmeticOverflow, "uint64 %d + %d", a, b)
	}
	return a + b, nil
}

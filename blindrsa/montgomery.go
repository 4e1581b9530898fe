package blindrsa

import (
	"math/big"

	"github.com/cloudflare/at-go/util"
)

// montgomeryContext holds the constants for arithmetic modulo an odd n in
// Montgomery form, with R = 2^rBits and rBits = 8*byteLen(n).
type montgomeryContext struct {
	n      *big.Int
	rBits  uint
	mask   *big.Int // R - 1
	nPrime *big.Int // -n^-1 mod R
	one    *big.Int // R mod n
}

func newMontgomeryContext(n *big.Int) (*montgomeryContext, error) {
	if n.Sign() <= 0 || n.Bit(0) == 0 || n.Cmp(bigOne) == 0 {
		return nil, util.InvalidArgumentf("Montgomery modulus must be odd and greater than one")
	}

	rBits := uint(8 * byteLen(n))
	r := new(big.Int).Lsh(bigOne, rBits)
	mask := new(big.Int).Sub(r, bigOne)

	nInv := new(big.Int).ModInverse(n, r)
	if nInv == nil {
		return nil, util.Internalf("modulus not invertible modulo R")
	}
	nPrime := new(big.Int).Sub(r, nInv)

	return &montgomeryContext{
		n:      n,
		rBits:  rBits,
		mask:   mask,
		nPrime: nPrime,
		one:    new(big.Int).Mod(r, n),
	}, nil
}

// redc returns t*R^-1 mod n for 0 <= t < n*R.
func (c *montgomeryContext) redc(t *big.Int) *big.Int {
	m := new(big.Int).And(t, c.mask)
	m.Mul(m, c.nPrime)
	m.And(m, c.mask)
	m.Mul(m, c.n)
	m.Add(m, t)
	m.Rsh(m, c.rBits)
	if m.Cmp(c.n) >= 0 {
		m.Sub(m, c.n)
	}
	return m
}

func (c *montgomeryContext) toMontgomery(x *big.Int) *big.Int {
	y := new(big.Int).Mod(x, c.n)
	y.Lsh(y, c.rBits)
	return y.Mod(y, c.n)
}

func (c *montgomeryContext) fromMontgomery(x *big.Int) *big.Int {
	return c.redc(x)
}

// mul returns a*b*R^-1 mod n. With both operands in Montgomery form the
// result is too; with one operand in normal form the result is the plain
// product mod n.
func (c *montgomeryContext) mul(a, b *big.Int) *big.Int {
	return c.redc(new(big.Int).Mul(a, b))
}

// exp returns base^exponent mod n. base is in normal form, as is the result.
func (c *montgomeryContext) exp(base, exponent *big.Int) *big.Int {
	x := c.toMontgomery(base)
	acc := new(big.Int).Set(c.one)
	for i := exponent.BitLen() - 1; i >= 0; i-- {
		acc = c.mul(acc, acc)
		if exponent.Bit(i) == 1 {
			acc = c.mul(acc, x)
		}
	}
	return c.fromMontgomery(acc)
}

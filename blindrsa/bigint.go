package blindrsa

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/cloudflare/at-go/util"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// StringToBigInt interprets b as an unsigned big-endian integer.
func StringToBigInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// BigIntToString encodes x as a big-endian byte string of exactly size bytes.
func BigIntToString(x *big.Int, size int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, util.InvalidArgumentf("cannot encode negative integer")
	}
	if (x.BitLen()+7)/8 > size {
		return nil, util.InvalidArgumentf("integer of %d bits does not fit in %d bytes", x.BitLen(), size)
	}
	return x.FillBytes(make([]byte, size)), nil
}

// byteLen returns the length in bytes of the big-endian encoding of x.
func byteLen(x *big.Int) int {
	return (x.BitLen() + 7) / 8
}

// ModInverse returns a^-1 mod m.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, util.Internalf("value is not invertible modulo %d-bit modulus", m.BitLen())
	}
	return inv, nil
}

func ComputeGcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

func ComputeLcm(a, b *big.Int) *big.Int {
	gcd := ComputeGcd(a, b)
	if gcd.Sign() == 0 {
		return new(big.Int)
	}
	lcm := new(big.Int).Div(a, gcd)
	return lcm.Mul(lcm, b)
}

// ComputeCarmichaelLcm returns lcm(p-1, q-1) for a strong RSA modulus, whose
// primes are of the form 2p'+1, where it equals ((p-1)(q-1))/2.
//
// For any other modulus the value is a multiple of lcm(p-1, q-1), so an
// exponent inverted modulo it still yields a working key pair as long as the
// inverse exists.
func ComputeCarmichaelLcm(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	phi := new(big.Int).Mul(pm1, qm1)
	return phi.Rsh(phi, 1)
}

// RandomBigIntInRange draws a uniform integer in [lo, hi).
func RandomBigIntInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return nil, util.InvalidArgumentf("empty range for random integer")
	}
	x, err := rand.Int(random, span)
	if err != nil {
		return nil, util.Internalf("drawing random integer: %v", err)
	}
	return x.Add(x, lo), nil
}

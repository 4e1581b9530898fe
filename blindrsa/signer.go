package blindrsa

import (
	"crypto/rsa"
	"math/big"

	"github.com/cloudflare/at-go/util"
)

// BlindSigner signs opaque blinded values. It never sees the message.
type BlindSigner interface {
	Sign(blindedData []byte) ([]byte, error)
}

type crtValues struct {
	p, q   *big.Int
	dp, dq *big.Int
	qInv   *big.Int
}

// RsaBlindSigner computes raw RSA signatures over blinded messages, with the
// private exponent optionally augmented by public metadata.
type RsaBlindSigner struct {
	key  *rsaKey
	d    *big.Int
	crt  *crtValues
	mont *montgomeryContext
}

var _ BlindSigner = (*RsaBlindSigner)(nil)

func NewRsaBlindSigner(sk *rsa.PrivateKey) (*RsaBlindSigner, error) {
	if err := checkPrivateKey(sk); err != nil {
		return nil, err
	}
	key, err := newRSAKey(&sk.PublicKey, nil, false, false)
	if err != nil {
		return nil, err
	}
	signer := &RsaBlindSigner{
		key: key,
		d:   new(big.Int).Set(sk.D),
	}
	if len(sk.Primes) == 2 {
		if sk.Precomputed.Dp != nil && sk.Precomputed.Dq != nil && sk.Precomputed.Qinv != nil {
			signer.crt = &crtValues{
				p:    sk.Primes[0],
				q:    sk.Primes[1],
				dp:   sk.Precomputed.Dp,
				dq:   sk.Precomputed.Dq,
				qInv: sk.Precomputed.Qinv,
			}
		} else if signer.crt, err = newCRTValues(sk.Primes[0], sk.Primes[1], signer.d); err != nil {
			return nil, err
		}
	}
	return signer.withMontgomery()
}

// NewRsaBlindSignerWithPublicMetadata returns a signer whose private exponent
// is the inverse of the metadata-augmented public exponent. The key must
// consist of exactly two primes.
func NewRsaBlindSignerWithPublicMetadata(sk *rsa.PrivateKey, metadata []byte, useRSAPublicExponent bool) (*RsaBlindSigner, error) {
	if err := checkPrivateKey(sk); err != nil {
		return nil, err
	}
	if len(sk.Primes) != 2 {
		return nil, util.InvalidArgumentf("public metadata requires a two-prime key, got %d primes", len(sk.Primes))
	}
	p, q := sk.Primes[0], sk.Primes[1]
	if new(big.Int).Mul(p, q).Cmp(sk.N) != 0 {
		return nil, util.InvalidArgumentf("RSA primes do not match the modulus")
	}

	key, err := newRSAKey(&sk.PublicKey, metadata, true, useRSAPublicExponent)
	if err != nil {
		return nil, err
	}
	d, err := AugmentedPrivateExponent(p, q, key.augmentedE)
	if err != nil {
		return nil, err
	}
	crt, err := newCRTValues(p, q, d)
	if err != nil {
		return nil, err
	}
	signer := &RsaBlindSigner{
		key: key,
		d:   d,
		crt: crt,
	}
	return signer.withMontgomery()
}

func checkPrivateKey(sk *rsa.PrivateKey) error {
	if sk == nil || sk.D == nil || sk.D.Sign() <= 0 {
		return util.InvalidArgumentf("missing RSA private key")
	}
	for _, prime := range sk.Primes {
		if prime == nil || prime.Cmp(bigOne) <= 0 {
			return util.InvalidArgumentf("invalid RSA prime")
		}
	}
	return nil
}

func newCRTValues(p, q, d *big.Int) (*crtValues, error) {
	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	qInv, err := ModInverse(q, p)
	if err != nil {
		return nil, err
	}
	return &crtValues{
		p:    p,
		q:    q,
		dp:   new(big.Int).Mod(d, pm1),
		dq:   new(big.Int).Mod(d, qm1),
		qInv: qInv,
	}, nil
}

func (s *RsaBlindSigner) withMontgomery() (*RsaBlindSigner, error) {
	mont, err := newMontgomeryContext(s.key.n)
	if err != nil {
		return nil, err
	}
	s.mont = mont
	return s, nil
}

// Sign returns blindedData^d mod n. The result is checked against the
// (augmented) public exponent before it is returned.
func (s *RsaBlindSigner) Sign(blindedData []byte) ([]byte, error) {
	if len(blindedData) == 0 {
		return nil, util.InvalidArgumentf("blinded data is empty")
	}
	if len(blindedData) != s.key.modulusBytes {
		return nil, util.InvalidArgumentf("blinded data is %d bytes, want %d", len(blindedData), s.key.modulusBytes)
	}
	c := StringToBigInt(blindedData)
	if c.Cmp(s.key.n) >= 0 {
		return nil, util.InvalidArgumentf("blinded data out of range for modulus")
	}

	sig := s.decrypt(c)

	if s.mont.exp(sig, s.key.augmentedE).Cmp(c) != 0 {
		return nil, util.Internalf("signature self-check failed")
	}
	return BigIntToString(sig, s.key.modulusBytes)
}

func (s *RsaBlindSigner) decrypt(c *big.Int) *big.Int {
	if s.crt == nil {
		return new(big.Int).Exp(c, s.d, s.key.n)
	}
	m1 := new(big.Int).Exp(c, s.crt.dp, s.crt.p)
	m2 := new(big.Int).Exp(c, s.crt.dq, s.crt.q)
	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, s.crt.qInv)
	h.Mod(h, s.crt.p)
	h.Mul(h, s.crt.q)
	return h.Add(h, m2)
}

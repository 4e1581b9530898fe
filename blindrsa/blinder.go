package blindrsa

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"math/big"

	"github.com/cloudflare/at-go/util"
)

// Blinder is the client half of the protocol for a single message.
type Blinder interface {
	Blind(message []byte) ([]byte, error)
	Unblind(blindSignature []byte) ([]byte, error)
	Verify(signature, message []byte) error
}

type blinderState int

const (
	blinderCreated blinderState = iota
	blinderBlinded
	blinderUnblinded
)

func (s blinderState) String() string {
	switch s {
	case blinderCreated:
		return "created"
	case blinderBlinded:
		return "blinded"
	case blinderUnblinded:
		return "unblinded"
	default:
		return "unknown"
	}
}

// RsaBlinder blinds one message, unblinds the signature returned for it and
// checks the result. It is single-use and not safe for concurrent use.
type RsaBlinder struct {
	params Params
	key    *rsaKey
	mont   *montgomeryContext
	random io.Reader

	r        *big.Int
	rInvMont *big.Int // r^-1 in Montgomery form
	state    blinderState
}

var _ Blinder = (*RsaBlinder)(nil)

func NewRsaBlinder(pk *rsa.PublicKey, params Params) (*RsaBlinder, error) {
	return NewRsaBlinderWithRandom(rand.Reader, pk, params, nil, false, false)
}

// NewRsaBlinderWithPublicMetadata returns a blinder whose signature is bound
// to metadata. An empty metadata value is still bound; it is not the same as
// having no metadata.
func NewRsaBlinderWithPublicMetadata(pk *rsa.PublicKey, params Params, metadata []byte, useRSAPublicExponent bool) (*RsaBlinder, error) {
	return NewRsaBlinderWithRandom(rand.Reader, pk, params, metadata, true, useRSAPublicExponent)
}

// NewRsaBlinderWithRandom is like NewRsaBlinderWithPublicMetadata but reads the
// blinding factor and the PSS salt from random.
func NewRsaBlinderWithRandom(random io.Reader, pk *rsa.PublicKey, params Params, metadata []byte, withMetadata, useRSAPublicExponent bool) (*RsaBlinder, error) {
	return newRsaBlinder(random, nil, pk, params, metadata, withMetadata, useRSAPublicExponent)
}

// newRsaBlinder uses r as the blinding factor when it is not nil.
func newRsaBlinder(random io.Reader, r *big.Int, pk *rsa.PublicKey, params Params, metadata []byte, withMetadata, useRSAPublicExponent bool) (*RsaBlinder, error) {
	if random == nil {
		random = rand.Reader
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	key, err := newRSAKey(pk, metadata, withMetadata, useRSAPublicExponent)
	if err != nil {
		return nil, err
	}
	mont, err := newMontgomeryContext(key.n)
	if err != nil {
		return nil, err
	}

	if r == nil {
		r, err = RandomBigIntInRange(random, bigTwo, key.n)
		if err != nil {
			return nil, err
		}
	} else if r.Cmp(bigOne) <= 0 || r.Cmp(key.n) >= 0 {
		return nil, util.InvalidArgumentf("blinding factor out of range")
	}
	rInv, err := ModInverse(r, key.n)
	if err != nil {
		return nil, err
	}

	return &RsaBlinder{
		params:   params,
		key:      key,
		mont:     mont,
		random:   random,
		r:        r,
		rInvMont: mont.toMontgomery(rInv),
		state:    blinderCreated,
	}, nil
}

// Blind encodes message with EMSA-PSS and returns m*r^e' mod n as a
// modulus-sized byte string.
func (b *RsaBlinder) Blind(message []byte) ([]byte, error) {
	if b.state != blinderCreated {
		return nil, util.FailedPreconditionf("Blind called on a %s blinder", b.state)
	}

	digest, err := b.params.digest(b.key.prepareMessage(message))
	if err != nil {
		return nil, err
	}

	salt := make([]byte, b.params.SaltLength)
	if _, err := io.ReadFull(b.random, salt); err != nil {
		return nil, util.Internalf("reading PSS salt: %v", err)
	}

	em, err := emsaPSSEncode(digest, b.key.n.BitLen()-1, salt, b.params.SigHash, b.params.MGF1Hash)
	if err != nil {
		return nil, err
	}

	m := StringToBigInt(em)
	rPowE := b.mont.exp(b.r, b.key.augmentedE)
	blinded := b.mont.mul(b.mont.toMontgomery(m), rPowE)

	out, err := BigIntToString(blinded, b.key.modulusBytes)
	if err != nil {
		return nil, err
	}
	b.state = blinderBlinded
	return out, nil
}

// Unblind removes the blinding factor from a signature over the blinded message.
func (b *RsaBlinder) Unblind(blindSignature []byte) ([]byte, error) {
	if b.state != blinderBlinded {
		return nil, util.FailedPreconditionf("Unblind called on a %s blinder", b.state)
	}
	if len(blindSignature) != b.key.modulusBytes {
		return nil, util.InvalidArgumentf("blind signature is %d bytes, want %d", len(blindSignature), b.key.modulusBytes)
	}

	z := StringToBigInt(blindSignature)
	s := b.mont.mul(z, b.rInvMont)

	out, err := BigIntToString(s, b.key.modulusBytes)
	if err != nil {
		return nil, err
	}
	b.state = blinderUnblinded
	return out, nil
}

// Verify checks an unblinded signature with this blinder's key and metadata.
func (b *RsaBlinder) Verify(signature, message []byte) error {
	if b.state == blinderCreated {
		return util.FailedPreconditionf("Verify called before Blind")
	}
	return verifyBlindSignature(b.params, b.key, b.mont, signature, message)
}

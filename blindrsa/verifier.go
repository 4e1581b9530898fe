package blindrsa

import (
	"crypto/rsa"
	"math/big"

	"github.com/cloudflare/at-go/util"
)

// Verifier checks a finalized (unblinded) signature over a message.
type Verifier interface {
	Verify(signature, message []byte) error
}

// RsaSsaPssVerifier verifies RSASSA-PSS signatures produced by the blind
// signature protocol, optionally bound to public metadata.
type RsaSsaPssVerifier struct {
	params Params
	key    *rsaKey
	mont   *montgomeryContext
}

var _ Verifier = (*RsaSsaPssVerifier)(nil)

func NewRsaSsaPssVerifier(pk *rsa.PublicKey, params Params) (*RsaSsaPssVerifier, error) {
	return newRsaSsaPssVerifier(pk, params, nil, false, false)
}

func NewRsaSsaPssVerifierWithPublicMetadata(pk *rsa.PublicKey, params Params, metadata []byte, useRSAPublicExponent bool) (*RsaSsaPssVerifier, error) {
	return newRsaSsaPssVerifier(pk, params, metadata, true, useRSAPublicExponent)
}

func newRsaSsaPssVerifier(pk *rsa.PublicKey, params Params, metadata []byte, withMetadata, useRSAPublicExponent bool) (*RsaSsaPssVerifier, error) {
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
	return &RsaSsaPssVerifier{
		params: params,
		key:    key,
		mont:   mont,
	}, nil
}

func (v *RsaSsaPssVerifier) Verify(signature, message []byte) error {
	return verifyBlindSignature(v.params, v.key, v.mont, signature, message)
}

// VerifyBlindSignature checks signature over message for the modulus and
// public exponent of pk. When withMetadata is set, message is framed with
// metadata and the signature is checked against augmentedE instead of e.
func VerifyBlindSignature(params Params, pk *rsa.PublicKey, augmentedE *big.Int, signature, message, metadata []byte, withMetadata bool) error {
	if err := params.validate(); err != nil {
		return err
	}
	key, err := newRSAKey(pk, nil, false, false)
	if err != nil {
		return err
	}
	var mont *montgomeryContext
	if withMetadata {
		if augmentedE == nil || augmentedE.Sign() <= 0 {
			return util.InvalidArgumentf("missing augmented public exponent")
		}
		key.augmentedE = augmentedE
		key.metadata = metadata
		key.withMetadata = true
		if mont, err = newMontgomeryContext(key.n); err != nil {
			return err
		}
	}
	return verifyBlindSignature(params, key, mont, signature, message)
}

func verifyBlindSignature(params Params, key *rsaKey, mont *montgomeryContext, signature, message []byte) error {
	digest, err := params.digest(key.prepareMessage(message))
	if err != nil {
		return err
	}
	if len(signature) != key.modulusBytes {
		return util.InvalidArgumentf("signature is %d bytes, want %d", len(signature), key.modulusBytes)
	}

	s := StringToBigInt(signature)
	if s.Cmp(key.n) >= 0 {
		return util.InvalidArgumentf("signature representative out of range")
	}

	var m *big.Int
	if key.withMetadata {
		m = mont.exp(s, key.augmentedE)
	} else {
		m = new(big.Int).Exp(s, key.e, key.n)
	}

	emBits := key.n.BitLen() - 1
	emLen := (emBits + 7) / 8
	if m.BitLen() > emLen*8 {
		return verificationError("encoded message too long")
	}
	em := m.FillBytes(make([]byte, emLen))
	return emsaPSSVerify(digest, em, emBits, params.SaltLength, params.SigHash, params.MGF1Hash)
}

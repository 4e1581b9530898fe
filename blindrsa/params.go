package blindrsa

import (
	"crypto"
	"crypto/rsa"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"math/big"

	"github.com/cloudflare/at-go/util"
)

// Params selects the PSS encoding used for a key.
type Params struct {
	SigHash    crypto.Hash
	MGF1Hash   crypto.Hash
	SaltLength int
}

// SHA384PSSParams are the parameters of RSABSSA-SHA384-PSS.
var SHA384PSSParams = Params{
	SigHash:    crypto.SHA384,
	MGF1Hash:   crypto.SHA384,
	SaltLength: crypto.SHA384.Size(),
}

func supportedHash(h crypto.Hash) bool {
	return h == crypto.SHA256 || h == crypto.SHA384
}

func (p Params) validate() error {
	if !supportedHash(p.SigHash) {
		return util.InvalidArgumentf("unsupported signature hash %v", p.SigHash)
	}
	if !supportedHash(p.MGF1Hash) {
		return util.InvalidArgumentf("unsupported MGF1 hash %v", p.MGF1Hash)
	}
	if p.SaltLength < 0 {
		return util.InvalidArgumentf("invalid salt length %d", p.SaltLength)
	}
	return nil
}

// digest hashes message with the signature hash.
func (p Params) digest(message []byte) ([]byte, error) {
	h := p.SigHash.New()
	h.Write(message)
	digest := h.Sum(nil)
	if len(digest) != p.SigHash.Size() {
		return nil, util.Internalf("digest is %d bytes, want %d", len(digest), p.SigHash.Size())
	}
	return digest, nil
}

// rsaKey is the parsed public part shared by the blinder, signer and verifier.
type rsaKey struct {
	n *big.Int
	e *big.Int
	// augmentedE equals e unless public metadata is in use.
	augmentedE   *big.Int
	modulusBytes int
	metadata     []byte
	withMetadata bool
}

func newRSAKey(pk *rsa.PublicKey, metadata []byte, withMetadata, useRSAPublicExponent bool) (*rsaKey, error) {
	if pk == nil || pk.N == nil {
		return nil, util.InvalidArgumentf("missing RSA public key")
	}
	if pk.N.Sign() <= 0 || pk.N.Bit(0) == 0 {
		return nil, util.InvalidArgumentf("RSA modulus must be positive and odd")
	}
	if pk.E <= 1 {
		return nil, util.InvalidArgumentf("RSA public exponent %d out of range", pk.E)
	}

	key := &rsaKey{
		n:            new(big.Int).Set(pk.N),
		e:            big.NewInt(int64(pk.E)),
		modulusBytes: byteLen(pk.N),
		withMetadata: withMetadata,
	}
	if !withMetadata {
		key.augmentedE = key.e
		return key, nil
	}

	key.metadata = append([]byte{}, metadata...)
	augmentedE, err := AugmentedPublicExponent(key.n, key.e, metadata, useRSAPublicExponent)
	if err != nil {
		return nil, err
	}
	key.augmentedE = augmentedE
	return key, nil
}

// prepareMessage applies the public metadata framing, if any.
func (k *rsaKey) prepareMessage(message []byte) []byte {
	if !k.withMetadata {
		return message
	}
	return EncodeMessagePublicMetadata(message, k.metadata)
}

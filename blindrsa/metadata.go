package blindrsa

import (
	"crypto/sha512"
	"encoding/binary"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/cloudflare/at-go/util"
)

var (
	metadataKeyPrefix     = []byte("key")
	metadataMessagePrefix = []byte("msg")
	metadataHKDFInfo      = []byte("PBRSA")
)

// The expansion is longer than the output by this many bytes so that the
// truncated value is statistically close to uniform.
const metadataExpansionSlack = 16

// DeriveExponent maps (n, metadata) to an odd integer below
// 2^(8*primeBytes-2), where primeBytes is half the byte length of n.
//
// The result is coprime to lcm(p-1, q-1) when n is the product of two
// equal-size safe primes.
func DeriveExponent(n *big.Int, metadata []byte) (*big.Int, error) {
	if n.BitLen()%2 == 1 {
		return nil, util.InvalidArgumentf("modulus bit length %d is odd", n.BitLen())
	}
	modulusBytes := byteLen(n)
	primeBytes := modulusBytes / 2

	salt := make([]byte, modulusBytes)
	n.FillBytes(salt)

	ikm := make([]byte, 0, len(metadataKeyPrefix)+len(metadata)+1)
	ikm = append(ikm, metadataKeyPrefix...)
	ikm = append(ikm, metadata...)
	ikm = append(ikm, 0x00)

	expanded := make([]byte, primeBytes+metadataExpansionSlack)
	kdf := hkdf.New(sha512.New384, ikm, salt, metadataHKDFInfo)
	if _, err := io.ReadFull(kdf, expanded); err != nil {
		return nil, util.Internalf("expanding public metadata: %v", err)
	}

	exponent := new(big.Int).SetBytes(expanded[:primeBytes])
	primeBits := 8 * primeBytes
	exponent.SetBit(exponent, primeBits-1, 0)
	exponent.SetBit(exponent, primeBits-2, 0)
	exponent.SetBit(exponent, 0, 1)

	if exponent.BitLen() >= primeBits-1 {
		return nil, util.Internalf("derived exponent has %d bits, want fewer than %d", exponent.BitLen(), primeBits-1)
	}
	return exponent, nil
}

// AugmentedPublicExponent returns the public exponent bound to metadata:
// e*H(n, metadata), or H(n, metadata) alone when useRSAPublicExponent is false.
func AugmentedPublicExponent(n, e *big.Int, metadata []byte, useRSAPublicExponent bool) (*big.Int, error) {
	exponent, err := DeriveExponent(n, metadata)
	if err != nil {
		return nil, err
	}
	if !useRSAPublicExponent {
		return exponent, nil
	}
	return exponent.Mul(exponent, e), nil
}

// AugmentedPrivateExponent inverts the augmented public exponent modulo
// ((p-1)(q-1))/2.
func AugmentedPrivateExponent(p, q, augmentedE *big.Int) (*big.Int, error) {
	lambda := ComputeCarmichaelLcm(p, q)
	d, err := ModInverse(augmentedE, lambda)
	if err != nil {
		return nil, util.Internalf("computing augmented private exponent: %v", err)
	}
	return d, nil
}

// EncodeMessagePublicMetadata frames message with metadata:
// "msg" || len(metadata) as uint32 || metadata || message.
func EncodeMessagePublicMetadata(message, metadata []byte) []byte {
	out := make([]byte, 0, len(metadataMessagePrefix)+4+len(metadata)+len(message))
	out = append(out, metadataMessagePrefix...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(metadata)))
	out = append(out, metadata...)
	return append(out, message...)
}

package blindrsa

import (
	"bytes"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha512"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudflare/at-go/testutil"
	"github.com/cloudflare/at-go/util"
)

func newBlinder(t *testing.T, pk *rsa.PublicKey, metadata []byte, withMetadata, useRSAPublicExponent bool) *RsaBlinder {
	blinder, err := NewRsaBlinderWithRandom(rand.Reader, pk, SHA384PSSParams, metadata, withMetadata, useRSAPublicExponent)
	require.NoError(t, err)
	return blinder
}

func newSigner(t *testing.T, sk *rsa.PrivateKey, metadata []byte, withMetadata, useRSAPublicExponent bool) *RsaBlindSigner {
	if !withMetadata {
		signer, err := NewRsaBlindSigner(sk)
		require.NoError(t, err)
		return signer
	}
	signer, err := NewRsaBlindSignerWithPublicMetadata(sk, metadata, useRSAPublicExponent)
	require.NoError(t, err)
	return signer
}

// runProtocol blinds, signs and unblinds message, returning the final signature.
func runProtocol(t *testing.T, sk *rsa.PrivateKey, message, metadata []byte, withMetadata, useRSAPublicExponent bool) []byte {
	blinder := newBlinder(t, &sk.PublicKey, metadata, withMetadata, useRSAPublicExponent)
	signer := newSigner(t, sk, metadata, withMetadata, useRSAPublicExponent)

	blinded, err := blinder.Blind(message)
	require.NoError(t, err)
	require.Len(t, blinded, byteLen(sk.N))

	blindSig, err := signer.Sign(blinded)
	require.NoError(t, err)
	require.Len(t, blindSig, byteLen(sk.N))

	sig, err := blinder.Unblind(blindSig)
	require.NoError(t, err)
	require.Len(t, sig, byteLen(sk.N))

	require.NoError(t, blinder.Verify(sig, message))
	return sig
}

func TestBlindSignatureVectors(t *testing.T) {
	for _, v := range testutil.BlindSignatureVectors() {
		n := v.Key.N

		digest := sha512.Sum384(v.Message)
		em, err := emsaPSSEncode(digest[:], n.BitLen()-1, v.Salt, SHA384PSSParams.SigHash, SHA384PSSParams.MGF1Hash)
		require.NoError(t, err)
		require.Equal(t, v.EncodedMessage, em)

		r, err := ModInverse(StringToBigInt(v.Inv), n)
		require.NoError(t, err)
		blinder, err := newRsaBlinder(bytes.NewReader(v.Salt), r, &v.Key.PublicKey, SHA384PSSParams, nil, false, false)
		require.NoError(t, err)

		blinded, err := blinder.Blind(v.Message)
		require.NoError(t, err)
		require.Equal(t, v.BlindedMessage, blinded)

		signer, err := NewRsaBlindSigner(v.Key)
		require.NoError(t, err)
		blindSig, err := signer.Sign(blinded)
		require.NoError(t, err)
		require.Equal(t, v.BlindedSignature, blindSig)

		sig, err := blinder.Unblind(blindSig)
		require.NoError(t, err)
		require.Equal(t, v.Signature, sig)

		require.NoError(t, blinder.Verify(sig, v.Message))

		verifier, err := NewRsaSsaPssVerifier(&v.Key.PublicKey, SHA384PSSParams)
		require.NoError(t, err)
		require.NoError(t, verifier.Verify(v.Signature, v.Message))
	}
}

func TestPublicMetadataVectors(t *testing.T) {
	sets := map[string]testutil.PublicMetadataVectorSet{
		"WithPublicExponent":    testutil.PublicMetadataVectors(),
		"WithoutPublicExponent": testutil.PublicMetadataNoPublicExponentVectors(),
	}
	for name, set := range sets {
		t.Run(name, func(t *testing.T) {
			pk := &set.Key.PublicKey
			for _, v := range set.Vectors {
				signer, err := NewRsaBlindSignerWithPublicMetadata(set.Key, v.PublicMetadata, set.UseRSAPublicExponent)
				require.NoError(t, err)
				blindSig, err := signer.Sign(v.BlindedMessage)
				require.NoError(t, err)
				require.Equal(t, v.BlindedSignature, blindSig)

				message := append(append([]byte{}, v.MessageMask...), v.Message...)
				verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(pk, SHA384PSSParams, v.PublicMetadata, set.UseRSAPublicExponent)
				require.NoError(t, err)
				require.NoError(t, verifier.Verify(v.Signature, message))

				augmentedE, err := AugmentedPublicExponent(pk.N, big.NewInt(int64(pk.E)), v.PublicMetadata, set.UseRSAPublicExponent)
				require.NoError(t, err)
				require.NoError(t, VerifyBlindSignature(SHA384PSSParams, pk, augmentedE, v.Signature, message, v.PublicMetadata, true))

				// The same signature must not verify as a plain blind signature.
				plain, err := NewRsaSsaPssVerifier(pk, SHA384PSSParams)
				require.NoError(t, err)
				require.Error(t, plain.Verify(v.Signature, message))
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	keys := map[string]*rsa.PrivateKey{
		"2048": testutil.StrongRSAKey2048(),
		"3072": testutil.StrongRSAKey3072(),
		"4096": testutil.StrongRSAKey4096(),
	}
	message := []byte("hello world")
	for name, sk := range keys {
		t.Run(name, func(t *testing.T) {
			sig := runProtocol(t, sk, message, nil, false, false)
			verifier, err := NewRsaSsaPssVerifier(&sk.PublicKey, SHA384PSSParams)
			require.NoError(t, err)
			require.NoError(t, verifier.Verify(sig, message))
			require.NoError(t, rsa.VerifyPSS(&sk.PublicKey, crypto.SHA384, digest384(message), sig, &rsa.PSSOptions{SaltLength: 48}))

			for _, useRSAPublicExponent := range []bool{true, false} {
				for _, metadata := range [][]byte{[]byte("metadata"), {}} {
					sig := runProtocol(t, sk, message, metadata, true, useRSAPublicExponent)
					verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, SHA384PSSParams, metadata, useRSAPublicExponent)
					require.NoError(t, err)
					require.NoError(t, verifier.Verify(sig, message))
				}
			}
		})
	}
}

func TestRoundTripSHA256(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	params := Params{SigHash: crypto.SHA256, MGF1Hash: crypto.SHA256, SaltLength: 32}

	blinder, err := NewRsaBlinderWithRandom(nil, &sk.PublicKey, params, []byte("md"), true, true)
	require.NoError(t, err)
	blinded, err := blinder.Blind([]byte("message"))
	require.NoError(t, err)

	signer := newSigner(t, sk, []byte("md"), true, true)
	blindSig, err := signer.Sign(blinded)
	require.NoError(t, err)
	sig, err := blinder.Unblind(blindSig)
	require.NoError(t, err)
	require.NoError(t, blinder.Verify(sig, []byte("message")))

	// Parameters are part of what is verified.
	verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, SHA384PSSParams, []byte("md"), true)
	require.NoError(t, err)
	require.Error(t, verifier.Verify(sig, []byte("message")))
}

func TestWrongMetadataFails(t *testing.T) {
	sk := testutil.StrongRSAKey4096()
	message := []byte("hello world")
	sig := runProtocol(t, sk, message, []byte("metadata"), true, true)

	for _, metadata := range [][]byte{[]byte("wrong metadata"), {}} {
		verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, SHA384PSSParams, metadata, true)
		require.NoError(t, err)
		err = verifier.Verify(sig, message)
		require.ErrorIs(t, err, util.ErrInvalidArgument)
		require.ErrorContains(t, err, rsa.ErrVerification.Error())
	}

	// The exponent variant is part of the binding too.
	verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, SHA384PSSParams, []byte("metadata"), false)
	require.NoError(t, err)
	require.Error(t, verifier.Verify(sig, message))

	plain, err := NewRsaSsaPssVerifier(&sk.PublicKey, SHA384PSSParams)
	require.NoError(t, err)
	require.Error(t, plain.Verify(sig, message))
}

func TestTamperedSignatureFails(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	message := []byte("hello world")
	for _, withMetadata := range []bool{false, true} {
		sig := runProtocol(t, sk, message, []byte("metadata"), withMetadata, true)
		blinder := newBlinder(t, &sk.PublicKey, []byte("metadata"), withMetadata, true)
		_, err := blinder.Blind(message)
		require.NoError(t, err)

		for _, i := range []int{0, len(sig) / 2, len(sig) - 1} {
			tampered := append([]byte{}, sig...)
			tampered[i] ^= 0x01
			require.Error(t, blinder.Verify(tampered, message))
		}

		require.Error(t, blinder.Verify(sig, []byte("hello world!")))
		require.Error(t, blinder.Verify(sig[1:], message))
		require.NoError(t, blinder.Verify(sig, message))
	}
}

func TestSignatureOutOfRangeFails(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	nBytes := sk.N.FillBytes(make([]byte, byteLen(sk.N)))

	verifier, err := NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, SHA384PSSParams, []byte("metadata"), true)
	require.NoError(t, err)
	require.ErrorIs(t, verifier.Verify(nBytes, []byte("message")), util.ErrInvalidArgument)

	plain, err := NewRsaSsaPssVerifier(&sk.PublicKey, SHA384PSSParams)
	require.NoError(t, err)
	require.ErrorIs(t, plain.Verify(nBytes, []byte("message")), util.ErrInvalidArgument)
}

func TestBlinderStateMachine(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	blinder := newBlinder(t, &sk.PublicKey, nil, false, false)
	signer := newSigner(t, sk, nil, false, false)
	message := []byte("message")

	_, err := blinder.Unblind(make([]byte, byteLen(sk.N)))
	require.ErrorIs(t, err, util.ErrFailedPrecondition)
	require.ErrorIs(t, blinder.Verify(make([]byte, byteLen(sk.N)), message), util.ErrFailedPrecondition)

	blinded, err := blinder.Blind(message)
	require.NoError(t, err)

	_, err = blinder.Blind(message)
	require.ErrorIs(t, err, util.ErrFailedPrecondition)

	blindSig, err := signer.Sign(blinded)
	require.NoError(t, err)

	_, err = blinder.Unblind(blindSig[1:])
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	sig, err := blinder.Unblind(blindSig)
	require.NoError(t, err)

	_, err = blinder.Unblind(blindSig)
	require.ErrorIs(t, err, util.ErrFailedPrecondition)
	_, err = blinder.Blind(message)
	require.ErrorIs(t, err, util.ErrFailedPrecondition)

	require.NoError(t, blinder.Verify(sig, message))
}

func TestBlindingIsRandomized(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	message := []byte("message")
	first, err := newBlinder(t, &sk.PublicKey, nil, false, false).Blind(message)
	require.NoError(t, err)
	second, err := newBlinder(t, &sk.PublicKey, nil, false, false).Blind(message)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestSignerRejectsMalformedInput(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	signer := newSigner(t, sk, []byte("metadata"), true, true)

	_, err := signer.Sign(nil)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = signer.Sign(make([]byte, byteLen(sk.N)-1))
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = signer.Sign(make([]byte, byteLen(sk.N)+1))
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = signer.Sign(sk.N.FillBytes(make([]byte, byteLen(sk.N))))
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestSignerSelfCheck(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	signer := newSigner(t, sk, []byte("metadata"), true, true)
	signer.crt.dp = new(big.Int).Add(signer.crt.dp, bigOne)

	blinded, err := newBlinder(t, &sk.PublicKey, []byte("metadata"), true, true).Blind([]byte("message"))
	require.NoError(t, err)
	_, err = signer.Sign(blinded)
	require.ErrorIs(t, err, util.ErrInternal)
}

func TestSignerWithoutPrecomputedValues(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	bare := &rsa.PrivateKey{PublicKey: sk.PublicKey, D: sk.D, Primes: sk.Primes}
	multi := &rsa.PrivateKey{PublicKey: sk.PublicKey, D: sk.D}

	blinded, err := newBlinder(t, &sk.PublicKey, nil, false, false).Blind([]byte("message"))
	require.NoError(t, err)

	want, err := newSigner(t, sk, nil, false, false).Sign(blinded)
	require.NoError(t, err)
	for _, key := range []*rsa.PrivateKey{bare, multi} {
		got, err := newSigner(t, key, nil, false, false).Sign(blinded)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err = NewRsaBlindSignerWithPublicMetadata(multi, []byte("metadata"), true)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestConstructorsRejectBadKeys(t *testing.T) {
	sk := testutil.StrongRSAKey2048()

	_, err := NewRsaBlinder(nil, SHA384PSSParams)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	even := &rsa.PublicKey{N: new(big.Int).Add(sk.N, bigOne), E: sk.E}
	_, err = NewRsaBlinder(even, SHA384PSSParams)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = NewRsaBlinder(&rsa.PublicKey{N: sk.N, E: 1}, SHA384PSSParams)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = NewRsaBlinder(&sk.PublicKey, Params{SigHash: 0, MGF1Hash: SHA384PSSParams.MGF1Hash, SaltLength: 48})
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = NewRsaSsaPssVerifier(&sk.PublicKey, Params{SigHash: SHA384PSSParams.SigHash, MGF1Hash: SHA384PSSParams.MGF1Hash, SaltLength: -1})
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = NewRsaBlindSigner(nil)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestBigIntToString(t *testing.T) {
	out, err := BigIntToString(big.NewInt(0x0102), 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 1, 2}, out)

	_, err = BigIntToString(big.NewInt(0x010203), 2)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	_, err = BigIntToString(big.NewInt(-1), 2)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	require.Equal(t, 0, big.NewInt(0x0102).Cmp(StringToBigInt([]byte{0, 0, 1, 2})))
}

func digest384(message []byte) []byte {
	d := sha512.Sum384(message)
	return d[:]
}

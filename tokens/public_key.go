package tokens

import (
	"crypto"
	"crypto/rsa"
	"time"

	"golang.org/x/crypto/cryptobyte"

	"github.com/cloudflare/at-go/blindrsa"
	"github.com/cloudflare/at-go/util"
)

type HashType uint8

const (
	HashTypeUndefined HashType = iota
	HashTypeSHA256
	HashTypeSHA384
)

func (h HashType) CryptoHash() (crypto.Hash, bool) {
	switch h {
	case HashTypeSHA256:
		return crypto.SHA256, true
	case HashTypeSHA384:
		return crypto.SHA384, true
	default:
		return 0, false
	}
}

type MaskGenFunction uint8

const (
	MGFUndefined MaskGenFunction = iota
	MGF1SHA256
	MGF1SHA384
)

func (m MaskGenFunction) CryptoHash() (crypto.Hash, bool) {
	switch m {
	case MGF1SHA256:
		return crypto.SHA256, true
	case MGF1SHA384:
		return crypto.SHA384, true
	default:
		return 0, false
	}
}

// MessageMaskType says how the client hides the message from the signer.
type MessageMaskType uint8

const (
	MessageMaskTypeUndefined MessageMaskType = iota
	// MessageMaskTypeConcat prepends MessageMaskSize random bytes to the message.
	MessageMaskTypeConcat
	// MessageMaskTypeNoMask signs the message as is.
	MessageMaskTypeNoMask
)

const (
	MinKeySize         = 256
	MinMessageMaskSize = 32
	// MaxMessageMaskSize is the largest mask a TokenWithInput can carry.
	MaxMessageMaskSize = 255
	// MaxFieldSize bounds the use case, plaintext message and public metadata,
	// which travel with a two-byte length prefix.
	MaxFieldSize = 1<<16 - 1
)

// struct {
//     opaque use_case<1..2^16-1>;
//     uint32 key_version;
//     opaque serialized_public_key<1..2^16-1>;
//     uint8 sig_hash_type;
//     uint8 mask_gen_function;
//     uint16 salt_length;
//     uint32 key_size;
//     uint8 message_mask_type;
//     uint32 message_mask_size;
//     uint8 public_metadata_support;
//     uint8 use_rsa_public_exponent;
//     uint64 key_validity_start_time;
//     uint64 expiration_time;
// } RSABlindSignaturePublicKey;

// PublicKey is the RSA blind signature public key published by an issuer for
// one use case and key version.
type PublicKey struct {
	UseCase    []byte
	KeyVersion uint32
	// SerializedPublicKey is the SubjectPublicKeyInfo of the RSA key.
	SerializedPublicKey   []byte
	SigHashType           HashType
	MaskGenFunction       MaskGenFunction
	SaltLength            uint16
	KeySize               uint32
	MessageMaskType       MessageMaskType
	MessageMaskSize       uint32
	PublicMetadataSupport bool
	UseRSAPublicExponent  bool
	KeyValidityStartTime  time.Time
	// ExpirationTime is the zero time for keys that do not expire.
	ExpirationTime time.Time
}

func unixSeconds(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix())
}

func fromUnixSeconds(s uint64) time.Time {
	if s == 0 {
		return time.Time{}
	}
	return time.Unix(int64(s), 0).UTC()
}

func addBool(b *cryptobyte.Builder, v bool) {
	if v {
		b.AddUint8(1)
	} else {
		b.AddUint8(0)
	}
}

func readBool(s *cryptobyte.String, v *bool) bool {
	var raw uint8
	if !s.ReadUint8(&raw) || raw > 1 {
		return false
	}
	*v = raw == 1
	return true
}

func (k PublicKey) Marshal() []byte {
	b := cryptobyte.NewBuilder(nil)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.UseCase)
	})
	b.AddUint32(k.KeyVersion)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(k.SerializedPublicKey)
	})
	b.AddUint8(uint8(k.SigHashType))
	b.AddUint8(uint8(k.MaskGenFunction))
	b.AddUint16(k.SaltLength)
	b.AddUint32(k.KeySize)
	b.AddUint8(uint8(k.MessageMaskType))
	b.AddUint32(k.MessageMaskSize)
	addBool(b, k.PublicMetadataSupport)
	addBool(b, k.UseRSAPublicExponent)
	b.AddUint64(unixSeconds(k.KeyValidityStartTime))
	b.AddUint64(unixSeconds(k.ExpirationTime))
	return b.BytesOrPanic()
}

func (k *PublicKey) Unmarshal(data []byte) bool {
	s := cryptobyte.String(data)

	var useCase, serializedPublicKey cryptobyte.String
	var sigHash, mgf, maskType uint8
	var start, expiration uint64
	if !s.ReadUint16LengthPrefixed(&useCase) || useCase.Empty() ||
		!s.ReadUint32(&k.KeyVersion) ||
		!s.ReadUint16LengthPrefixed(&serializedPublicKey) || serializedPublicKey.Empty() ||
		!s.ReadUint8(&sigHash) ||
		!s.ReadUint8(&mgf) ||
		!s.ReadUint16(&k.SaltLength) ||
		!s.ReadUint32(&k.KeySize) ||
		!s.ReadUint8(&maskType) ||
		!s.ReadUint32(&k.MessageMaskSize) ||
		!readBool(&s, &k.PublicMetadataSupport) ||
		!readBool(&s, &k.UseRSAPublicExponent) ||
		!s.ReadUint64(&start) ||
		!s.ReadUint64(&expiration) ||
		!s.Empty() {
		return false
	}

	k.UseCase = append([]byte{}, useCase...)
	k.SerializedPublicKey = append([]byte{}, serializedPublicKey...)
	k.SigHashType = HashType(sigHash)
	k.MaskGenFunction = MaskGenFunction(mgf)
	k.MessageMaskType = MessageMaskType(maskType)
	k.KeyValidityStartTime = fromUnixSeconds(start)
	k.ExpirationTime = fromUnixSeconds(expiration)
	return true
}

func UnmarshalPublicKey(data []byte) (PublicKey, error) {
	k := PublicKey{}
	if !k.Unmarshal(data) {
		return PublicKey{}, util.InvalidArgumentf("invalid RSABlindSignaturePublicKey encoding")
	}
	return k, nil
}

// NewPublicKey describes key for useCase with the default RSABSSA-SHA384-PSS
// parameters and a 32-byte concatenated message mask.
func NewPublicKey(useCase []byte, keyVersion uint32, key *rsa.PublicKey, publicMetadataSupport bool) (PublicKey, error) {
	serialized, err := util.MarshalTokenKeyPSSOID(key, util.DefaultPSSParameters)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{
		UseCase:               append([]byte{}, useCase...),
		KeyVersion:            keyVersion,
		SerializedPublicKey:   serialized,
		SigHashType:           HashTypeSHA384,
		MaskGenFunction:       MGF1SHA384,
		SaltLength:            uint16(util.DefaultPSSParameters.SaltLength),
		KeySize:               uint32(key.Size()),
		MessageMaskType:       MessageMaskTypeConcat,
		MessageMaskSize:       MinMessageMaskSize,
		PublicMetadataSupport: publicMetadataSupport,
		UseRSAPublicExponent:  true,
	}, nil
}

// ValidatePublicKey checks that k is usable by a client and returns the
// parsed RSA key.
func ValidatePublicKey(k PublicKey) (*rsa.PublicKey, error) {
	if len(k.UseCase) == 0 {
		return nil, util.InvalidArgumentf("public key use case is empty")
	}
	if len(k.UseCase) > MaxFieldSize {
		return nil, util.InvalidArgumentf("public key use case is %d bytes, at most %d allowed", len(k.UseCase), MaxFieldSize)
	}
	if k.KeyVersion == 0 {
		return nil, util.InvalidArgumentf("public key version must be positive")
	}
	if k.KeySize < MinKeySize {
		return nil, util.InvalidArgumentf("key size %d is below the minimum of %d bytes", k.KeySize, MinKeySize)
	}
	params, err := k.Params()
	if err != nil {
		return nil, err
	}
	if k.SaltLength == 0 {
		return nil, util.InvalidArgumentf("salt length must be positive")
	}
	switch k.MessageMaskType {
	case MessageMaskTypeConcat:
		if k.MessageMaskSize < MinMessageMaskSize || k.MessageMaskSize > MaxMessageMaskSize {
			return nil, util.InvalidArgumentf("message mask size %d is outside [%d, %d]", k.MessageMaskSize, MinMessageMaskSize, MaxMessageMaskSize)
		}
	case MessageMaskTypeNoMask:
		if k.MessageMaskSize != 0 {
			return nil, util.InvalidArgumentf("message mask size must be zero without a mask, got %d", k.MessageMaskSize)
		}
	default:
		return nil, util.InvalidArgumentf("unknown message mask type %d", k.MessageMaskType)
	}

	pk, pssParams, err := util.UnmarshalTokenKeyPSSParameters(k.SerializedPublicKey)
	if err != nil {
		return nil, err
	}
	if pk.Size() != int(k.KeySize) {
		return nil, util.InvalidArgumentf("key size %d does not match the %d-byte modulus", k.KeySize, pk.Size())
	}
	if pssParams.Hash != params.SigHash || pssParams.MGF1Hash != params.MGF1Hash || pssParams.SaltLength != params.SaltLength {
		return nil, util.InvalidArgumentf("serialized public key parameters do not match the key fields")
	}
	return pk, nil
}

// CheckKeyValidity fails with util.ErrKeyValidity if k is not valid at now.
func CheckKeyValidity(k PublicKey, now time.Time) error {
	if !k.KeyValidityStartTime.IsZero() && now.Before(k.KeyValidityStartTime) {
		return util.KeyValidityf("key is not valid until %s", k.KeyValidityStartTime.Format(time.RFC3339))
	}
	if !k.ExpirationTime.IsZero() && !now.Before(k.ExpirationTime) {
		return util.KeyValidityf("key expired at %s", k.ExpirationTime.Format(time.RFC3339))
	}
	return nil
}

// Params returns the PSS parameters the key signs with.
func (k PublicKey) Params() (blindrsa.Params, error) {
	sigHash, ok := k.SigHashType.CryptoHash()
	if !ok {
		return blindrsa.Params{}, util.InvalidArgumentf("unknown signature hash type %d", k.SigHashType)
	}
	mgfHash, ok := k.MaskGenFunction.CryptoHash()
	if !ok {
		return blindrsa.Params{}, util.InvalidArgumentf("unknown mask generation function %d", k.MaskGenFunction)
	}
	return blindrsa.Params{
		SigHash:    sigHash,
		MGF1Hash:   mgfHash,
		SaltLength: int(k.SaltLength),
	}, nil
}

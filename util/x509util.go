package util

import (
	"crypto"
	"crypto/rsa"
	"crypto/x509"
	"encoding/asn1"
	"encoding/pem"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// pkcs1PublicKey reflects the ASN.1 structure of a PKCS #1 public key.
type pkcs1PSSPublicKey struct {
	N *big.Int
	E int
}

// PSSParameters are the RSASSA-PSS-params carried in the SPKI of a token key.
type PSSParameters struct {
	Hash       crypto.Hash
	MGF1Hash   crypto.Hash
	SaltLength int
}

var DefaultPSSParameters = PSSParameters{
	Hash:       crypto.SHA384,
	MGF1Hash:   crypto.SHA384,
	SaltLength: crypto.SHA384.Size(),
}

var (
	oidPublicKeyRSAPSS = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 10}
	oidSHA256          = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 1}
	oidSHA384          = asn1.ObjectIdentifier{2, 16, 840, 1, 101, 3, 4, 2, 2}
	oidPKCS1MGF        = asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 1, 8}
)

func hashOID(h crypto.Hash) (asn1.ObjectIdentifier, error) {
	switch h {
	case crypto.SHA256:
		return oidSHA256, nil
	case crypto.SHA384:
		return oidSHA384, nil
	default:
		return nil, InvalidArgumentf("unsupported PSS hash %v", h)
	}
}

func hashFromOID(oid asn1.ObjectIdentifier) (crypto.Hash, error) {
	switch {
	case oid.Equal(oidSHA256):
		return crypto.SHA256, nil
	case oid.Equal(oidSHA384):
		return crypto.SHA384, nil
	default:
		return 0, InvalidArgumentf("unsupported PSS hash %v", oid)
	}
}

func marshalTokenPrivateKey(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, err
	}

	block := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}

	return pem.EncodeToMemory(block), nil
}

func unmarshalTokenPrivateKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("invalid private key encoding")
	}

	privateKey, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	rsaKey, ok := privateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not an RSA key")
	}
	return rsaKey, nil
}

// MarshalTokenKeyPSSOID encodes key as a SubjectPublicKeyInfo with the
// id-RSASSA-PSS algorithm identifier and the given PSS parameters.
func MarshalTokenKeyPSSOID(key *rsa.PublicKey, params PSSParameters) ([]byte, error) {
	hashID, err := hashOID(params.Hash)
	if err != nil {
		return nil, err
	}
	mgfHashID, err := hashOID(params.MGF1Hash)
	if err != nil {
		return nil, err
	}
	if params.SaltLength < 0 {
		return nil, InvalidArgumentf("negative PSS salt length %d", params.SaltLength)
	}

	publicKeyBytes, err := asn1.Marshal(pkcs1PSSPublicKey{
		N: key.N,
		E: key.E,
	})
	if err != nil {
		return nil, err
	}

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
		b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
			b.AddASN1ObjectIdentifier(oidPublicKeyRSAPSS)
			b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
				b.AddASN1(cryptobyte_asn1.Tag(0).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
						b.AddASN1ObjectIdentifier(hashID)
					})
				})
				b.AddASN1(cryptobyte_asn1.Tag(1).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
						b.AddASN1ObjectIdentifier(oidPKCS1MGF)
						b.AddASN1(cryptobyte_asn1.SEQUENCE.Constructed(), func(b *cryptobyte.Builder) {
							b.AddASN1ObjectIdentifier(mgfHashID)
						})
					})
				})
				b.AddASN1(cryptobyte_asn1.Tag(2).ContextSpecific().Constructed(), func(b *cryptobyte.Builder) {
					b.AddASN1Int64(int64(params.SaltLength))
				})
			})
		})
		b.AddASN1BitString(publicKeyBytes)
	})

	return b.Bytes()
}

// UnmarshalTokenKeyPSSParameters parses an SPKI-encoded RSA public key with the
// id-RSASSA-PSS algorithm identifier and returns the key together with its
// hash, MGF1 hash and salt length. All three parameters must be present.
func UnmarshalTokenKeyPSSParameters(data []byte) (*rsa.PublicKey, PSSParameters, error) {
	algorithm, key, err := parseTokenKey(data)
	if err != nil {
		return nil, PSSParameters{}, err
	}

	var oid asn1.ObjectIdentifier
	if !algorithm.ReadASN1ObjectIdentifier(&oid) {
		return nil, PSSParameters{}, InvalidArgumentf("invalid SPKI token key encoding (failed reading algorithm)")
	}
	if !oid.Equal(oidPublicKeyRSAPSS) {
		return nil, PSSParameters{}, InvalidArgumentf("token key algorithm %v is not RSASSA-PSS", oid)
	}

	var pssParams, hashField, mgfField, saltField cryptobyte.String
	if !algorithm.ReadASN1(&pssParams, cryptobyte_asn1.SEQUENCE.Constructed()) ||
		!pssParams.ReadASN1(&hashField, cryptobyte_asn1.Tag(0).ContextSpecific().Constructed()) ||
		!pssParams.ReadASN1(&mgfField, cryptobyte_asn1.Tag(1).ContextSpecific().Constructed()) ||
		!pssParams.ReadASN1(&saltField, cryptobyte_asn1.Tag(2).ContextSpecific().Constructed()) ||
		!pssParams.Empty() || !algorithm.Empty() {
		return nil, PSSParameters{}, InvalidArgumentf("invalid RSASSA-PSS parameters")
	}

	var hashAlgorithm, mgfAlgorithm, mgfHashAlgorithm cryptobyte.String
	var hashID, mgfID, mgfHashID asn1.ObjectIdentifier
	var saltLength int64
	if !hashField.ReadASN1(&hashAlgorithm, cryptobyte_asn1.SEQUENCE.Constructed()) ||
		!hashAlgorithm.ReadASN1ObjectIdentifier(&hashID) ||
		!mgfField.ReadASN1(&mgfAlgorithm, cryptobyte_asn1.SEQUENCE.Constructed()) ||
		!mgfAlgorithm.ReadASN1ObjectIdentifier(&mgfID) ||
		!mgfAlgorithm.ReadASN1(&mgfHashAlgorithm, cryptobyte_asn1.SEQUENCE.Constructed()) ||
		!mgfHashAlgorithm.ReadASN1ObjectIdentifier(&mgfHashID) ||
		!saltField.ReadASN1Int64WithTag(&saltLength, cryptobyte_asn1.INTEGER) {
		return nil, PSSParameters{}, InvalidArgumentf("invalid RSASSA-PSS parameters")
	}
	if !mgfID.Equal(oidPKCS1MGF) {
		return nil, PSSParameters{}, InvalidArgumentf("unsupported mask generation function %v", mgfID)
	}

	hash, err := hashFromOID(hashID)
	if err != nil {
		return nil, PSSParameters{}, err
	}
	mgfHash, err := hashFromOID(mgfHashID)
	if err != nil {
		return nil, PSSParameters{}, err
	}
	if saltLength < 0 {
		return nil, PSSParameters{}, InvalidArgumentf("negative PSS salt length %d", saltLength)
	}

	return key, PSSParameters{
		Hash:       hash,
		MGF1Hash:   mgfHash,
		SaltLength: int(saltLength),
	}, nil
}

// parseTokenKey returns the contents of the SPKI's AlgorithmIdentifier and the
// RSA key it carries.
func parseTokenKey(data []byte) (cryptobyte.String, *rsa.PublicKey, error) {
	s := cryptobyte.String(data)

	var sequenceString cryptobyte.String
	if !s.ReadASN1(&sequenceString, cryptobyte_asn1.SEQUENCE.Constructed()) || !s.Empty() {
		return nil, nil, InvalidArgumentf("invalid SPKI token key encoding (failed reading outer sequence)")
	}

	var paramsString cryptobyte.String
	if !sequenceString.ReadASN1(&paramsString, cryptobyte_asn1.SEQUENCE.Constructed()) {
		return nil, nil, InvalidArgumentf("invalid SPKI token key encoding (failed reading parameters)")
	}

	var publicKeyString asn1.BitString
	if !sequenceString.ReadASN1BitString(&publicKeyString) || !sequenceString.Empty() {
		return nil, nil, InvalidArgumentf("invalid SPKI token key encoding (failed reading public key)")
	}

	der := cryptobyte.String(publicKeyString.RightAlign())
	p := &pkcs1PSSPublicKey{N: new(big.Int)}
	if !der.ReadASN1(&der, cryptobyte_asn1.SEQUENCE) {
		return nil, nil, InvalidArgumentf("x509: invalid RSA public key")
	}
	if !der.ReadASN1Integer(p.N) {
		return nil, nil, InvalidArgumentf("x509: invalid RSA modulus")
	}
	if !der.ReadASN1Integer(&p.E) {
		return nil, nil, InvalidArgumentf("x509: invalid RSA public exponent")
	}
	if p.N.Sign() <= 0 || p.E <= 1 {
		return nil, nil, InvalidArgumentf("x509: RSA key parameters out of range")
	}

	key := new(rsa.PublicKey) // Everything else is uninitialized
	key.N = p.N
	key.E = p.E

	return paramsString, key, nil
}

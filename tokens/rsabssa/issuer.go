package rsabssa

import (
	"bytes"
	"crypto/rsa"

	"github.com/sirupsen/logrus"

	"github.com/cloudflare/at-go/blindrsa"
	"github.com/cloudflare/at-go/tokens"
	"github.com/cloudflare/at-go/util"
)

type issuerKey struct {
	publicKey  tokens.PublicKey
	privateKey *rsa.PrivateKey
	// signer serves requests without public metadata.
	signer *blindrsa.RsaBlindSigner
}

// Issuer signs blinded tokens for one use case with any of its key versions.
type Issuer struct {
	useCase []byte
	keys    map[uint32]*issuerKey
	opts    options
	log     logrus.FieldLogger
}

var _ tokens.Issuer = (*Issuer)(nil)

func NewIssuer(useCase []byte, opts ...Option) *Issuer {
	o := newOptions(opts)
	return &Issuer{
		useCase: append([]byte{}, useCase...),
		keys:    make(map[uint32]*issuerKey),
		opts:    o,
		log:     o.logger.WithField("use_case", string(useCase)),
	}
}

func (i *Issuer) UseCase() []byte {
	return i.useCase
}

// AddKey registers privateKey under publicKey.KeyVersion. publicKey must
// describe privateKey and belong to the issuer's use case.
func (i *Issuer) AddKey(publicKey tokens.PublicKey, privateKey *rsa.PrivateKey) error {
	if !bytes.Equal(publicKey.UseCase, i.useCase) {
		return util.InvalidArgumentf("public key use case does not match the issuer")
	}
	if _, ok := i.keys[publicKey.KeyVersion]; ok {
		return util.InvalidArgumentf("key version %d is already registered", publicKey.KeyVersion)
	}
	rsaKey, err := tokens.ValidatePublicKey(publicKey)
	if err != nil {
		return err
	}
	if privateKey == nil || !privateKey.PublicKey.Equal(rsaKey) {
		return util.InvalidArgumentf("private key does not match the public key")
	}
	signer, err := blindrsa.NewRsaBlindSigner(privateKey)
	if err != nil {
		return err
	}

	i.keys[publicKey.KeyVersion] = &issuerKey{
		publicKey:  publicKey,
		privateKey: privateKey,
		signer:     signer,
	}
	return nil
}

// PublicKey returns the public key registered for keyVersion.
func (i *Issuer) PublicKey(keyVersion uint32) (tokens.PublicKey, bool) {
	key, ok := i.keys[keyVersion]
	if !ok {
		return tokens.PublicKey{}, false
	}
	return key.publicKey, true
}

func (i *Issuer) signerFor(key *issuerKey, metadata []byte) (*blindrsa.RsaBlindSigner, error) {
	if !key.publicKey.PublicMetadataSupport {
		if len(metadata) != 0 {
			return nil, util.InvalidArgumentf("key version %d does not support public metadata", key.publicKey.KeyVersion)
		}
		return key.signer, nil
	}
	return blindrsa.NewRsaBlindSignerWithPublicMetadata(key.privateKey, metadata, key.publicKey.UseRSAPublicExponent)
}

// Evaluate signs every token of req. It fails as a whole if any token is
// malformed or names an unknown or invalid key.
func (i *Issuer) Evaluate(req *tokens.SignRequest) (*tokens.SignResponse, error) {
	if req == nil || len(req.BlindedTokens) == 0 {
		return nil, util.InvalidArgumentf("request is empty")
	}

	now := i.opts.clock()
	response := &tokens.SignResponse{
		AnonymousTokens: make([]tokens.AnonymousToken, 0, len(req.BlindedTokens)),
	}
	for n, token := range req.BlindedTokens {
		if !bytes.Equal(token.UseCase, i.useCase) {
			return nil, util.InvalidArgumentf("token %d: unknown use case", n)
		}
		key, ok := i.keys[token.KeyVersion]
		if !ok {
			return nil, util.InvalidArgumentf("token %d: unknown key version %d", n, token.KeyVersion)
		}
		if err := tokens.CheckKeyValidity(key.publicKey, now); err != nil {
			return nil, err
		}

		signer, err := i.signerFor(key, token.PublicMetadata)
		if err != nil {
			return nil, err
		}
		blindSignature, err := signer.Sign(token.SerializedToken)
		if err != nil {
			return nil, err
		}

		response.AnonymousTokens = append(response.AnonymousTokens, tokens.AnonymousToken{
			UseCase:                  append([]byte{}, token.UseCase...),
			KeyVersion:               token.KeyVersion,
			SerializedBlindedMessage: append([]byte{}, token.SerializedToken...),
			SerializedToken:          blindSignature,
			PublicMetadata:           append([]byte{}, token.PublicMetadata...),
		})
	}

	i.log.WithField("tokens", len(response.AnonymousTokens)).Debug("signed request")
	return response, nil
}

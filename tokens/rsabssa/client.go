// Package rsabssa runs the RSA blind signature token protocol: a Client that
// blinds a batch of messages and finalizes the signed tokens, and an Issuer
// that signs the blinded batch.
package rsabssa

import (
	"bytes"
	"crypto/rsa"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cloudflare/at-go/blindrsa"
	"github.com/cloudflare/at-go/tokens"
	"github.com/cloudflare/at-go/util"
)

type clientState int

const (
	clientCreated clientState = iota
	clientRequestIssued
	clientCompleted
)

type blindingRecord struct {
	input   tokens.PlaintextMessageWithPublicMetadata
	mask    []byte
	blinder *blindrsa.RsaBlinder
	// metadata is what the request carried: the input metadata if the key
	// supports it, otherwise empty.
	metadata []byte
}

// Client is single-use: it creates one request and processes the response to
// it. It is not safe for concurrent use.
type Client struct {
	publicKey tokens.PublicKey
	rsaKey    *rsa.PublicKey
	params    blindrsa.Params
	opts      options
	log       logrus.FieldLogger

	state   clientState
	records map[string]*blindingRecord
}

// NewClient validates publicKey and returns a client for it.
func NewClient(publicKey tokens.PublicKey, opts ...Option) (*Client, error) {
	rsaKey, err := tokens.ValidatePublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	params, err := publicKey.Params()
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	return &Client{
		publicKey: publicKey,
		rsaKey:    rsaKey,
		params:    params,
		opts:      o,
		log: o.logger.WithFields(logrus.Fields{
			"use_case":    string(publicKey.UseCase),
			"key_version": publicKey.KeyVersion,
		}),
		state: clientCreated,
	}, nil
}

func (c *Client) newMask() ([]byte, error) {
	if c.publicKey.MessageMaskType == tokens.MessageMaskTypeNoMask {
		return []byte{}, nil
	}
	mask := make([]byte, c.publicKey.MessageMaskSize)
	if _, err := io.ReadFull(c.opts.random, mask); err != nil {
		return nil, util.Internalf("generating message mask: %v", err)
	}
	return mask, nil
}

// CreateRequest blinds every input and returns the request to send to the
// issuer. Request entries are in input order.
func (c *Client) CreateRequest(inputs []tokens.PlaintextMessageWithPublicMetadata) (*tokens.SignRequest, error) {
	if c.state != clientCreated {
		return nil, util.FailedPreconditionf("a request was already created by this client")
	}
	if len(inputs) == 0 {
		return nil, util.InvalidArgumentf("cannot create an empty request")
	}
	if err := tokens.CheckKeyValidity(c.publicKey, c.opts.clock()); err != nil {
		return nil, err
	}
	for i, input := range inputs {
		if len(input.PlaintextMessage) > tokens.MaxFieldSize {
			return nil, util.InvalidArgumentf("input %d: plaintext message is %d bytes, at most %d allowed", i, len(input.PlaintextMessage), tokens.MaxFieldSize)
		}
		if len(input.PublicMetadata) > tokens.MaxFieldSize {
			return nil, util.InvalidArgumentf("input %d: public metadata is %d bytes, at most %d allowed", i, len(input.PublicMetadata), tokens.MaxFieldSize)
		}
	}

	records := make(map[string]*blindingRecord, len(inputs))
	request := &tokens.SignRequest{
		BlindedTokens: make([]tokens.BlindedToken, 0, len(inputs)),
	}
	for _, input := range inputs {
		mask, err := c.newMask()
		if err != nil {
			return nil, err
		}
		maskedMessage := append(append([]byte{}, mask...), input.PlaintextMessage...)

		var blinder *blindrsa.RsaBlinder
		metadata := []byte{}
		if c.publicKey.PublicMetadataSupport {
			metadata = append(metadata, input.PublicMetadata...)
			blinder, err = blindrsa.NewRsaBlinderWithRandom(c.opts.random, c.rsaKey, c.params, metadata, true, c.publicKey.UseRSAPublicExponent)
		} else {
			blinder, err = blindrsa.NewRsaBlinderWithRandom(c.opts.random, c.rsaKey, c.params, nil, false, false)
		}
		if err != nil {
			return nil, err
		}

		blinded, err := blinder.Blind(maskedMessage)
		if err != nil {
			return nil, err
		}
		if _, ok := records[string(blinded)]; ok {
			return nil, util.Internalf("blinding produced a duplicate message")
		}

		records[string(blinded)] = &blindingRecord{
			input:    input,
			mask:     mask,
			blinder:  blinder,
			metadata: metadata,
		}
		request.BlindedTokens = append(request.BlindedTokens, tokens.BlindedToken{
			UseCase:         append([]byte{}, c.publicKey.UseCase...),
			KeyVersion:      c.publicKey.KeyVersion,
			SerializedToken: blinded,
			PublicMetadata:  metadata,
		})
	}

	c.records = records
	c.state = clientRequestIssued
	c.log.WithField("tokens", len(inputs)).Debug("created sign request")
	return request, nil
}

// ProcessResponse unblinds and verifies every token of response. Any failure
// rejects the whole response, and the client cannot be used again.
func (c *Client) ProcessResponse(response *tokens.SignResponse) ([]tokens.TokenWithInput, error) {
	if c.state != clientRequestIssued {
		return nil, util.FailedPreconditionf("no outstanding request for this client")
	}
	if response == nil || len(response.AnonymousTokens) == 0 {
		return nil, util.InvalidArgumentf("response is empty")
	}
	if len(response.AnonymousTokens) != len(c.records) {
		return nil, util.InvalidArgumentf("response has %d tokens, %d were requested", len(response.AnonymousTokens), len(c.records))
	}

	c.state = clientCompleted
	out, err := c.processTokens(response.AnonymousTokens)
	if err != nil {
		c.log.WithError(err).Warn("rejected sign response")
		return nil, err
	}
	c.log.WithField("tokens", len(out)).Debug("processed sign response")
	return out, nil
}

func (c *Client) processTokens(anonymousTokens []tokens.AnonymousToken) ([]tokens.TokenWithInput, error) {
	seen := make(map[string]struct{}, len(anonymousTokens))
	out := make([]tokens.TokenWithInput, 0, len(anonymousTokens))
	for i, token := range anonymousTokens {
		if !bytes.Equal(token.UseCase, c.publicKey.UseCase) {
			return nil, util.InvalidArgumentf("token %d: use case does not match the public key", i)
		}
		if token.KeyVersion != c.publicKey.KeyVersion {
			return nil, util.InvalidArgumentf("token %d: key version %d does not match %d", i, token.KeyVersion, c.publicKey.KeyVersion)
		}
		if len(token.SerializedBlindedMessage) == 0 {
			return nil, util.InvalidArgumentf("token %d: blinded message is empty", i)
		}
		if len(token.SerializedToken) == 0 {
			return nil, util.InvalidArgumentf("token %d: signature is empty", i)
		}

		key := string(token.SerializedBlindedMessage)
		if _, ok := seen[key]; ok {
			return nil, util.InvalidArgumentf("token %d: blinded message appears more than once", i)
		}
		seen[key] = struct{}{}

		record, ok := c.records[key]
		if !ok {
			return nil, util.InvalidArgumentf("token %d: blinded message was not requested", i)
		}
		if !bytes.Equal(token.PublicMetadata, record.metadata) {
			return nil, util.InvalidArgumentf("token %d: public metadata does not match the request", i)
		}

		signature, err := record.blinder.Unblind(token.SerializedToken)
		if err != nil {
			return nil, err
		}
		maskedMessage := append(append([]byte{}, record.mask...), record.input.PlaintextMessage...)
		if err := record.blinder.Verify(signature, maskedMessage); err != nil {
			return nil, err
		}

		out = append(out, tokens.TokenWithInput{
			Token:       signature,
			MessageMask: record.mask,
			Input:       record.input,
		})
	}
	return out, nil
}

// Verify is not provided by the client. Verify finalized tokens with a
// blindrsa.RsaSsaPssVerifier, or with VerifyToken.
func (c *Client) Verify(publicKey tokens.PublicKey, token tokens.TokenWithInput) error {
	return util.Unimplementedf("Client.Verify is not implemented")
}

// VerifyToken checks a finalized token against publicKey.
func VerifyToken(publicKey tokens.PublicKey, token tokens.TokenWithInput) error {
	rsaKey, err := tokens.ValidatePublicKey(publicKey)
	if err != nil {
		return err
	}
	params, err := publicKey.Params()
	if err != nil {
		return err
	}

	var verifier *blindrsa.RsaSsaPssVerifier
	if publicKey.PublicMetadataSupport {
		verifier, err = blindrsa.NewRsaSsaPssVerifierWithPublicMetadata(rsaKey, params, token.Input.PublicMetadata, publicKey.UseRSAPublicExponent)
	} else {
		verifier, err = blindrsa.NewRsaSsaPssVerifier(rsaKey, params)
	}
	if err != nil {
		return err
	}
	return verifier.Verify(token.Token, token.SignedMessage())
}

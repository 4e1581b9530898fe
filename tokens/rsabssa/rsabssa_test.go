package rsabssa

import (
	"bytes"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/cloudflare/at-go/blindrsa"
	"github.com/cloudflare/at-go/testutil"
	"github.com/cloudflare/at-go/tokens"
	"github.com/cloudflare/at-go/util"
)

var testUseCase = []byte("TEST_USE_CASE")

func newTestIssuer(t testing.TB, sk *rsa.PrivateKey, publicMetadataSupport bool, opts ...Option) (tokens.PublicKey, *Issuer) {
	publicKey, err := tokens.NewPublicKey(testUseCase, 1, &sk.PublicKey, publicMetadataSupport)
	require.NoError(t, err)

	issuer := NewIssuer(testUseCase, opts...)
	require.NoError(t, issuer.AddKey(publicKey, sk))
	return publicKey, issuer
}

func inputs(messages ...string) []tokens.PlaintextMessageWithPublicMetadata {
	out := make([]tokens.PlaintextMessageWithPublicMetadata, len(messages))
	for i, m := range messages {
		out[i] = tokens.PlaintextMessageWithPublicMetadata{PlaintextMessage: []byte(m)}
	}
	return out
}

func withMetadata(in []tokens.PlaintextMessageWithPublicMetadata, metadata string) []tokens.PlaintextMessageWithPublicMetadata {
	for i := range in {
		in[i].PublicMetadata = []byte(metadata)
	}
	return in
}

func TestRoundTrip4096(t *testing.T) {
	sk := testutil.StrongRSAKey4096()
	publicKey, issuer := newTestIssuer(t, sk, false)

	client, err := NewClient(publicKey)
	require.NoError(t, err)

	req, err := client.CreateRequest(inputs("hello world"))
	require.NoError(t, err)
	require.Len(t, req.BlindedTokens, 1)
	require.Len(t, req.BlindedTokens[0].SerializedToken, 512)
	require.Empty(t, req.BlindedTokens[0].PublicMetadata)

	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)

	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.Len(t, finalized, 1)

	token := finalized[0]
	require.Len(t, token.MessageMask, 32)
	require.Len(t, token.Token, 512)
	require.Equal(t, []byte("hello world"), token.Input.PlaintextMessage)
	require.NoError(t, VerifyToken(publicKey, token))

	verifier, err := blindrsa.NewRsaSsaPssVerifier(&sk.PublicKey, blindrsa.SHA384PSSParams)
	require.NoError(t, err)
	require.NoError(t, verifier.Verify(token.Token, append(append([]byte{}, token.MessageMask...), "hello world"...)))
}

func TestRoundTrip4096WithPublicMetadata(t *testing.T) {
	sk := testutil.StrongRSAKey4096()
	publicKey, issuer := newTestIssuer(t, sk, true)

	client, err := NewClient(publicKey)
	require.NoError(t, err)

	req, err := client.CreateRequest(withMetadata(inputs("hello world"), "metadata"))
	require.NoError(t, err)
	require.Equal(t, []byte("metadata"), req.BlindedTokens[0].PublicMetadata)

	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)

	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.Len(t, finalized, 1)
	require.NoError(t, VerifyToken(publicKey, finalized[0]))

	wrong := finalized[0]
	wrong.Input.PublicMetadata = []byte("wrong metadata")
	require.ErrorIs(t, VerifyToken(publicKey, wrong), util.ErrInvalidArgument)

	verifier, err := blindrsa.NewRsaSsaPssVerifierWithPublicMetadata(&sk.PublicKey, blindrsa.SHA384PSSParams, []byte("metadata"), true)
	require.NoError(t, err)
	require.NoError(t, verifier.Verify(finalized[0].Token, finalized[0].SignedMessage()))
}

func TestBatchPreservesOrder(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), true)
	client, err := NewClient(publicKey)
	require.NoError(t, err)

	in := inputs("first", "second", "third", "fourth")
	in[1].PublicMetadata = []byte("md-1")
	in[3].PublicMetadata = []byte("md-3")

	req, err := client.CreateRequest(in)
	require.NoError(t, err)
	require.Len(t, req.BlindedTokens, len(in))
	for i, token := range req.BlindedTokens {
		require.Equal(t, string(in[i].PublicMetadata), string(token.PublicMetadata))
	}

	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.Len(t, finalized, len(in))
	for i, token := range finalized {
		require.Equal(t, in[i], token.Input)
		require.NoError(t, VerifyToken(publicKey, token))
	}
}

func TestKeyWithoutMetadataSupportIgnoresMetadata(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), false)
	client, err := NewClient(publicKey)
	require.NoError(t, err)

	req, err := client.CreateRequest(withMetadata(inputs("message"), "metadata"))
	require.NoError(t, err)
	require.Empty(t, req.BlindedTokens[0].PublicMetadata)

	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.Equal(t, []byte("metadata"), finalized[0].Input.PublicMetadata)
	require.NoError(t, VerifyToken(publicKey, finalized[0]))
}

func TestNoMessageMask(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	publicKey, err := tokens.NewPublicKey(testUseCase, 2, &sk.PublicKey, true)
	require.NoError(t, err)
	publicKey.MessageMaskType = tokens.MessageMaskTypeNoMask
	publicKey.MessageMaskSize = 0
	publicKey.UseRSAPublicExponent = false

	issuer := NewIssuer(testUseCase)
	require.NoError(t, issuer.AddKey(publicKey, sk))

	client, err := NewClient(publicKey)
	require.NoError(t, err)
	req, err := client.CreateRequest(withMetadata(inputs("message"), "metadata"))
	require.NoError(t, err)
	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)

	require.Empty(t, finalized[0].MessageMask)
	require.Equal(t, []byte("message"), finalized[0].SignedMessage())
	require.NoError(t, VerifyToken(publicKey, finalized[0]))
}

func TestClientStateMachine(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), false)
	client, err := NewClient(publicKey)
	require.NoError(t, err)

	_, err = client.ProcessResponse(&tokens.SignResponse{})
	require.ErrorIs(t, err, util.ErrFailedPrecondition)

	_, err = client.CreateRequest(nil)
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	req, err := client.CreateRequest(inputs("message"))
	require.NoError(t, err)

	_, err = client.CreateRequest(inputs("message"))
	require.ErrorIs(t, err, util.ErrFailedPrecondition)

	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	_, err = client.ProcessResponse(resp)
	require.NoError(t, err)

	_, err = client.ProcessResponse(resp)
	require.ErrorIs(t, err, util.ErrFailedPrecondition)

	require.ErrorIs(t, client.Verify(publicKey, tokens.TokenWithInput{}), util.ErrUnimplemented)
}

func TestNewClientRejectsInvalidKey(t *testing.T) {
	publicKey, _ := newTestIssuer(t, testutil.StrongRSAKey2048(), false)
	publicKey.KeyVersion = 0
	_, err := NewClient(publicKey)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestCreateRequestRejectsOversizedInputs(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), true)
	oversized := string(make([]byte, tokens.MaxFieldSize+1))
	largest := string(make([]byte, tokens.MaxFieldSize))

	client, err := NewClient(publicKey)
	require.NoError(t, err)
	_, err = client.CreateRequest(withMetadata(inputs("message"), oversized))
	require.ErrorIs(t, err, util.ErrInvalidArgument)
	_, err = client.CreateRequest(inputs("message", oversized))
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	// A rejected request leaves the client usable, and the largest fields
	// still encode.
	req, err := client.CreateRequest(withMetadata(inputs(largest), largest))
	require.NoError(t, err)
	decoded, err := tokens.UnmarshalSignRequest(req.Marshal())
	require.NoError(t, err)

	resp, err := issuer.Evaluate(decoded)
	require.NoError(t, err)
	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.NoError(t, VerifyToken(publicKey, finalized[0]))

	token, err := tokens.UnmarshalTokenWithInput(finalized[0].Marshal())
	require.NoError(t, err)
	require.Equal(t, finalized[0], token)
}

func TestLargestMessageMask(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	publicKey, err := tokens.NewPublicKey(testUseCase, 1, &sk.PublicKey, false)
	require.NoError(t, err)
	publicKey.MessageMaskSize = tokens.MaxMessageMaskSize

	issuer := NewIssuer(testUseCase)
	require.NoError(t, issuer.AddKey(publicKey, sk))
	client, resp := requestAndSign(t, publicKey, issuer, inputs("message"))
	finalized, err := client.ProcessResponse(resp)
	require.NoError(t, err)
	require.Len(t, finalized[0].MessageMask, tokens.MaxMessageMaskSize)

	token, err := tokens.UnmarshalTokenWithInput(finalized[0].Marshal())
	require.NoError(t, err)
	require.NoError(t, VerifyToken(publicKey, token))

	publicKey.MessageMaskSize = tokens.MaxMessageMaskSize + 1
	_, err = NewClient(publicKey)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestKeyValidityWindow(t *testing.T) {
	now := time.Unix(1750000000, 0)
	clock := WithClock(func() time.Time { return now })

	for name, tc := range map[string]struct {
		start, expiration time.Time
	}{
		"NotYetValid": {start: now.Add(time.Hour)},
		"Expired":     {start: now.Add(-2 * time.Hour), expiration: now.Add(-time.Hour)},
	} {
		t.Run(name, func(t *testing.T) {
			publicKey, _ := newTestIssuer(t, testutil.StrongRSAKey2048(), false)
			publicKey.KeyValidityStartTime = tc.start
			publicKey.ExpirationTime = tc.expiration

			client, err := NewClient(publicKey, clock)
			require.NoError(t, err)
			_, err = client.CreateRequest(inputs("message"))
			require.ErrorIs(t, err, util.ErrKeyValidity)
		})
	}

	sk := testutil.StrongRSAKey2048()
	publicKey, err := tokens.NewPublicKey(testUseCase, 1, &sk.PublicKey, false)
	require.NoError(t, err)
	publicKey.ExpirationTime = now.Add(time.Hour)

	issuer := NewIssuer(testUseCase, WithClock(func() time.Time { return now.Add(2 * time.Hour) }))
	require.NoError(t, issuer.AddKey(publicKey, sk))

	client, err := NewClient(publicKey, clock)
	require.NoError(t, err)
	req, err := client.CreateRequest(inputs("message"))
	require.NoError(t, err)
	_, err = issuer.Evaluate(req)
	require.ErrorIs(t, err, util.ErrKeyValidity)
}

// requestAndSign runs a client request for messages and returns the client and
// the issuer's response to it.
func requestAndSign(t *testing.T, publicKey tokens.PublicKey, issuer *Issuer, in []tokens.PlaintextMessageWithPublicMetadata) (*Client, *tokens.SignResponse) {
	client, err := NewClient(publicKey)
	require.NoError(t, err)
	req, err := client.CreateRequest(in)
	require.NoError(t, err)
	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	return client, resp
}

func TestProcessResponseRejects(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), true)
	in := withMetadata(inputs("first", "second"), "metadata")

	for name, mutate := range map[string]func(*tokens.SignResponse){
		"Empty": func(r *tokens.SignResponse) { r.AnonymousTokens = nil },
		"CountMismatch": func(r *tokens.SignResponse) {
			r.AnonymousTokens = r.AnonymousTokens[:1]
		},
		"Duplicate": func(r *tokens.SignResponse) {
			r.AnonymousTokens[1] = r.AnonymousTokens[0]
		},
		"Unrequested": func(r *tokens.SignResponse) {
			_, other := requestAndSign(t, publicKey, issuer, withMetadata(inputs("other"), "metadata"))
			r.AnonymousTokens[1] = other.AnonymousTokens[0]
		},
		"UseCaseMismatch": func(r *tokens.SignResponse) {
			r.AnonymousTokens[0].UseCase = []byte("OTHER_USE_CASE")
		},
		"KeyVersionMismatch": func(r *tokens.SignResponse) {
			r.AnonymousTokens[1].KeyVersion = 2
		},
		"EmptyBlindedMessage": func(r *tokens.SignResponse) {
			r.AnonymousTokens[0].SerializedBlindedMessage = nil
		},
		"EmptySignature": func(r *tokens.SignResponse) {
			r.AnonymousTokens[0].SerializedToken = nil
		},
		"MetadataMismatch": func(r *tokens.SignResponse) {
			r.AnonymousTokens[1].PublicMetadata = []byte("other metadata")
		},
		"TamperedSignature": func(r *tokens.SignResponse) {
			sig := append([]byte{}, r.AnonymousTokens[1].SerializedToken...)
			sig[len(sig)/2] ^= 0x80
			r.AnonymousTokens[1].SerializedToken = sig
		},
		"ShortSignature": func(r *tokens.SignResponse) {
			r.AnonymousTokens[0].SerializedToken = r.AnonymousTokens[0].SerializedToken[1:]
		},
	} {
		t.Run(name, func(t *testing.T) {
			client, resp := requestAndSign(t, publicKey, issuer, in)
			mutate(resp)
			finalized, err := client.ProcessResponse(resp)
			require.ErrorIs(t, err, util.ErrInvalidArgument)
			require.Nil(t, finalized)
		})
	}

	client, _ := requestAndSign(t, publicKey, issuer, in)
	_, err := client.ProcessResponse(nil)
	require.ErrorIs(t, err, util.ErrInvalidArgument)
}

func TestIssuerRejects(t *testing.T) {
	sk := testutil.StrongRSAKey2048()
	publicKey, issuer := newTestIssuer(t, sk, false)

	_, err := issuer.Evaluate(&tokens.SignRequest{})
	require.ErrorIs(t, err, util.ErrInvalidArgument)

	client, err := NewClient(publicKey)
	require.NoError(t, err)
	req, err := client.CreateRequest(inputs("message"))
	require.NoError(t, err)

	for name, mutate := range map[string]func(*tokens.BlindedToken){
		"UnknownUseCase":      func(b *tokens.BlindedToken) { b.UseCase = []byte("OTHER") },
		"UnknownKeyVersion":   func(b *tokens.BlindedToken) { b.KeyVersion = 9 },
		"UnsupportedMetadata": func(b *tokens.BlindedToken) { b.PublicMetadata = []byte("metadata") },
		"WrongSize":           func(b *tokens.BlindedToken) { b.SerializedToken = b.SerializedToken[1:] },
	} {
		t.Run(name, func(t *testing.T) {
			token := req.BlindedTokens[0]
			mutate(&token)
			_, err := issuer.Evaluate(&tokens.SignRequest{BlindedTokens: []tokens.BlindedToken{token}})
			require.ErrorIs(t, err, util.ErrInvalidArgument)
		})
	}

	other := testutil.AnotherStrongRSAKey2048()
	otherPublicKey, err := tokens.NewPublicKey(testUseCase, 2, &other.PublicKey, false)
	require.NoError(t, err)
	require.ErrorIs(t, issuer.AddKey(otherPublicKey, sk), util.ErrInvalidArgument)
	require.ErrorIs(t, issuer.AddKey(publicKey, sk), util.ErrInvalidArgument)
	require.NoError(t, issuer.AddKey(otherPublicKey, other))

	got, ok := issuer.PublicKey(2)
	require.True(t, ok)
	require.Equal(t, otherPublicKey, got)
	_, ok = issuer.PublicKey(3)
	require.False(t, ok)
}

func TestWireRoundTrip(t *testing.T) {
	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), true)

	decodedKey, err := tokens.UnmarshalPublicKey(publicKey.Marshal())
	require.NoError(t, err)
	client, err := NewClient(decodedKey)
	require.NoError(t, err)

	req, err := client.CreateRequest(withMetadata(inputs("a", "b"), "metadata"))
	require.NoError(t, err)
	decodedReq, err := tokens.UnmarshalSignRequest(req.Marshal())
	require.NoError(t, err)

	resp, err := issuer.Evaluate(decodedReq)
	require.NoError(t, err)
	decodedResp, err := tokens.UnmarshalSignResponse(resp.Marshal())
	require.NoError(t, err)

	finalized, err := client.ProcessResponse(decodedResp)
	require.NoError(t, err)
	for _, token := range finalized {
		decodedToken, err := tokens.UnmarshalTokenWithInput(token.Marshal())
		require.NoError(t, err)
		require.NoError(t, VerifyToken(publicKey, decodedToken))
	}
}

func TestLogging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	publicKey, issuer := newTestIssuer(t, testutil.StrongRSAKey2048(), false, WithLogger(logger))
	client, err := NewClient(publicKey, WithLogger(logger))
	require.NoError(t, err)

	req, err := client.CreateRequest(inputs("secret message"))
	require.NoError(t, err)
	resp, err := issuer.Evaluate(req)
	require.NoError(t, err)
	resp.AnonymousTokens[0].KeyVersion = 2
	_, err = client.ProcessResponse(resp)
	require.Error(t, err)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	require.Equal(t, "created sign request", entries[0].Message)
	require.Equal(t, string(testUseCase), entries[0].Data["use_case"])
	require.Equal(t, uint32(1), entries[0].Data["key_version"])
	require.Equal(t, 1, entries[0].Data["tokens"])
	require.Equal(t, "signed request", entries[1].Message)
	require.Equal(t, logrus.WarnLevel, entries[2].Level)

	for _, entry := range entries {
		line, err := entry.String()
		require.NoError(t, err)
		require.False(t, bytes.Contains([]byte(line), []byte("secret message")))
	}
}

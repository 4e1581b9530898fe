package tokens

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/cloudflare/at-go/quicwire"
	"github.com/cloudflare/at-go/util"
)

// struct {
//     opaque use_case<1..2^16-1>;
//     uint32 key_version;
//     opaque serialized_blinded_message<1..2^16-1>;
//     opaque serialized_token<1..2^16-1>;
//     opaque public_metadata<0..2^16-1>;
// } AnonymousToken;

type AnonymousToken struct {
	UseCase    []byte
	KeyVersion uint32
	// SerializedBlindedMessage echoes the blinded message that was signed.
	SerializedBlindedMessage []byte
	// SerializedToken is the blind signature.
	SerializedToken []byte
	PublicMetadata  []byte
}

func (t AnonymousToken) marshalTo(b *cryptobyte.Builder) {
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.UseCase)
	})
	b.AddUint32(t.KeyVersion)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.SerializedBlindedMessage)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.SerializedToken)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.PublicMetadata)
	})
}

func (t *AnonymousToken) unmarshalFrom(s *cryptobyte.String) bool {
	var useCase, blinded, token, metadata cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&useCase) ||
		!s.ReadUint32(&t.KeyVersion) ||
		!s.ReadUint16LengthPrefixed(&blinded) ||
		!s.ReadUint16LengthPrefixed(&token) ||
		!s.ReadUint16LengthPrefixed(&metadata) {
		return false
	}
	t.UseCase = append([]byte{}, useCase...)
	t.SerializedBlindedMessage = append([]byte{}, blinded...)
	t.SerializedToken = append([]byte{}, token...)
	t.PublicMetadata = append([]byte{}, metadata...)
	return true
}

// struct {
//     varint count;
//     AnonymousToken anonymous_tokens[count];
// } SignResponse;

type SignResponse struct {
	raw             []byte
	AnonymousTokens []AnonymousToken
}

func (r *SignResponse) Marshal() []byte {
	if r.raw != nil {
		return r.raw
	}

	b := cryptobyte.NewBuilder(quicwire.AppendVarint(nil, uint64(len(r.AnonymousTokens))))
	for _, token := range r.AnonymousTokens {
		token.marshalTo(b)
	}

	r.raw = b.BytesOrPanic()
	return r.raw
}

func (r *SignResponse) Unmarshal(data []byte) bool {
	count, offset := quicwire.ConsumeVarint(data)
	if offset < 0 {
		return false
	}

	s := cryptobyte.String(data[offset:])
	if count > uint64(len(s))/12 {
		return false
	}
	tokens := make([]AnonymousToken, count)
	for i := range tokens {
		if !tokens[i].unmarshalFrom(&s) {
			return false
		}
	}
	if !s.Empty() {
		return false
	}

	r.AnonymousTokens = tokens
	r.raw = append([]byte{}, data...)
	return true
}

func UnmarshalSignResponse(data []byte) (*SignResponse, error) {
	r := &SignResponse{}
	if !r.Unmarshal(data) {
		return nil, util.InvalidArgumentf("invalid SignResponse encoding")
	}
	return r, nil
}

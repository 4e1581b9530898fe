package tokens

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/cloudflare/at-go/quicwire"
	"github.com/cloudflare/at-go/util"
)

type TokenRequest interface {
	Marshal() []byte
	Unmarshal(data []byte) bool
}

// PlaintextMessageWithPublicMetadata is one client input. PublicMetadata is
// only bound into the signature when the key supports public metadata.
type PlaintextMessageWithPublicMetadata struct {
	PlaintextMessage []byte
	PublicMetadata   []byte
}

// struct {
//     opaque use_case<1..2^16-1>;
//     uint32 key_version;
//     opaque serialized_token<1..2^16-1>;
//     opaque public_metadata<0..2^16-1>;
// } BlindedToken;

type BlindedToken struct {
	UseCase    []byte
	KeyVersion uint32
	// SerializedToken is the blinded message.
	SerializedToken []byte
	PublicMetadata  []byte
}

func (t BlindedToken) marshalTo(b *cryptobyte.Builder) {
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.UseCase)
	})
	b.AddUint32(t.KeyVersion)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.SerializedToken)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.PublicMetadata)
	})
}

func (t *BlindedToken) unmarshalFrom(s *cryptobyte.String) bool {
	var useCase, token, metadata cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&useCase) ||
		!s.ReadUint32(&t.KeyVersion) ||
		!s.ReadUint16LengthPrefixed(&token) ||
		!s.ReadUint16LengthPrefixed(&metadata) {
		return false
	}
	t.UseCase = append([]byte{}, useCase...)
	t.SerializedToken = append([]byte{}, token...)
	t.PublicMetadata = append([]byte{}, metadata...)
	return true
}

// struct {
//     varint count;
//     BlindedToken blinded_tokens[count];
// } SignRequest;

type SignRequest struct {
	raw           []byte
	BlindedTokens []BlindedToken
}

var _ TokenRequest = (*SignRequest)(nil)

func (r *SignRequest) Marshal() []byte {
	if r.raw != nil {
		return r.raw
	}

	b := cryptobyte.NewBuilder(quicwire.AppendVarint(nil, uint64(len(r.BlindedTokens))))
	for _, token := range r.BlindedTokens {
		token.marshalTo(b)
	}

	r.raw = b.BytesOrPanic()
	return r.raw
}

func (r *SignRequest) Unmarshal(data []byte) bool {
	count, offset := quicwire.ConsumeVarint(data)
	if offset < 0 {
		return false
	}

	s := cryptobyte.String(data[offset:])
	// Each token takes at least ten bytes, which bounds the allocation.
	if count > uint64(len(s))/10 {
		return false
	}
	tokens := make([]BlindedToken, count)
	for i := range tokens {
		if !tokens[i].unmarshalFrom(&s) {
			return false
		}
	}
	if !s.Empty() {
		return false
	}

	r.BlindedTokens = tokens
	r.raw = append([]byte{}, data...)
	return true
}

func UnmarshalSignRequest(data []byte) (*SignRequest, error) {
	r := &SignRequest{}
	if !r.Unmarshal(data) {
		return nil, util.InvalidArgumentf("invalid SignRequest encoding")
	}
	return r, nil
}

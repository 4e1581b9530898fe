package tokens

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/cloudflare/at-go/util"
)

// struct {
//     opaque token<1..2^16-1>;
//     opaque message_mask<0..255>;
//     opaque plaintext_message<0..2^16-1>;
//     opaque public_metadata<0..2^16-1>;
// } TokenWithInput;

// TokenWithInput is a finalized token: the unblinded signature over
// MessageMask || Input.PlaintextMessage, together with the input it covers.
type TokenWithInput struct {
	Token       []byte
	MessageMask []byte
	Input       PlaintextMessageWithPublicMetadata
}

// SignedMessage returns the bytes the signature covers, before any public
// metadata framing.
func (t TokenWithInput) SignedMessage() []byte {
	out := make([]byte, 0, len(t.MessageMask)+len(t.Input.PlaintextMessage))
	out = append(out, t.MessageMask...)
	return append(out, t.Input.PlaintextMessage...)
}

func (t TokenWithInput) Marshal() []byte {
	b := cryptobyte.NewBuilder(nil)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.Token)
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.MessageMask)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.Input.PlaintextMessage)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(t.Input.PublicMetadata)
	})
	return b.BytesOrPanic()
}

func UnmarshalTokenWithInput(data []byte) (TokenWithInput, error) {
	s := cryptobyte.String(data)

	var token, mask, message, metadata cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&token) || token.Empty() ||
		!s.ReadUint8LengthPrefixed(&mask) ||
		!s.ReadUint16LengthPrefixed(&message) ||
		!s.ReadUint16LengthPrefixed(&metadata) ||
		!s.Empty() {
		return TokenWithInput{}, util.InvalidArgumentf("invalid TokenWithInput encoding")
	}

	return TokenWithInput{
		Token:       append([]byte{}, token...),
		MessageMask: append([]byte{}, mask...),
		Input: PlaintextMessageWithPublicMetadata{
			PlaintextMessage: append([]byte{}, message...),
			PublicMetadata:   append([]byte{}, metadata...),
		},
	}, nil
}

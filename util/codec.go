package util

import (
	"crypto/rsa"
	"encoding/hex"
	"fmt"
	"testing"
)

// /////
// Infallible Serialize / Deserialize
func fatalOnError(t testing.TB, err error, msg string) {
	if err != nil {
		realMsg := fmt.Sprintf("%s: %v", msg, err)
		if t != nil {
			t.Fatal(realMsg)
		} else {
			panic(realMsg)
		}
	}
}

func MustUnhex(t testing.TB, h string) []byte {
	out, err := hex.DecodeString(h)
	fatalOnError(t, err, "Unhex failed")
	return out
}

func MustHex(d []byte) string {
	return hex.EncodeToString(d)
}

func MustHexList(d [][]byte) []string {
	hexValues := make([]string, len(d))
	for i := 0; i < len(d); i++ {
		hexValues[i] = hex.EncodeToString(d[i])
	}
	return hexValues
}

func MustMarshalPrivateKey(key *rsa.PrivateKey) []byte {
	encodedKey, err := marshalTokenPrivateKey(key)
	if err != nil {
		panic(err)
	}
	return encodedKey
}

func MustUnmarshalPrivateKey(data []byte) *rsa.PrivateKey {
	privateKey, err := unmarshalTokenPrivateKey(data)
	if err != nil {
		panic(err)
	}
	return privateKey
}

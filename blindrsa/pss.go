// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blindrsa

// This file implements the EMSA-PSS encoding according to RFC 8017, with the
// MGF1 hash chosen independently of the message hash.

import (
	"crypto"
	"crypto/rsa"
	"crypto/subtle"
	"hash"

	"github.com/cloudflare/at-go/util"
)

// Per RFC 8017, Section 9.1
//
//     EM = MGF1 xor DB || H( 8*0x00 || mHash || salt ) || 0xbc
//
// where
//
//     DB = PS || 0x01 || salt
//
// and PS can be empty so
//
//     emLen = dbLen + hLen + 1 = psLen + sLen + hLen + 2
//

func emsaPSSEncode(mHash []byte, emBits int, salt []byte, sigHash, mgfHash crypto.Hash) ([]byte, error) {
	hLen := sigHash.Size()
	sLen := len(salt)
	emLen := (emBits + 7) / 8

	if len(mHash) != hLen {
		return nil, util.InvalidArgumentf("message digest is %d bytes, want %d", len(mHash), hLen)
	}
	if emLen < hLen+sLen+2 {
		return nil, util.InvalidArgumentf("key size too small for PSS signature")
	}

	em := make([]byte, emLen)
	psLen := emLen - sLen - hLen - 2
	db := em[:psLen+1+sLen]
	h := em[psLen+1+sLen : emLen-1]

	var prefix [8]byte
	hh := sigHash.New()
	hh.Write(prefix[:])
	hh.Write(mHash)
	hh.Write(salt)
	h = hh.Sum(h[:0])

	db[psLen] = 0x01
	copy(db[psLen+1:], salt)

	mgf1XOR(db, mgfHash.New(), h)

	db[0] &= 0xff >> (8*emLen - emBits)
	em[emLen-1] = 0xbc

	return em, nil
}

func emsaPSSVerify(mHash, em []byte, emBits, sLen int, sigHash, mgfHash crypto.Hash) error {
	hLen := sigHash.Size()
	emLen := (emBits + 7) / 8
	if emLen != len(em) {
		return util.Internalf("encoded message is %d bytes, want %d", len(em), emLen)
	}
	if hLen != len(mHash) {
		return verificationError("digest size mismatch")
	}
	if emLen < hLen+sLen+2 {
		return verificationError("inconsistent salt length")
	}
	if em[emLen-1] != 0xbc {
		return verificationError("trailer mismatch")
	}

	// Work on a copy so the caller's buffer is left untouched.
	em = append([]byte{}, em...)
	db := em[:emLen-hLen-1]
	h := em[emLen-hLen-1 : emLen-1]

	var bitMask byte = 0xff >> (8*emLen - emBits)
	if em[0] & ^bitMask != 0 {
		return verificationError("leading bits set")
	}

	mgf1XOR(db, mgfHash.New(), h)
	db[0] &= bitMask

	psLen := emLen - hLen - sLen - 2
	for _, e := range db[:psLen] {
		if e != 0x00 {
			return verificationError("non-zero padding")
		}
	}
	if db[psLen] != 0x01 {
		return verificationError("missing separator")
	}

	salt := db[len(db)-sLen:]

	var prefix [8]byte
	hh := sigHash.New()
	hh.Write(prefix[:])
	hh.Write(mHash)
	hh.Write(salt)
	h0 := hh.Sum(nil)

	if subtle.ConstantTimeCompare(h0, h) != 1 {
		return verificationError("hash mismatch")
	}
	return nil
}

func verificationError(reason string) error {
	return util.InvalidArgumentf("PSS verification failed (%s): %v", reason, rsa.ErrVerification)
}

// incCounter increments a four byte, big-endian counter.
func incCounter(c *[4]byte) {
	if c[3]++; c[3] != 0 {
		return
	}
	if c[2]++; c[2] != 0 {
		return
	}
	if c[1]++; c[1] != 0 {
		return
	}
	c[0]++
}

// mgf1XOR XORs the bytes in out with a mask generated using the MGF1 function
// specified in PKCS #1 v2.1.
func mgf1XOR(out []byte, hash hash.Hash, seed []byte) {
	var counter [4]byte
	var digest []byte

	done := 0
	for done < len(out) {
		hash.Write(seed)
		hash.Write(counter[0:4])
		digest = hash.Sum(digest[:0])
		hash.Reset()

		for i := 0; i < len(digest) && done < len(out); i++ {
			out[done] ^= digest[i]
			done++
		}
		incCounter(&counter)
	}
}

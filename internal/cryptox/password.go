// Package cryptox implements password hashing for credential storage.
//
// Digests are produced with Argon2id over a fresh random salt and encoded in
// the PHC string format, so a digest carries everything needed to verify it:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 key>
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskvault/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

// HashPassword derives an Argon2id digest of plaintext with a fresh random
// salt. Two calls with the same plaintext return different digests.
func HashPassword(plaintext string) string {
	salt := common.GenerateRandByteArray(saltLen)
	key := argon2.IDKey([]byte(plaintext), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))
}

// CheckPassword recomputes the digest of plaintext using the salt and
// parameters embedded in digest and compares in constant time. A digest that
// cannot be decoded yields common.ErrMalformedDigest.
func CheckPassword(plaintext, digest string) (bool, error) {
	salt, key, memory, time, threads, err := decodeDigest(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(plaintext), salt, time, memory, threads, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// VerifyPassword is the fail-closed form of CheckPassword: malformed digests
// simply do not verify.
func VerifyPassword(plaintext, digest string) bool {
	ok, err := CheckPassword(plaintext, digest)
	return err == nil && ok
}

func decodeDigest(digest string) (salt, key []byte, memory, time uint32, threads uint8, err error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}
	// argon2.IDKey panics on zero rounds or zero threads
	if time < 1 || threads < 1 {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(salt) == 0 {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}
	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, 0, 0, 0, common.ErrMalformedDigest
	}

	return salt, key, memory, time, threads, nil
}

package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Password hashing parameters. Scrypt is the current algorithm; the
// pbkdf2 tag keeps credentials issued before the scrypt migration valid.
const (
	PasswordAlgoScrypt = "scrypt"
	PasswordAlgoPBKDF2 = "pbkdf2-sha256"

	saltBytes    = 16
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	pbkdf2Iter   = 4096
	pbkdf2KeyLen = 32
)

// GenerateSalt returns a hex-encoded random salt.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// HashPassword derives a hex-encoded hash from the password and hex salt
// using the given algorithm tag.
func HashPassword(password, saltHex, algo string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return "", fmt.Errorf("invalid salt encoding: %w", err)
	}
	switch algo {
	case PasswordAlgoScrypt:
		derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
		if err != nil {
			return "", fmt.Errorf("scrypt derivation failed: %w", err)
		}
		return hex.EncodeToString(derived), nil
	case PasswordAlgoPBKDF2:
		derived := pbkdf2.Key([]byte(password), salt, pbkdf2Iter, pbkdf2KeyLen, sha256.New)
		return hex.EncodeToString(derived), nil
	default:
		return "", fmt.Errorf("unsupported password algorithm %q", algo)
	}
}

// VerifyPassword recomputes the hash and compares in constant time.
// Any mismatch, including length mismatch or unknown algorithm, is false.
func VerifyPassword(password, saltHex, algo, expectedHex string) bool {
	computedHex, err := HashPassword(password, saltHex, algo)
	if err != nil {
		return false
	}
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false
	}
	computed, err := hex.DecodeString(computedHex)
	if err != nil {
		return false
	}
	if len(expected) != len(computed) {
		return false
	}
	return subtle.ConstantTimeCompare(expected, computed) == 1
}

// HashSessionToken maps an opaque token to its stored form.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// KeyPrefix is the fixed leading segment of every PixVault API key.
const KeyPrefix = "pvk"

// keyEncoding is unpadded URL-safe base64, matching the wire form of the
// id and random segments.
var keyEncoding = base64.RawURLEncoding

// MalformedKeyError indicates a plaintext key that does not have the
// required three-segment structure or whose segments do not decode to
// 128-bit values.
type MalformedKeyError struct {
	Reason string
	Err    error
}

func (e *MalformedKeyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed API key: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed API key: %s", e.Reason)
}

func (e *MalformedKeyError) Unwrap() error { return e.Err }

// PrefixMismatchError indicates a structurally valid key carrying the
// wrong prefix segment.
type PrefixMismatchError struct {
	Got string
}

func (e *PrefixMismatchError) Error() string {
	return fmt.Sprintf("API key must start with %q, got %q", KeyPrefix, e.Got)
}

// ParsedKey is the structural decomposition of a plaintext API key.
type ParsedKey struct {
	Prefix string
	ID     uuid.UUID
	Random uuid.UUID
}

// ParseKey splits a plaintext key into its parts and decodes them.
func ParseKey(key string) (ParsedKey, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 {
		return ParsedKey{}, &MalformedKeyError{
			Reason: fmt.Sprintf("expected 3 dot-separated parts, got %d", len(parts)),
		}
	}

	if parts[0] != KeyPrefix {
		return ParsedKey{}, &PrefixMismatchError{Got: parts[0]}
	}

	id, err := decodeSegment(parts[1])
	if err != nil {
		return ParsedKey{}, &MalformedKeyError{Reason: "id segment", Err: err}
	}
	random, err := decodeSegment(parts[2])
	if err != nil {
		return ParsedKey{}, &MalformedKeyError{Reason: "random segment", Err: err}
	}

	return ParsedKey{Prefix: parts[0], ID: id, Random: random}, nil
}

func decodeSegment(segment string) (uuid.UUID, error) {
	data, err := keyEncoding.DecodeString(segment)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(data)
}

// KeyData is the storable part of a key: everything needed to verify a
// future presentation, nothing that can reproduce the key.
type KeyData struct {
	Prefix string
	Hash   []byte
}

// DeriveKeyData computes the stored digest for a key. It is deterministic
// in (prefix, id, random, expires): the id bytes key a BLAKE2b-256 MAC over
// the remaining tuple, so equal tuples always produce equal hashes and any
// single-component change produces a different one.
func DeriveKeyData(prefix string, id, random uuid.UUID, expires time.Time) KeyData {
	mac, err := blake2b.New256(id[:])
	if err != nil {
		// blake2b only rejects keys longer than 64 bytes; a UUID never is.
		panic(err)
	}

	mac.Write([]byte(prefix))
	mac.Write([]byte("."))
	mac.Write([]byte(keyEncoding.EncodeToString(id[:])))
	mac.Write([]byte("."))
	mac.Write([]byte(keyEncoding.EncodeToString(random[:])))
	mac.Write([]byte("."))
	mac.Write([]byte(expires.UTC().Format(time.RFC3339)))

	return KeyData{Prefix: prefix, Hash: mac.Sum(nil)}
}

// EncodeKey assembles the plaintext form of a key from its parts.
func EncodeKey(id, random uuid.UUID) string {
	return strings.Join([]string{
		KeyPrefix,
		keyEncoding.EncodeToString(id[:]),
		keyEncoding.EncodeToString(random[:]),
	}, ".")
}

// GenerateKey mints a fresh plaintext key with random id and random parts.
func GenerateKey() (key string, id uuid.UUID, err error) {
	id, err = uuid.NewRandom()
	if err != nil {
		return "", uuid.Nil, err
	}
	random, err := uuid.NewRandom()
	if err != nil {
		return "", uuid.Nil, err
	}
	return EncodeKey(id, random), id, nil
}

// Verify reports whether a presented plaintext key reproduces the stored
// hash for the given expiry. It does not check that the key is unexpired;
// that is the caller's decision. Safe for concurrent use.
func Verify(presented string, storedHash []byte, expires time.Time) bool {
	parsed, err := ParseKey(presented)
	if err != nil {
		return false
	}
	derived := DeriveKeyData(parsed.Prefix, parsed.ID, parsed.Random, expires)
	return subtle.ConstantTimeCompare(derived.Hash, storedHash) == 1
}

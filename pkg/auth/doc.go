// Package auth implements PixVault API key handling.
//
// A plaintext API key has the form
//
//	pvk.<base64url id>.<base64url random>
//
// where id and random are 128-bit values encoded as unpadded URL-safe
// base64. The id doubles as the primary key of the stored record, so the
// verifier can look the candidate record up directly; random is the secret
// entropy. Only a keyed BLAKE2b-256 digest over (prefix, id, random,
// expiry) is ever stored; the random component is discarded after
// derivation.
//
// Verification recomputes the digest from a freshly presented key and
// compares it in constant time against the stored hash. Nothing here is
// decryptable; a storage compromise discloses no usable secrets.
package auth

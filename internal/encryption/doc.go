// Package encryption transforms whole in-memory buffers with AES-128.
//
// The default scheme is AES-128-CBC with PKCS#7 padding. The IV is always explicit:
// a random IV is generated per encryption and stored after a small envelope header,
// while the zero and caller-supplied IVs produce bare ciphertext, byte-compatible
// with tools that use the same fixed IV. CBC provides confidentiality only.
//
// The siv scheme uses AES-SIV (deterministic authenticated encryption) with a key
// derived from the 16-byte key through HKDF-SHA256, and detects any tampering.
//
// Keys must be exactly 16 bytes.
package encryption

package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/tink-crypto/tink-go/v2/tink"

	"github.com/idelchi/basics/internal/config"
	"github.com/idelchi/basics/internal/failure"
)

// KeySize is the required key length in bytes (AES-128).
const KeySize = 16

// Processor encrypts and decrypts whole buffers with a fixed key, scheme and IV setting.
type Processor struct {
	// scheme selects CBC or SIV
	scheme Scheme

	// iv is the CBC IV setting
	iv IV

	// block is the AES-128 cipher used by CBC
	block cipher.Block

	// daead is the AES-SIV primitive, set only for SchemeSIV
	daead tink.DeterministicAEAD
}

// NewProcessor creates a Processor from the configuration.
// The key must be exactly KeySize bytes; it is checked before any cipher is constructed.
func NewProcessor(cfg *config.Config) (*Processor, error) {
	key := []byte(cfg.Key)
	if len(key) != KeySize {
		return nil, failure.NewKeyLength(KeySize, len(key))
	}

	scheme, err := ParseScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}

	iv, err := ParseIV(cfg.IV)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	processor := &Processor{
		scheme: scheme,
		iv:     iv,
		block:  block,
	}

	if scheme == SchemeSIV {
		processor.daead, err = newSIVPrimitive(key)
		if err != nil {
			return nil, err
		}
	}

	return processor, nil
}

// Scheme returns the configured scheme.
func (p *Processor) Scheme() Scheme {
	return p.scheme
}

// IVMode returns the configured IV mode.
func (p *Processor) IVMode() IVMode {
	return p.iv.Mode
}

// Encrypt transforms the whole plaintext buffer.
func (p *Processor) Encrypt(plaintext []byte) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch p.scheme {
	case SchemeSIV:
		out, err = p.encryptSIV(plaintext)
	default:
		out, err = p.encryptCBC(plaintext)
	}

	if err != nil {
		return nil, failure.NewCryptoTransform("encryption failed", err)
	}

	return out, nil
}

// Decrypt transforms the whole ciphertext buffer.
// Input that was not produced by the same key, scheme and IV setting fails
// with a CryptoTransform failure or, for CBC, decrypts to different bytes.
func (p *Processor) Decrypt(data []byte) ([]byte, error) {
	var (
		out []byte
		err error
	)

	switch p.scheme {
	case SchemeSIV:
		out, err = p.decryptSIV(data)
	default:
		out, err = p.decryptCBC(data)
	}

	if err != nil {
		return nil, failure.NewCryptoTransform("decryption failed", err)
	}

	return out, nil
}

// Transform encrypts or decrypts depending on decrypt.
func (p *Processor) Transform(data []byte, decrypt bool) ([]byte, error) {
	if decrypt {
		return p.Decrypt(data)
	}

	return p.Encrypt(data)
}

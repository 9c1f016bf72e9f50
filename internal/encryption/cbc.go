package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// encryptCBC pads and encrypts plaintext in one pass.
// With a random IV the output is header || IV || ciphertext, otherwise bare ciphertext.
func (p *Processor) encryptCBC(plaintext []byte) ([]byte, error) {
	padded := pkcs7Pad(plaintext, aes.BlockSize)

	var out []byte

	iv := p.iv.Value

	if p.iv.Stored() {
		iv = make([]byte, aes.BlockSize)
		if _, err := io.ReadFull(rand.Reader, iv); err != nil {
			return nil, fmt.Errorf("generating IV: %w", err)
		}

		out = make([]byte, 0, envelopeHeaderSize+aes.BlockSize+len(padded))
		out = append(out, newEnvelopeHeader(SchemeCBC)...)
		out = append(out, iv...)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(p.block, iv).CryptBlocks(ciphertext, padded)

	return append(out, ciphertext...), nil
}

// decryptCBC reverses encryptCBC and removes the padding.
func (p *Processor) decryptCBC(data []byte) ([]byte, error) {
	iv := p.iv.Value
	ciphertext := data

	if p.iv.Stored() {
		_, payload, err := splitEnvelope(data, SchemeCBC)
		if err != nil {
			return nil, err
		}

		if len(payload) < aes.BlockSize {
			return nil, fmt.Errorf("%w: missing IV", ErrEnvelope)
		}

		iv, ciphertext = payload[:aes.BlockSize], payload[aes.BlockSize:]
	}

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(p.block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("removing padding: %w", err)
	}

	return unpadded, nil
}

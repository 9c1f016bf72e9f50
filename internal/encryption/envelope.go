package encryption

import (
	"bytes"
	"errors"
	"fmt"
)

const (
	envelopeMagic   = "BSCS"
	envelopeVersion = byte(1)
)

const envelopeHeaderSize = len(envelopeMagic) + 2

// ErrEnvelope indicates a malformed or mismatching envelope header.
var ErrEnvelope = errors.New("envelope error")

// newEnvelopeHeader returns magic, version and scheme.
// Bare-ciphertext outputs (zero or explicit IV) carry no header.
func newEnvelopeHeader(scheme Scheme) []byte {
	header := make([]byte, envelopeHeaderSize)
	copy(header, envelopeMagic)

	header[len(envelopeMagic)] = envelopeVersion
	header[len(envelopeMagic)+1] = byte(scheme)

	return header
}

// splitEnvelope validates the header at the start of data against the expected
// scheme and returns the header and the payload that follows it.
func splitEnvelope(data []byte, want Scheme) (header, payload []byte, err error) {
	if len(data) < envelopeHeaderSize {
		return nil, nil, fmt.Errorf("%w: header too short", ErrEnvelope)
	}

	header, payload = data[:envelopeHeaderSize], data[envelopeHeaderSize:]

	if !bytes.Equal(header[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return nil, nil, fmt.Errorf("%w: invalid magic", ErrEnvelope)
	}

	if version := header[len(envelopeMagic)]; version != envelopeVersion {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrEnvelope, version)
	}

	if got := Scheme(header[len(envelopeMagic)+1]); got != want {
		return nil, nil, fmt.Errorf("%w: data was encrypted with scheme %s, not %s", ErrEnvelope, got, want)
	}

	return header, payload, nil
}

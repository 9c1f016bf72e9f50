package encryption

import "errors"

var (
	// ErrEmptyData is returned when unpadding an empty buffer.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when ciphertext length is not a positive multiple of the AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrInvalidIV is returned for an IV setting that is neither a mode nor 32 hex characters.
	ErrInvalidIV = errors.New("invalid IV")
	// ErrUnknownScheme is returned for a scheme other than cbc or siv.
	ErrUnknownScheme = errors.New("unknown scheme")
)

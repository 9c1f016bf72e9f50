package encryption

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/tink-crypto/tink-go/v2/daead"
	"github.com/tink-crypto/tink-go/v2/insecurecleartextkeyset"
	"github.com/tink-crypto/tink-go/v2/keyset"
	aes_sivpb "github.com/tink-crypto/tink-go/v2/proto/aes_siv_go_proto"
	tinkpb "github.com/tink-crypto/tink-go/v2/proto/tink_go_proto"
	"github.com/tink-crypto/tink-go/v2/tink"

	"google.golang.org/protobuf/proto"
)

// sivKeySize is the AES-SIV key size expected by tink (two AES-256 keys).
const sivKeySize = 64

// encryptSIV seals plaintext as header || AES-SIV(plaintext), binding the header as associated data.
func (p *Processor) encryptSIV(plaintext []byte) ([]byte, error) {
	header := newEnvelopeHeader(SchemeSIV)

	sealed, err := p.daead.EncryptDeterministically(plaintext, header)
	if err != nil {
		return nil, fmt.Errorf("sealing: %w", err)
	}

	return append(header, sealed...), nil
}

// decryptSIV opens data produced by encryptSIV.
func (p *Processor) decryptSIV(data []byte) ([]byte, error) {
	header, payload, err := splitEnvelope(data, SchemeSIV)
	if err != nil {
		return nil, err
	}

	plaintext, err := p.daead.DecryptDeterministically(payload, header)
	if err != nil {
		return nil, fmt.Errorf("opening: %w", err)
	}

	return plaintext, nil
}

// newSIVPrimitive derives the AES-SIV key from the 16-byte key and returns the tink primitive.
func newSIVPrimitive(key []byte) (tink.DeterministicAEAD, error) {
	derived := make([]byte, sivKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte("basics/siv")), derived); err != nil {
		return nil, fmt.Errorf("deriving SIV key: %w", err)
	}

	kh, err := newDeterministicAEADKeyHandle(derived)
	if err != nil {
		return nil, fmt.Errorf("creating keyset handle: %w", err)
	}

	primitive, err := daead.New(kh)
	if err != nil {
		return nil, fmt.Errorf("creating DeterministicAEAD: %w", err)
	}

	return primitive, nil
}

// newDeterministicAEADKeyHandle wraps raw AES-SIV key bytes in a single-key tink keyset.
func newDeterministicAEADKeyHandle(key []byte) (*keyset.Handle, error) {
	serializedKey, err := proto.Marshal(&aes_sivpb.AesSivKey{
		Version:  0,
		KeyValue: key,
	})
	if err != nil {
		return nil, fmt.Errorf("serializing AesSivKey: %w", err)
	}

	keySet := &tinkpb.Keyset{
		PrimaryKeyId: 1,
		Key: []*tinkpb.Keyset_Key{
			{
				KeyData: &tinkpb.KeyData{
					TypeUrl:         "type.googleapis.com/google.crypto.tink.AesSivKey",
					Value:           serializedKey,
					KeyMaterialType: tinkpb.KeyData_SYMMETRIC,
				},
				Status:           tinkpb.KeyStatusType_ENABLED,
				KeyId:            1,
				OutputPrefixType: tinkpb.OutputPrefixType_RAW,
			},
		},
	}

	serializedKeyset, err := proto.Marshal(keySet)
	if err != nil {
		return nil, fmt.Errorf("serializing keyset: %w", err)
	}

	handle, err := insecurecleartextkeyset.Read(keyset.NewBinaryReader(bytes.NewReader(serializedKeyset)))
	if err != nil {
		return nil, fmt.Errorf("reading keyset: %w", err)
	}

	return handle, nil
}

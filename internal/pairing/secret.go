package pairing

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"atvremote/internal/identity"
)

// CodeLength is the number of hex characters the TV displays.
const CodeLength = 6

// ValidateCode checks that code is six hex characters. The UI calls this
// before handing the code to the running handshake.
func ValidateCode(code string) error {
	if len(code) != CodeLength {
		return fmt.Errorf("pairing code must be %d characters, got %d", CodeLength, len(code))
	}
	if _, err := hex.DecodeString(code); err != nil {
		return fmt.Errorf("pairing code must be hexadecimal: %w", err)
	}
	return nil
}

// Secret computes the pairing digest:
//
//	SHA-256(client_mod || client_exp || server_mod || server_exp || code_bytes)
//
// where code_bytes are the two bytes decoded from the LAST four hex
// characters of the user-entered code. The leading two characters are the
// TV's verification header and never enter the hash.
func Secret(client, server identity.RSAPublicParams, code string) ([]byte, error) {
	if err := ValidateCode(code); err != nil {
		return nil, err
	}
	codeBytes, err := hex.DecodeString(code[2:])
	if err != nil {
		return nil, fmt.Errorf("decode code bytes: %w", err)
	}

	h := sha256.New()
	h.Write(client.Modulus)
	h.Write(client.Exponent)
	h.Write(server.Modulus)
	h.Write(server.Exponent)
	h.Write(codeBytes)
	return h.Sum(nil), nil
}

// Header returns the uppercase hex verification header the TV derived for
// this digest. Diagnostic only: when it disagrees with the first two
// characters of the entered code, the TV will answer 402.
func Header(digest []byte) string {
	if len(digest) == 0 {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(digest[:1]))
}

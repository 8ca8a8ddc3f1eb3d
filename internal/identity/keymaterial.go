package identity

import (
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"math/big"
)

// ErrExtract reports a certificate whose RSA parameters cannot be recovered.
var ErrExtract = errors.New("identity: extraction failed")

// RSAPublicParams is the raw public material fed into the pairing digest.
// Modulus is the big-endian integer with the ASN.1 sign byte stripped;
// Exponent is the minimal big-endian encoding (3 bytes for 65537).
type RSAPublicParams struct {
	Modulus  []byte
	Exponent []byte
}

// ExtractRSAParams pulls the RSA modulus and exponent out of a DER-encoded
// X.509 certificate. It works against the client's own certificate and the
// leaf the TV presents during the TLS handshake.
func ExtractRSAParams(der []byte) (RSAPublicParams, error) {
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return RSAPublicParams{}, fmt.Errorf("%w: %v", ErrExtract, err)
	}
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return RSAPublicParams{}, fmt.Errorf("%w: not an RSA key", ErrExtract)
	}

	// big.Int.Bytes is the minimal big-endian form, so the single leading
	// 0x00 sign byte present in the DER INTEGER is already gone.
	return RSAPublicParams{
		Modulus:  pub.N.Bytes(),
		Exponent: big.NewInt(int64(pub.E)).Bytes(),
	}, nil
}

// Package identity manages the client's pairing identity: an RSA-2048 key
// pair wrapped in a self-signed certificate, created once and persisted.
// The TV binds this exact certificate during pairing, so the same identity
// must be presented on every later control-port session.
package identity

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"
)

const (
	// CommonName is the stable subject label baked into the certificate.
	CommonName = "atvremote"

	certFile = "cert.pem"
	keyFile  = "key.pem"

	serialNumber = 1000
	validity     = 10 * 365 * 24 * time.Hour
)

// Identity is the loaded client certificate plus its parsed leaf.
type Identity struct {
	Certificate tls.Certificate
	Leaf        *x509.Certificate
}

// LoadOrCreate returns the persisted identity under dir, generating and
// persisting a fresh one on first run. Successive calls return the same
// identity until Reset removes it.
func LoadOrCreate(dir string) (*Identity, error) {
	id, err := load(dir)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := create(dir); err != nil {
		return nil, err
	}
	return load(dir)
}

// Reset removes the persisted identity. The next LoadOrCreate generates a
// new one, which the TV will not recognize until re-paired.
func Reset(dir string) error {
	for _, name := range []string{certFile, keyFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

func load(dir string) (*Identity, error) {
	cert, err := tls.LoadX509KeyPair(filepath.Join(dir, certFile), filepath.Join(dir, keyFile))
	if err != nil {
		return nil, err
	}
	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return nil, fmt.Errorf("parse identity certificate: %w", err)
	}
	cert.Leaf = leaf
	return &Identity{Certificate: cert, Leaf: leaf}, nil
}

func create(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create identity directory: %w", err)
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	now := time.Now()
	template := x509.Certificate{
		SerialNumber: big.NewInt(serialNumber),
		Subject:      pkix.Name{CommonName: CommonName},
		DNSNames:     []string{CommonName},
		// Backdated so a slightly wrong TV clock still accepts it.
		NotBefore:             now.Add(-24 * time.Hour),
		NotAfter:              now.Add(validity),
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            0,
		MaxPathLenZero:        true,
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}

	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})

	if err := os.WriteFile(filepath.Join(dir, certFile), certPEM, 0o600); err != nil {
		return fmt.Errorf("write certificate: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, keyFile), keyPEM, 0o600); err != nil {
		return fmt.Errorf("write key: %w", err)
	}
	return nil
}

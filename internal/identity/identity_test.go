package identity

import (
	"bytes"
	"errors"
	"testing"
)

func TestLoadOrCreateStable(t *testing.T) {
	dir := t.TempDir()

	first, err := LoadOrCreate(dir)
	if err != nil {
		t.Fatal(err)
	}
	second, err := LoadOrCreate(dir)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first.Leaf.Raw, second.Leaf.Raw) {
		t.Fatal("successive loads produced different certificates")
	}
}

func TestCertificateShape(t *testing.T) {
	id, err := LoadOrCreate(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	leaf := id.Leaf
	if leaf.Subject.CommonName != CommonName {
		t.Fatalf("common name = %q, want %q", leaf.Subject.CommonName, CommonName)
	}
	if leaf.SerialNumber.Int64() != serialNumber {
		t.Fatalf("serial = %v, want %d", leaf.SerialNumber, serialNumber)
	}
	if !leaf.IsCA {
		t.Fatal("certificate is not a CA")
	}
	if len(leaf.DNSNames) != 1 || leaf.DNSNames[0] != CommonName {
		t.Fatalf("SANs = %v, want [%s]", leaf.DNSNames, CommonName)
	}
	if years := leaf.NotAfter.Sub(leaf.NotBefore).Hours() / 24 / 365; years < 10 {
		t.Fatalf("validity = %.1f years, want at least 10", years)
	}
}

func TestResetRotatesIdentity(t *testing.T) {
	dir := t.TempDir()

	first, err := LoadOrCreate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := Reset(dir); err != nil {
		t.Fatal(err)
	}
	second, err := LoadOrCreate(dir)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(first.Leaf.Raw, second.Leaf.Raw) {
		t.Fatal("reset did not rotate the identity")
	}
}

func TestExtractRSAParams(t *testing.T) {
	id, err := LoadOrCreate(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	params, err := ExtractRSAParams(id.Leaf.Raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(params.Modulus) != 256 {
		t.Fatalf("modulus length = %d, want 256", len(params.Modulus))
	}
	if params.Modulus[0] == 0 {
		t.Fatal("modulus carries a leading zero byte")
	}
	if !bytes.Equal(params.Exponent, []byte{0x01, 0x00, 0x01}) {
		t.Fatalf("exponent = %x, want 010001", params.Exponent)
	}
}

func TestExtractRSAParamsMalformed(t *testing.T) {
	_, err := ExtractRSAParams([]byte{0x30, 0x03, 0x02, 0x01})
	if !errors.Is(err, ErrExtract) {
		t.Fatalf("error = %v, want ErrExtract", err)
	}
}

package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultBits is the RSA modulus size used for generated admin keys.
const DefaultBits = 4096

// KeyPair holds a generated admin key pair.
type KeyPair struct {
	// PrivateKeyPEM is the PKCS#1 private key, PEM encoded.
	PrivateKeyPEM []byte
	// AuthorizedKey is the public key as a single authorized_keys line without trailing newline.
	AuthorizedKey string
	// Fingerprint is the SHA256 fingerprint of the public key.
	Fingerprint string
}

// Generate creates a new RSA admin key pair.
func Generate(bits int) (*KeyPair, error) {
	if bits < 2048 {
		return nil, fmt.Errorf("RSA key size %d is below the 2048 bit minimum", bits)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate RSA private key: %w", err)
	}
	if err := privateKey.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate RSA private key: %w", err)
	}

	pub, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return &KeyPair{
		PrivateKeyPEM: pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
		}),
		AuthorizedKey: strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub))),
		Fingerprint:   ssh.FingerprintSHA256(pub),
	}, nil
}

// WritePrivateKey stores the private key at path with owner-only permissions.
// An existing file is never overwritten.
func (k *KeyPair) WritePrivateKey(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create private key file: %w", err)
	}
	if _, err := f.Write(k.PrivateKeyPEM); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write private key file: %w", err)
	}
	return f.Close()
}

// ValidateAuthorizedKey checks that s is a single ssh-rsa authorized_keys entry
// and returns its fingerprint.
func ValidateAuthorizedKey(s string) (string, error) {
	pub, _, _, rest, err := ssh.ParseAuthorizedKey([]byte(s))
	if err != nil {
		return "", fmt.Errorf("invalid SSH public key: %w", err)
	}
	if len(strings.TrimSpace(string(rest))) > 0 {
		return "", fmt.Errorf("invalid SSH public key: expected a single key")
	}
	if pub.Type() != ssh.KeyAlgoRSA {
		return "", fmt.Errorf("unsupported SSH key type %s: compute nodes require %s", pub.Type(), ssh.KeyAlgoRSA)
	}
	return ssh.FingerprintSHA256(pub), nil
}

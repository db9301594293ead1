package ecomm

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"os"
)

// newCertTransport builds an HTTP transport presenting the merchant
// certificate. certPath points at a PEM bundle holding the certificate
// chain and the private key in one file, as issued by the processor.
func newCertTransport(certPath, passphrase string) (*http.Transport, error) {
	cert, err := loadCertificate(certPath, passphrase)
	if err != nil {
		return nil, err
	}

	return &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}, nil
}

func loadCertificate(certPath, passphrase string) (tls.Certificate, error) {
	raw, err := os.ReadFile(certPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("read %s: %w", certPath, err)
	}

	var cert tls.Certificate

	for {
		var block *pem.Block
		block, raw = pem.Decode(raw)
		if block == nil {
			break
		}

		if block.Type == "CERTIFICATE" {
			cert.Certificate = append(cert.Certificate, block.Bytes)
			continue
		}

		keyDER := block.Bytes
		//nolint:staticcheck // the processor issues legacy RFC 1423 keys
		if x509.IsEncryptedPEMBlock(block) {
			if passphrase == "" {
				return tls.Certificate{}, errors.New("private key is encrypted and no passphrase is configured")
			}
			//nolint:staticcheck
			keyDER, err = x509.DecryptPEMBlock(block, []byte(passphrase))
			if err != nil {
				return tls.Certificate{}, fmt.Errorf("decrypt private key: %w", err)
			}
		}

		cert.PrivateKey, err = parsePrivateKey(keyDER)
		if err != nil {
			return tls.Certificate{}, err
		}
	}

	if len(cert.Certificate) == 0 {
		return tls.Certificate{}, fmt.Errorf("no certificate found in %s", certPath)
	}
	if cert.PrivateKey == nil {
		return tls.Certificate{}, fmt.Errorf("no private key found in %s", certPath)
	}

	return cert, nil
}

func parsePrivateKey(der []byte) (any, error) {
	if key, err := x509.ParsePKCS8PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(der); err == nil {
		return key, nil
	}
	return nil, errors.New("unsupported private key format")
}

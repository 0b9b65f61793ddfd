package telemetry

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"errors"
	"fmt"
)

var errNoCACerts = errors.New("no CA certificates in bundle")

// getTLSConfig builds the exporter TLS configuration from a base64 encoded
// PEM bundle of collector CA certificates.
func getTLSConfig(caCertsBase64 string) (*tls.Config, error) {
	pem, err := base64.StdEncoding.DecodeString(caCertsBase64)
	if err != nil {
		return nil, fmt.Errorf("decoding collector CA bundle: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("loading collector CA bundle: %w", errNoCACerts)
	}

	return &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}, nil
}

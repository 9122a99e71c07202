// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedCertificate is returned by [ParseCertificateRecord] when a
// serialized certificate misses a required field or carries an undecodable
// signature or timestamp.
var ErrMalformedCertificate = errors.New("malformed certificate record")

// legacyTimeLayout is the zone-less ISO-8601 layout written by older
// certificate stores.
const legacyTimeLayout = "2006-01-02T15:04:05.999999"

// Certificate binds a username to a PEM-encoded public key under the
// signature of the certificate authority. It is immutable once issued.
type Certificate struct {
	CertID    string
	Username  string
	PublicKey []byte
	Signature []byte
	Issuer    string
	IssuedAt  time.Time
}

// CertificateRecord is the flat form of a [Certificate] used whenever a
// certificate crosses a storage or transport boundary.
type CertificateRecord struct {
	CertID    string `json:"cert_id"`
	Username  string `json:"username"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
	IssuedBy  string `json:"issued_by"`
	IssuedAt  string `json:"issued_at"`
}

// SignedPayload returns the exact byte sequence covered by the authority's
// signature: username, a colon, then the public key PEM text.
func (c Certificate) SignedPayload() []byte {
	payload := make([]byte, 0, len(c.Username)+1+len(c.PublicKey))
	payload = append(payload, c.Username...)
	payload = append(payload, ':')
	payload = append(payload, c.PublicKey...)
	return payload
}

// Record converts the certificate to its boundary representation.
func (c Certificate) Record() CertificateRecord {
	return CertificateRecord{
		CertID:    c.CertID,
		Username:  c.Username,
		PublicKey: string(c.PublicKey),
		Signature: base64.StdEncoding.EncodeToString(c.Signature),
		IssuedBy:  c.Issuer,
		IssuedAt:  c.IssuedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ParseCertificateRecord validates r and converts it back to a [Certificate].
// Every field is required. IssuedAt accepts RFC 3339 as well as the
// zone-less layout, which is interpreted as UTC.
func ParseCertificateRecord(r CertificateRecord) (Certificate, error) {
	switch {
	case r.CertID == "":
		return Certificate{}, fmt.Errorf("%w: empty cert_id", ErrMalformedCertificate)
	case r.Username == "":
		return Certificate{}, fmt.Errorf("%w: empty username", ErrMalformedCertificate)
	case r.PublicKey == "":
		return Certificate{}, fmt.Errorf("%w: empty public_key", ErrMalformedCertificate)
	case r.Signature == "":
		return Certificate{}, fmt.Errorf("%w: empty signature", ErrMalformedCertificate)
	case r.IssuedBy == "":
		return Certificate{}, fmt.Errorf("%w: empty issued_by", ErrMalformedCertificate)
	}

	signature, err := base64.StdEncoding.DecodeString(r.Signature)
	if err != nil {
		return Certificate{}, fmt.Errorf("%w: signature: %w", ErrMalformedCertificate, err)
	}

	issuedAt, err := parseIssuedAt(r.IssuedAt)
	if err != nil {
		return Certificate{}, fmt.Errorf("%w: issued_at: %w", ErrMalformedCertificate, err)
	}

	return Certificate{
		CertID:    r.CertID,
		Username:  r.Username,
		PublicKey: []byte(r.PublicKey),
		Signature: signature,
		Issuer:    r.IssuedBy,
		IssuedAt:  issuedAt,
	}, nil
}

func parseIssuedAt(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation(legacyTimeLayout, value, time.UTC)
}

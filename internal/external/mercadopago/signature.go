package mercadopago

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const SignatureHeader = "X-Signature"

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrStaleSignature   = fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
)

// msThreshold separates second and millisecond timestamps; Mercado Pago has
// sent both.
const msThreshold = 1e12

// VerifySignature checks an x-signature header ("ts=...,v1=...") against the
// webhook secret. The signed manifest is
// "id:<data.id>;request-id:<x-request-id>;ts:<ts>;" with absent parts left out.
// A positive tolerance rejects timestamps further than that from now.
func VerifySignature(secret, header, requestID, dataID string, now time.Time, tolerance time.Duration) error {
	ts, v1 := parseSignature(header)
	if ts == "" || v1 == "" {
		return ErrInvalidSignature
	}

	expected := Sign(secret, Manifest(dataID, requestID, ts))
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(v1))) {
		return ErrInvalidSignature
	}

	if tolerance <= 0 {
		return nil
	}
	signedAt, err := parseTimestamp(ts)
	if err != nil {
		return ErrInvalidSignature
	}
	if d := now.Sub(signedAt); d > tolerance || d < -tolerance {
		return ErrStaleSignature
	}
	return nil
}

func parseTimestamp(ts string) (time.Time, error) {
	v, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	if v >= msThreshold {
		return time.UnixMilli(v), nil
	}
	return time.Unix(v, 0), nil
}

// Manifest builds the signed template. Alphanumeric ids are signed lowercased.
func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}

// Sign returns the hex HMAC-SHA256 of manifest.
func Sign(secret, manifest string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func parseSignature(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			v1 = strings.TrimSpace(value)
		}
	}
	return ts, v1
}

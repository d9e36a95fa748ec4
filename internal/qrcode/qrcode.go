// Package qrcode renders room join links as scannable PNG images.
package qrcode

import (
	"errors"
	"fmt"

	qr "github.com/skip2/go-qrcode"
)

// Size is the edge length of generated images in pixels.
const Size = 256

// Generate creates a QR code PNG image for the given join link.
func Generate(link string) ([]byte, error) {
	if link == "" {
		return nil, errors.New("empty join link")
	}
	png, err := qr.Encode(link, qr.Medium, Size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

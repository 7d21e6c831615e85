// internal/pkg/qr/qr.go
package qr

import (
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 512

// EncodePNG renders content as a QR image with black dark modules and
// transparent light modules, matching the codes already in circulation.
func EncodePNG(content string) ([]byte, error) {
	q, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}

	q.ForegroundColor = color.Black
	q.BackgroundColor = color.Transparent

	png, err := q.PNG(pngSize)
	if err != nil {
		return nil, fmt.Errorf("render qr png: %w", err)
	}
	return png, nil
}

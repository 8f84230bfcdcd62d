// Copyright (c) 2026 DevPortfolio Studio <hello@devportfolio.dev>
// All rights reserved. See LICENSE for details.

// Package imaging generates thumbnails for uploaded media. Thumbnails are
// encoded as JPEG regardless of the source format; the original upload is
// stored untouched.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
)

const (
	// ThumbWidth is the target thumbnail width in pixels.
	ThumbWidth = 320

	// thumbQuality is the JPEG quality for thumbnails.
	thumbQuality = 80
)

// Thumbnail decodes the source image and returns a JPEG thumbnail scaled to
// ThumbWidth. Images already narrower than the target are re-encoded at
// their original size rather than upscaled.
func Thumbnail(src []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > ThumbWidth {
		height = height * ThumbWidth / width
		width = ThumbWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return out.Bytes(), nil
}

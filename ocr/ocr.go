//go:build ocr

// Package ocr wraps the Tesseract engine for hosts acting on an
// "ocr-required" classification: pages that came back as full-page raster
// fallbacks can be fed here to recover their text.
//
// This implementation requires Tesseract to be installed and the "ocr"
// build tag. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for recognizing text in page rasters.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. Close it to release engine resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizePage performs OCR on an encoded page raster (PNG, JPEG, TIFF)
// such as the asset stored for a fallback background layer. The result is
// trimmed of surrounding whitespace.
func (c *Client) RecognizePage(raster []byte) (string, error) {
	if err := c.client.SetImageFromBytes(raster); err != nil {
		return "", fmt.Errorf("set page raster: %w", err)
	}
	recognized, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}
	return strings.TrimSpace(recognized), nil
}

// SetLanguage sets the recognition language(s), "+"-separated for
// multiple (e.g. "eng+fra"). Default is "eng".
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

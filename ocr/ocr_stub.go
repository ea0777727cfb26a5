//go:build !ocr

// Package ocr wraps the Tesseract engine for hosts acting on an
// "ocr-required" classification: pages that came back as full-page raster
// fallbacks can be fed here to recover their text.
//
// This is the stub used when the "ocr" build tag is not set; every
// operation returns ErrOCRNotEnabled. Rebuild with -tags ocr (and
// Tesseract installed) to enable recognition.
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR support was not compiled in.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client. Safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizePage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizePage(raster []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

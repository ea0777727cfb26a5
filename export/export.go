// Package export serializes extraction results for host applications.
// The JSON shape (camelCase fields, kebab-case enum values) matches what
// canvas editors and sync layers typically consume.
package export

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/tsawler/strata/model"
)

// MarshalPage encodes one page's reconstructed layers as JSON.
func MarshalPage(page model.PageData) ([]byte, error) {
	data, err := sonic.Marshal(page)
	if err != nil {
		return nil, fmt.Errorf("marshal page %d: %w", page.PageIndex, err)
	}
	return data, nil
}

// UnmarshalPage decodes a page previously encoded with MarshalPage.
func UnmarshalPage(data []byte) (model.PageData, error) {
	var page model.PageData
	if err := sonic.Unmarshal(data, &page); err != nil {
		return model.PageData{}, fmt.Errorf("unmarshal page: %w", err)
	}
	return page, nil
}

// MarshalPages encodes a whole document's pages as a JSON array.
func MarshalPages(pages []model.PageData) ([]byte, error) {
	data, err := sonic.Marshal(pages)
	if err != nil {
		return nil, fmt.Errorf("marshal pages: %w", err)
	}
	return data, nil
}

// MarshalAnalysis encodes a document classification result as JSON.
func MarshalAnalysis(analysis model.DocumentAnalysis) ([]byte, error) {
	data, err := sonic.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis: %w", err)
	}
	return data, nil
}

// UnmarshalAnalysis decodes a classification result.
func UnmarshalAnalysis(data []byte) (model.DocumentAnalysis, error) {
	var analysis model.DocumentAnalysis
	if err := sonic.Unmarshal(data, &analysis); err != nil {
		return model.DocumentAnalysis{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return analysis, nil
}

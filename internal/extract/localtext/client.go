// Package localtext is a credential-free extraction client for local
// development. It pulls plain text out of the PDF and wraps it in the
// Section A JSON shape with only the raw text populated, so the pipeline
// and the export surface stay runnable without a Gemini key.
package localtext

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"brsr-backend/internal/extract"
)

// Client implements extract.Client against the local PDF text layer.
type Client struct{}

// NewClient constructs a localtext client.
func NewClient() *Client {
	return &Client{}
}

type sectionSkeleton struct {
	Section         string     `json:"section"`
	ConfidenceScore *int       `json:"confidence_score"`
	EntityDetails   entityStub `json:"entity_details"`
	RawText         string     `json:"raw_text"`
}

type entityStub struct {
	Name                 string `json:"name"`
	StockExchangeListing string `json:"stock_exchange_listing"`
}

// Extract reads the PDF text layer and emits a minimal Section A document.
func (c *Client) Extract(ctx context.Context, data []byte) (json.RawMessage, error) {
	if len(data) == 0 {
		return nil, extract.ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := plainText(data)
	if err != nil {
		return nil, fmt.Errorf("localtext: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, extract.ErrEmptyResponse
	}

	doc := sectionSkeleton{
		Section: "A",
		RawText: text,
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("localtext: marshal: %w", err)
	}
	return out, nil
}

// plainText recovers parser panics: the pdf library panics on some
// malformed inputs and uploads are arbitrary bytes.
func plainText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse pdf: %v", r)
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var _ extract.Client = (*Client)(nil)

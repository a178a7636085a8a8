package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceOpenRe  = regexp.MustCompile("(?i)```(?:json)?\\s*")
	fenceCloseRe = regexp.MustCompile("\\s*```$")

	bseRe     = regexp.MustCompile(`\bbse\b`)
	nseRe     = regexp.MustCompile(`\bnse\b`)
	bombayRe  = regexp.MustCompile(`bombay stock exchange`)
	nationRe  = regexp.MustCompile(`national stock exchange`)
	tokenSpRe = regexp.MustCompile(`[,;/\\\n]+|\s+`)
)

// CleanResponse turns raw model output into valid JSON: strict parse first,
// then a pass that strips markdown code fences.
func CleanResponse(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyResponse
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	clean := fenceOpenRe.ReplaceAllString(trimmed, "")
	clean = fenceCloseRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)
	if !json.Valid([]byte(clean)) {
		return nil, fmt.Errorf("extraction response is not valid JSON")
	}
	return json.RawMessage(clean), nil
}

// NormalizeStockExchangeListing rewrites entity_details.stock_exchange_listing
// into canonical tokens: BSE alone, NSE alone, BSENSE when both are present,
// with any other exchanges kept as uppercase tokens. Input that does not carry
// the field is returned unchanged.
func NormalizeStockExchangeListing(raw json.RawMessage) json.RawMessage {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return raw
	}

	ent, ok := doc["entity_details"].(map[string]any)
	if !ok {
		return raw
	}
	val, ok := ent["stock_exchange_listing"]
	if !ok || val == nil {
		return raw
	}

	var joined string
	switch v := val.(type) {
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		joined = strings.Join(parts, " ")
	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		joined = strings.Join(parts, " ")
	default:
		joined = fmt.Sprint(v)
	}

	ent["stock_exchange_listing"] = canonicalExchanges(joined)
	doc["entity_details"] = ent

	out, err := json.Marshal(doc)
	if err != nil {
		return raw
	}
	return out
}

func canonicalExchanges(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))
	if s == "" {
		return ""
	}

	bsePresent := bseRe.MatchString(s) || strings.Contains(s, "bombay")
	nsePresent := nseRe.MatchString(s) || nationRe.MatchString(s)

	cleaned := bombayRe.ReplaceAllString(s, "")
	cleaned = bseRe.ReplaceAllString(cleaned, "")
	cleaned = nationRe.ReplaceAllString(cleaned, "")
	cleaned = nseRe.ReplaceAllString(cleaned, "")

	var others []string
	for _, part := range tokenSpRe.Split(cleaned, -1) {
		token := strings.ToUpper(strings.TrimSpace(part))
		if token == "" || token == "BSE" || token == "NSE" {
			continue
		}
		duplicate := false
		for _, seen := range others {
			if seen == token {
				duplicate = true
				break
			}
		}
		if !duplicate {
			others = append(others, token)
		}
	}

	var tokens []string
	switch {
	case bsePresent && nsePresent:
		tokens = append(tokens, "BSENSE")
	case bsePresent:
		tokens = append(tokens, "BSE")
	case nsePresent:
		tokens = append(tokens, "NSE")
	}
	tokens = append(tokens, others...)
	return strings.Join(tokens, " ")
}

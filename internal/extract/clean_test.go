package extract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCleanResponseStrictJSON(t *testing.T) {
	raw, err := CleanResponse(`{"section":"A"}`)
	if err != nil {
		t.Fatalf("CleanResponse: %v", err)
	}
	if string(raw) != `{"section":"A"}` {
		t.Fatalf("unexpected output: %s", raw)
	}
}

func TestCleanResponseStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n{\"section\": \"A\"}\n```"
	raw, err := CleanResponse(fenced)
	if err != nil {
		t.Fatalf("CleanResponse: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc["section"] != "A" {
		t.Fatalf("unexpected parsed doc: %+v", doc)
	}
}

func TestCleanResponseRejectsGarbage(t *testing.T) {
	if _, err := CleanResponse("sorry, I could not read the document"); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
	if _, err := CleanResponse("   "); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestNormalizeStockExchangeListing(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bse only", `"BSE"`, "BSE"},
		{"nse only", `"National Stock Exchange"`, "NSE"},
		{"both merge", `"BSE and NSE"`, "BSENSE AND"},
		{"both full names", `"Bombay Stock Exchange, National Stock Exchange"`, "BSENSE"},
		{"list input", `["BSE","NSE"]`, "BSENSE"},
		{"other exchange kept", `"MSE"`, "MSE"},
		{"empty", `""`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := json.RawMessage(`{"entity_details":{"stock_exchange_listing":` + tc.in + `}}`)
			out := NormalizeStockExchangeListing(in)

			var doc struct {
				EntityDetails struct {
					Listing string `json:"stock_exchange_listing"`
				} `json:"entity_details"`
			}
			if err := json.Unmarshal(out, &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if doc.EntityDetails.Listing != tc.want {
				t.Fatalf("got %q want %q", doc.EntityDetails.Listing, tc.want)
			}
		})
	}
}

func TestNormalizeStockExchangeListingLeavesOtherDocsAlone(t *testing.T) {
	in := json.RawMessage(`{"section":"A"}`)
	out := NormalizeStockExchangeListing(in)
	if !strings.Contains(string(out), `"section":"A"`) {
		t.Fatalf("document mutated: %s", out)
	}
}

package documents_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"brsr-backend/internal/bootstrap"
	"brsr-backend/internal/documents"
	"brsr-backend/internal/shared/config"
)

var pdfPayload = []byte("%PDF-1.7\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF")

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
		ExtractProvider: "local",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func signupToken(t *testing.T, app *bootstrap.App, email string) string {
	t.Helper()
	body := `{"email":"` + email + `","password":"s3cret-pass","name":"Test User"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if out.AccessToken == "" {
		t.Fatalf("signup returned no token")
	}
	return out.AccessToken
}

func multipartBody(t *testing.T, field string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, data := range files {
		fw, err := writer.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func doUpload(t *testing.T, app *bootstrap.App, token, field string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, field, files)
	req := httptest.NewRequest(http.MethodPost, "/documents/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestUploadListAndDetail(t *testing.T) {
	app := newTestApp(t)
	token := signupToken(t, app, "uploader@example.com")

	resp := doUpload(t, app, token, "files", map[string][]byte{
		"first.pdf":  pdfPayload,
		"second.pdf": pdfPayload,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var uploaded struct {
		Message   string `json:"message"`
		Documents []struct {
			DocumentID   string `json:"document_id"`
			FileName     string `json:"file_name"`
			FileURL      string `json:"file_url"`
			Status       string `json:"status"`
			ErrorMessage string `json:"error_message"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if len(uploaded.Documents) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(uploaded.Documents))
	}
	seen := map[string]bool{}
	for _, doc := range uploaded.Documents {
		if doc.DocumentID == "" {
			t.Fatalf("document without id: %+v", doc)
		}
		if seen[doc.DocumentID] {
			t.Fatalf("duplicate document id %s", doc.DocumentID)
		}
		seen[doc.DocumentID] = true
		// The stub payload has no parsable text layer, so extraction fails
		// while the stored file keeps its URL.
		if doc.Status != documents.StatusFailed {
			t.Fatalf("expected failed status for stub payload, got %s", doc.Status)
		}
		if doc.FileURL == "" {
			t.Fatalf("stored document lost its file URL")
		}
		if doc.ErrorMessage == "" {
			t.Fatalf("failed document carries no error message")
		}
	}

	// The single-file field name works too.
	respSingle := doUpload(t, app, token, "file", map[string][]byte{"third.pdf": pdfPayload})
	if respSingle.Code != http.StatusOK {
		t.Fatalf("single upload: expected 200, got %d", respSingle.Code)
	}

	// List shows all three records.
	reqList := httptest.NewRequest(http.MethodGet, "/documents", nil)
	reqList.Header.Set("Authorization", "Bearer "+token)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)
	if respList.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", respList.Code)
	}
	var listed []struct {
		ID       string `json:"id"`
		FileName string `json:"file_name"`
		Status   string `json:"status"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 listed documents, got %d", len(listed))
	}

	// Detail round-trip.
	reqDetail := httptest.NewRequest(http.MethodGet, "/documents/"+listed[0].ID, nil)
	reqDetail.Header.Set("Authorization", "Bearer "+token)
	respDetail := httptest.NewRecorder()
	app.Router.ServeHTTP(respDetail, reqDetail)
	if respDetail.Code != http.StatusOK {
		t.Fatalf("detail: expected 200, got %d", respDetail.Code)
	}
	var detail struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.NewDecoder(respDetail.Body).Decode(&detail); err != nil {
		t.Fatalf("decode detail response: %v", err)
	}
	if detail.ID != listed[0].ID {
		t.Fatalf("detail id mismatch: %s vs %s", detail.ID, listed[0].ID)
	}
}

func TestUploadRejectsInvalidFilesWithoutRecords(t *testing.T) {
	app := newTestApp(t)
	token := signupToken(t, app, "strict@example.com")

	cases := []struct {
		name  string
		files map[string][]byte
	}{
		{"empty file", map[string][]byte{"empty.pdf": {}}},
		{"not a pdf", map[string][]byte{"notes.txt": []byte("plain text")}},
		{"mixed batch", map[string][]byte{"good.pdf": pdfPayload, "bad.txt": []byte("nope")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doUpload(t, app, token, "files", tc.files)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}

	// No records leaked from the rejected uploads.
	reqList := httptest.NewRequest(http.MethodGet, "/documents", nil)
	reqList.Header.Set("Authorization", "Bearer "+token)
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, reqList)
	var listed []json.RawMessage
	if err := json.NewDecoder(respList.Body).Decode(&listed); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("rejected uploads left %d records", len(listed))
	}
}

func TestDetailIsOwnerScoped(t *testing.T) {
	app := newTestApp(t)
	owner := signupToken(t, app, "owner@example.com")
	intruder := signupToken(t, app, "intruder@example.com")

	resp := doUpload(t, app, owner, "file", map[string][]byte{"mine.pdf": pdfPayload})
	if resp.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d", resp.Code)
	}
	var uploaded struct {
		Documents []struct {
			DocumentID string `json:"document_id"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	docID := uploaded.Documents[0].DocumentID

	req := httptest.NewRequest(http.MethodGet, "/documents/"+docID, nil)
	req.Header.Set("Authorization", "Bearer "+intruder)
	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)
	if out.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign document, got %d", out.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	app := newTestApp(t)
	token := signupToken(t, app, "poller@example.com")

	resp := doUpload(t, app, token, "files", map[string][]byte{
		"a.pdf": pdfPayload,
		"b.pdf": pdfPayload,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d", resp.Code)
	}
	var uploaded struct {
		Documents []struct {
			DocumentID string `json:"document_id"`
		} `json:"documents"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}

	// Explicit ids, plus one unknown that must be silently omitted.
	ids := []string{uploaded.Documents[0].DocumentID, "not-a-real-id"}
	body, _ := json.Marshal(map[string]any{"document_ids": ids})
	req := httptest.NewRequest(http.MethodPost, "/documents/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	out := httptest.NewRecorder()
	app.Router.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("status: expected 200, got %d", out.Code)
	}
	var statuses []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(out.Body).Decode(&statuses); err != nil {
		t.Fatalf("decode status response: %v", err)
	}
	if len(statuses) != 1 || statuses[0].ID != uploaded.Documents[0].DocumentID {
		t.Fatalf("unexpected status payload: %+v", statuses)
	}

	// Empty body returns every owned document.
	reqAll := httptest.NewRequest(http.MethodPost, "/documents/status", nil)
	reqAll.Header.Set("Authorization", "Bearer "+token)
	outAll := httptest.NewRecorder()
	app.Router.ServeHTTP(outAll, reqAll)
	if outAll.Code != http.StatusOK {
		t.Fatalf("status all: expected 200, got %d", outAll.Code)
	}
	var all []json.RawMessage
	if err := json.NewDecoder(outAll.Body).Decode(&all); err != nil {
		t.Fatalf("decode status-all response: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(all))
	}

	// Malformed JSON shape is a 422.
	reqBad := httptest.NewRequest(http.MethodPost, "/documents/status", strings.NewReader(`{"document_ids": "oops"}`))
	reqBad.Header.Set("Content-Type", "application/json")
	reqBad.Header.Set("Authorization", "Bearer "+token)
	outBad := httptest.NewRecorder()
	app.Router.ServeHTTP(outBad, reqBad)
	if outBad.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for malformed body, got %d", outBad.Code)
	}
}

func TestDocumentRoutesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/documents/upload"},
		{http.MethodGet, "/documents"},
		{http.MethodGet, "/documents/some-id"},
		{http.MethodPost, "/documents/status"},
		{http.MethodPost, "/documents/excel"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		resp := httptest.NewRecorder()
		app.Router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", route.method, route.path, resp.Code)
		}
	}
}

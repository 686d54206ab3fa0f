package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"slotsplanet/api/internal/upload"
)

func multipartUpload(t *testing.T, field, filename, contentType, uploadType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if uploadType != "" {
		if err := writer.WriteField("type", uploadType); err != nil {
			t.Fatalf("write type field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, writer.FormDataContentType()
}

func TestUploadEndpoint(t *testing.T) {
	var got upload.Request
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		got = req
		return "https://cdn.example.com/casino-assets/casino-logos/1-logo.png", nil
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "image", "logo.png", "image/png", "", []byte("png-bytes"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	var parsed struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !parsed.Success || parsed.URL == "" {
		t.Fatalf("unexpected response %s", respBody)
	}
	if got.Filename != "logo.png" || got.ContentType != "image/png" || got.Category != upload.CategoryLogo {
		t.Fatalf("relay request: %+v", got)
	}
	if got.Size != int64(len("png-bytes")) {
		t.Fatalf("size = %d", got.Size)
	}
}

func TestUploadBillboardCategory(t *testing.T) {
	var got upload.Request
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		got = req
		return "https://cdn.example.com/boards/billboard-images/1-bg.jpg", nil
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "file", "bg.jpg", "image/jpeg", "billboard", []byte("jpeg"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusOK {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if got.Category != upload.CategoryBillboard {
		t.Fatalf("category = %s", got.Category)
	}
}

func TestUploadRejectsInvalidType(t *testing.T) {
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		return "", fmt.Errorf("reject: %w", upload.ErrInvalidType)
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "image", "doc.pdf", "application/pdf", "", []byte("%PDF"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if code := errorCode(t, respBody); code != "INVALID_TYPE" {
		t.Fatalf("code = %s", code)
	}
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		return "", fmt.Errorf("reject: %w", upload.ErrTooLarge)
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "image", "huge.png", "image/png", "", []byte("x"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if code := errorCode(t, respBody); code != "TOO_LARGE" {
		t.Fatalf("code = %s", code)
	}
}

func TestUploadBucketMissing(t *testing.T) {
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		return "", fmt.Errorf("store object: %w", upload.ErrBucketMissing)
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "image", "logo.png", "image/png", "", []byte("x"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusInternalServerError {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if code := errorCode(t, respBody); code != "BUCKET_MISSING" {
		t.Fatalf("code = %s", code)
	}
}

func TestUploadWithoutStorage(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.login(t)

	body, contentType := multipartUpload(t, "image", "logo.png", "image/png", "", []byte("x"))
	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, body, contentType)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if code := errorCode(t, respBody); code != "STORAGE_NOT_CONFIGURED" {
		t.Fatalf("code = %s", code)
	}
}

func TestUploadMissingFile(t *testing.T) {
	relay := &fakeUploader{uploadFn: func(_ context.Context, req upload.Request) (string, error) {
		t.Error("relay must not be called without a file")
		return "", nil
	}}
	ts := newTestServer(t, relay)
	token := ts.login(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("type", "logo"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	status, respBody := ts.do(t, http.MethodPost, "/api/upload", token, &buf, writer.FormDataContentType())
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", status, respBody)
	}
	if code := errorCode(t, respBody); code != "MISSING_FILE" {
		t.Fatalf("code = %s", code)
	}
}

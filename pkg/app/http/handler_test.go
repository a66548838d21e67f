package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/chainsafe/social-wallet-api/internal/metrics"
	apperrors "github.com/chainsafe/social-wallet-api/pkg/app/errors"
)

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func serve(t *testing.T, h HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	HandleError(zap.NewNop(), h)(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got
}

func TestHandleError_ServiceErrorExposesKind(t *testing.T) {
	rec := serve(t, func(http.ResponseWriter, *http.Request) error {
		return apperrors.ConflictError(errors.New("cap reached"), apperrors.KindCodeAlreadyUsed)
	}, "")

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Error != apperrors.KindCodeAlreadyUsed {
		t.Fatalf("expected error %q, got %q", apperrors.KindCodeAlreadyUsed, got.Error)
	}
	if got.Code != http.StatusConflict {
		t.Fatalf("expected code %d, got %d", http.StatusConflict, got.Code)
	}
}

func TestHandleError_UnknownErrorIsHidden(t *testing.T) {
	before := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("http", "unhandled"))
	rec := serve(t, func(http.ResponseWriter, *http.Request) error {
		return errors.New("pq: connection refused to 10.0.0.3")
	}, "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	got := decodeError(t, rec)
	if got.Error != apperrors.KindUnexpected {
		t.Fatalf("expected generic error, got %q", got.Error)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("10.0.0.3")) {
		t.Fatalf("internal error detail leaked: %s", rec.Body.String())
	}
	if got := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("http", "unhandled")); got != before+1 {
		t.Fatalf("expected unhandled error counter %v, got %v", before+1, got)
	}
}

func TestRecoverer_WritesErrorEnvelope(t *testing.T) {
	before := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("http", "panic"))
	handler := Recoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
	got := decodeError(t, rec)
	if got.Error != apperrors.KindUnexpected || got.Code != http.StatusInternalServerError {
		t.Fatalf("expected unexpected/500, got %s/%d", got.Error, got.Code)
	}
	if after := testutil.ToFloat64(metrics.ErrorsTotal.WithLabelValues("http", "panic")); after != before+1 {
		t.Fatalf("expected panic counter %v, got %v", before+1, after)
	}
}

func TestDecodeJSON_ValidatesPayload(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required,max=5"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"ok"}`, false},
		{"malformed", `{"name":`, true},
		{"missing field", `{}`, true},
		{"too long", `{"name":"toolong"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			var p payload
			err := DecodeJSON(req, &p)
			if tt.wantErr {
				if !apperrors.Is(err, apperrors.CategoryDataError) {
					t.Fatalf("expected data error, got %v", err)
				}
				if apperrors.KindOf(err) != apperrors.KindInvalidRequest {
					t.Fatalf("expected invalid_request kind, got %q", apperrors.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSON() failed: %v", err)
			}
		})
	}
}

func TestWriteData_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteData(rec, http.StatusCreated, map[string]string{"wallet": "0xabc"})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %q", ct)
	}
	var got struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.Data["wallet"] != "0xabc" {
		t.Fatalf("expected wallet in data envelope, got %+v", got.Data)
	}
}

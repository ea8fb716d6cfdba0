package http

import (
	"net/http"
	"testing"
)

func TestHealth(t *testing.T) {
	e := newEchoWithValidator()
	h := NewHandler()

	c, rec := newJSONContext(e, http.MethodGet, "/health", mustJSON(nil))
	if err := h.Health(c); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "ok" || body["service"] != "flexipay-backend" {
		t.Fatalf("body = %v", body)
	}
}

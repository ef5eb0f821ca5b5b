package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesRequestMetrics(t *testing.T) {
	Init()
	IncRequests()
	IncRequestsNow()
	DecRequestsNow()
	UpdateResponseBodySize(512)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"todoserv_requests_were_processed 1",
		"todoserv_requests_are_being_processed 0",
		"todoserv_response_body_size_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition is missing %q", want)
		}
	}
}

func TestUpdatersBeforeInit(t *testing.T) {
	reg = nil
	GlobalMetrics = nil

	// must not panic before Init has been called
	IncRequests()
	IncRequestsNow()
	DecRequestsNow()
	UpdateResponseBodySize(1)
}

package timer

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMakeRequestTimeTracker(t *testing.T) {
	handlerErr := errors.New("handler failed")

	tests := []struct {
		name        string
		err         error
		saveOnError bool
		wantSaved   bool
	}{
		{
			name:        "saved on success",
			err:         nil,
			saveOnError: false,
			wantSaved:   true,
		},
		{
			name:        "not saved on error",
			err:         handlerErr,
			saveOnError: false,
			wantSaved:   false,
		},
		{
			name:        "saved on error",
			err:         handlerErr,
			saveOnError: true,
			wantSaved:   true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			saved := false
			handler := func(rw http.ResponseWriter, req *http.Request) error {
				return test.err
			}
			saver := func(d time.Duration) {
				saved = true
			}

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			err := MakeRequestTimeTracker(handler, saver, test.saveOnError)(httptest.NewRecorder(), req)

			if errors.Is(err, test.err) == false {
				t.Errorf("expected %v, got %v", test.err, err)
			}
			if saved != test.wantSaved {
				t.Errorf("saved = %v, want %v", saved, test.wantSaved)
			}
		})
	}
}

package seleniumext

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

func TestDriverErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound bool
		stale    bool
		noAlert  bool
	}{
		{"nil", nil, false, false, false},
		{"typed not found", notFoundErr("#x"), true, false, false},
		{"typed stale", staleErr(), false, true, false},
		{"typed no alert", noAlertErr(), false, false, true},
		{"legacy not found", errors.New("no such element: Unable to locate element: #x"), true, false, false},
		{"legacy stale", errors.New("stale element reference: element is not attached to the page document"), false, true, false},
		{"legacy no alert", errors.New("no alert open"), false, false, true},
		{"wrapped typed", errors.Wrap(staleErr(), "reading checkbox"), false, true, false},
		{"wrapped legacy", errors.Wrap(errors.New("no such element"), "probing"), true, false, false},
		{"unrelated", errors.New("connection refused"), false, false, false},
		{"typed unrelated", &selenium.Error{Err: "invalid session id", Message: "session deleted"}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %t, want %t", got, tt.notFound)
			}
			if got := IsStale(tt.err); got != tt.stale {
				t.Errorf("IsStale = %t, want %t", got, tt.stale)
			}
			if got := IsNoAlert(tt.err); got != tt.noAlert {
				t.Errorf("IsNoAlert = %t, want %t", got, tt.noAlert)
			}
		})
	}
}

// A typed driver error whose code matches one class must not bleed into the
// others even though its message mentions the element.
func TestClassificationUsesErrorCodeFirst(t *testing.T) {
	err := &selenium.Error{
		Err:     "no such element",
		Message: "stale element reference mentioned in passing",
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound = false for a typed no-such-element error")
	}
	if IsStale(err) {
		t.Error("IsStale = true, the typed code should win over the message text")
	}
}

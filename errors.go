package seleniumext

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

// Sentinels for out-of-range enumeration values. These mark programmer
// errors: they surface before any retry loop runs and are never retried.
var (
	// ErrUnknownFieldKind reports a FieldKind outside the declared set.
	ErrUnknownFieldKind = errors.New("unknown field kind")
	// ErrUnknownClickKind reports a ClickKind outside the declared set.
	ErrUnknownClickKind = errors.New("unknown click kind")
)

// Driver failure classes this package reacts to. W3C-compliant servers
// report failures as *selenium.Error with the protocol's error string in
// the Err field; legacy responses come back as plain errors carrying the
// same phrases, so classification falls back to a substring match.
const (
	noSuchElementErr  = "no such element"
	staleReferenceErr = "stale element reference"
	noSuchAlertErr    = "no such alert"
	noAlertOpenErr    = "no alert open" // legacy wire protocol phrase
)

// IsNotFound reports whether err says a locator matched no element.
func IsNotFound(err error) bool {
	return isDriverClass(err, noSuchElementErr)
}

// IsStale reports whether err says an element handle no longer refers to a
// live node in the document.
func IsStale(err error) bool {
	return isDriverClass(err, staleReferenceErr)
}

// IsNoAlert reports whether err says no alert is currently open.
func IsNoAlert(err error) bool {
	return isDriverClass(err, noSuchAlertErr) || isDriverClass(err, noAlertOpenErr)
}

func isDriverClass(err error, class string) bool {
	if err == nil {
		return false
	}
	var derr *selenium.Error
	if errors.As(err, &derr) {
		return derr.Err == class
	}
	return strings.Contains(err.Error(), class)
}

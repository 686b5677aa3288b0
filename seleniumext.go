package seleniumext

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/tebeka/selenium"
)

// Default retry budgets. Every helper polls at a fixed delay for a fixed
// retry count; a budget of N retries allows at most N+1 attempts.
const (
	// DefaultDelay is the pause between attempts of every policy.
	DefaultDelay = 500 * time.Millisecond
	// DefaultFindRetries bounds element lookups.
	DefaultFindRetries uint64 = 30
	// DefaultTextRetries bounds text reads waiting for content.
	DefaultTextRetries uint64 = 10
	// DefaultBoolRetries bounds condition polls.
	DefaultBoolRetries uint64 = 30
	// DefaultStaleRetries bounds re-checks of probes interrupted by stale
	// element references.
	DefaultStaleRetries uint64 = 30
	// DefaultClickRetries bounds click re-dispatch in ClickAndConfirm.
	DefaultClickRetries uint64 = 20
	// DefaultConfirmRetries bounds condition polls per dispatched click.
	DefaultConfirmRetries uint64 = 5
)

// Locator specifies how to find elements in the current page. By is one of
// the driver's location strategies, Value its argument.
type Locator struct {
	By    string
	Value string
}

// String renders the locator for logs and error messages.
func (l Locator) String() string {
	return l.By + "=" + l.Value
}

// ByID locates by element id.
func ByID(id string) Locator { return Locator{By: selenium.ByID, Value: id} }

// ByName locates by the name attribute.
func ByName(name string) Locator { return Locator{By: selenium.ByName, Value: name} }

// ByTag locates by tag name.
func ByTag(name string) Locator { return Locator{By: selenium.ByTagName, Value: name} }

// ByClass locates by a single class name.
func ByClass(name string) Locator { return Locator{By: selenium.ByClassName, Value: name} }

// ByCSS locates by CSS selector.
func ByCSS(selector string) Locator { return Locator{By: selenium.ByCSSSelector, Value: selector} }

// ByXPath locates by XPath expression.
func ByXPath(expr string) Locator { return Locator{By: selenium.ByXPATH, Value: expr} }

// ByLinkText locates an anchor by its exact text.
func ByLinkText(text string) Locator { return Locator{By: selenium.ByLinkText, Value: text} }

// ByPartialLinkText locates an anchor by a substring of its text.
func ByPartialLinkText(text string) Locator {
	return Locator{By: selenium.ByPartialLinkText, Value: text}
}

// FieldKind classifies a form control and selects how its value is read and
// written.
type FieldKind int

// The supported form-control kinds.
const (
	Text FieldKind = iota
	Password
	Dropdown
	Checkbox
	MultiSelectBox
	RadioButton
)

// String implements fmt.Stringer.
func (k FieldKind) String() string {
	switch k {
	case Text:
		return "text"
	case Password:
		return "password"
	case Dropdown:
		return "dropdown"
	case Checkbox:
		return "checkbox"
	case MultiSelectBox:
		return "multiselect"
	case RadioButton:
		return "radio"
	}
	return "FieldKind(" + strconv.Itoa(int(k)) + ")"
}

func (k FieldKind) valid() bool {
	return k >= Text && k <= RadioButton
}

// ClickKind selects the pointer gesture a click helper dispatches.
type ClickKind int

// The supported pointer gestures.
const (
	SingleClick ClickKind = iota
	DoubleClick
	ContextClick
)

// String implements fmt.Stringer.
func (k ClickKind) String() string {
	switch k {
	case SingleClick:
		return "single"
	case DoubleClick:
		return "double"
	case ContextClick:
		return "context"
	}
	return "ClickKind(" + strconv.Itoa(int(k)) + ")"
}

func (k ClickKind) valid() bool {
	return k >= SingleClick && k <= ContextClick
}

// AlertChoice tells ClickAndConfirmAlert what to do with an alert once one
// appears.
type AlertChoice int

const (
	// AlertAccept accepts the alert.
	AlertAccept AlertChoice = iota
	// AlertDismiss dismisses the alert.
	AlertDismiss
	// AlertLeaveOpen observes the alert and leaves it open for the caller.
	AlertLeaveOpen
)

// String implements fmt.Stringer.
func (c AlertChoice) String() string {
	switch c {
	case AlertAccept:
		return "accept"
	case AlertDismiss:
		return "dismiss"
	case AlertLeaveOpen:
		return "leave open"
	}
	return "AlertChoice(" + strconv.Itoa(int(c)) + ")"
}

// Session wraps a WebDriver together with the retry budgets shared by all
// helpers. Construct with New; the zero value is not usable. A Session
// holds no mutable state of its own and is as safe for concurrent use as
// the driver behind it.
type Session struct {
	wd  selenium.WebDriver
	log zerolog.Logger

	delay          time.Duration
	findRetries    uint64
	textRetries    uint64
	staleRetries   uint64
	clickRetries   uint64
	confirmRetries uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes retry and confirmation events to l. The default logger
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithDelay sets the pause between attempts of every policy the session
// builds.
func WithDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithFindRetries bounds element lookups and visibility polls.
func WithFindRetries(n uint64) Option {
	return func(s *Session) { s.findRetries = n }
}

// WithTextRetries bounds text reads waiting for content.
func WithTextRetries(n uint64) Option {
	return func(s *Session) { s.textRetries = n }
}

// WithStaleRetries bounds re-checks of probes interrupted by stale element
// references.
func WithStaleRetries(n uint64) Option {
	return func(s *Session) { s.staleRetries = n }
}

// WithClickRetries bounds click re-dispatch in ClickAndConfirm.
func WithClickRetries(n uint64) Option {
	return func(s *Session) { s.clickRetries = n }
}

// WithConfirmRetries bounds condition polls per dispatched click.
func WithConfirmRetries(n uint64) Option {
	return func(s *Session) { s.confirmRetries = n }
}

// New wraps wd. Budgets start at the package defaults.
func New(wd selenium.WebDriver, opts ...Option) *Session {
	s := &Session{
		wd:             wd,
		log:            zerolog.Nop(),
		delay:          DefaultDelay,
		findRetries:    DefaultFindRetries,
		textRetries:    DefaultTextRetries,
		staleRetries:   DefaultStaleRetries,
		clickRetries:   DefaultClickRetries,
		confirmRetries: DefaultConfirmRetries,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Driver returns the wrapped WebDriver.
func (s *Session) Driver() selenium.WebDriver {
	return s.wd
}

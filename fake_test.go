package seleniumext

import (
	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

// fakeDriver implements selenium.WebDriver by embedding the interface and
// overriding only what the helpers touch. Calling anything else panics,
// which is what a test wants.
type fakeDriver struct {
	selenium.WebDriver

	find    func(by, value string) (selenium.WebElement, error)
	findAll func(by, value string) ([]selenium.WebElement, error)
	alert   func() (string, error)

	scripts      []string
	accepted     int
	dismissed    int
	doubleClicks int
	buttonClicks []int
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	if d.find == nil {
		return nil, notFoundErr(value)
	}
	return d.find(by, value)
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if d.findAll == nil {
		return nil, nil
	}
	return d.findAll(by, value)
}

func (d *fakeDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.scripts = append(d.scripts, script)
	return nil, nil
}

func (d *fakeDriver) AlertText() (string, error) {
	if d.alert == nil {
		return "", noAlertErr()
	}
	return d.alert()
}

func (d *fakeDriver) AcceptAlert() error {
	d.accepted++
	return nil
}

func (d *fakeDriver) DismissAlert() error {
	d.dismissed++
	return nil
}

func (d *fakeDriver) DoubleClick() error {
	d.doubleClicks++
	return nil
}

func (d *fakeDriver) Click(button int) error {
	d.buttonClicks = append(d.buttonClicks, button)
	return nil
}

// fakeElement implements selenium.WebElement the same way. The zero value
// is a hidden, disabled, unselected element with no text; tests fill in
// the fields and hooks a scenario needs.
type fakeElement struct {
	selenium.WebElement

	tag       string
	text      string
	attrs     map[string]string
	selected  bool
	displayed bool
	enabled   bool

	textErr     error
	tagErr      error
	clickErr    error
	selectedErr error

	onClick     func() error
	onDisplayed func() (bool, error)
	onEnabled   func() (bool, error)

	finds   map[string][]selenium.WebElement
	findErr error

	clicks  int
	cleared int
	typed   []string
	moves   int
}

func (e *fakeElement) Click() error {
	e.clicks++
	if e.onClick != nil {
		return e.onClick()
	}
	return e.clickErr
}

func (e *fakeElement) Clear() error {
	e.cleared++
	if e.attrs != nil {
		e.attrs["value"] = ""
	}
	return nil
}

func (e *fakeElement) SendKeys(keys string) error {
	e.typed = append(e.typed, keys)
	if e.attrs != nil {
		e.attrs["value"] += keys
	}
	return nil
}

func (e *fakeElement) TagName() (string, error) {
	return e.tag, e.tagErr
}

func (e *fakeElement) Text() (string, error) {
	return e.text, e.textErr
}

func (e *fakeElement) IsSelected() (bool, error) {
	return e.selected, e.selectedErr
}

func (e *fakeElement) IsDisplayed() (bool, error) {
	if e.onDisplayed != nil {
		return e.onDisplayed()
	}
	return e.displayed, nil
}

func (e *fakeElement) IsEnabled() (bool, error) {
	if e.onEnabled != nil {
		return e.onEnabled()
	}
	return e.enabled, nil
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", errors.Errorf("nil return value for attribute %s", name)
	}
	return v, nil
}

func (e *fakeElement) MoveTo(xOffset, yOffset int) error {
	e.moves++
	return nil
}

func (e *fakeElement) FindElements(by, value string) ([]selenium.WebElement, error) {
	if e.findErr != nil {
		return nil, e.findErr
	}
	return e.finds[value], nil
}

// Errors shaped like the driver's.

func notFoundErr(value string) error {
	return &selenium.Error{
		Err:      "no such element",
		Message:  "unable to locate element " + value,
		HTTPCode: 404,
	}
}

func staleErr() error {
	return &selenium.Error{
		Err:      "stale element reference",
		Message:  "element is not attached to the page document",
		HTTPCode: 404,
	}
}

func noAlertErr() error {
	return &selenium.Error{
		Err:      "no such alert",
		Message:  "no alert is active",
		HTTPCode: 404,
	}
}

// fastSession drops the inter-attempt pause so retry-heavy tests finish
// instantly.
func fastSession(d *fakeDriver, opts ...Option) *Session {
	return New(d, append([]Option{WithDelay(0)}, opts...)...)
}

// elementDriver serves the mapped elements and reports not-found for every
// other locator value.
func elementDriver(els map[string]selenium.WebElement) *fakeDriver {
	d := &fakeDriver{}
	d.find = func(by, value string) (selenium.WebElement, error) {
		if el, ok := els[value]; ok {
			return el, nil
		}
		return nil, notFoundErr(value)
	}
	return d
}

package seleniumext

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

// SelectElement wraps a <select> control with option-level accessors.
type SelectElement struct {
	element selenium.WebElement
	multi   bool
}

// NewSelect wraps el, which must be a <select> element. Multi-select
// support is read from the element's "multiple" attribute.
func NewSelect(el selenium.WebElement) (SelectElement, error) {
	tag, err := el.TagName()
	if err != nil {
		return SelectElement{}, err
	}
	if !strings.EqualFold(tag, "select") {
		return SelectElement{}, errors.Errorf(`element should have been "select" but was %q`, tag)
	}
	multi, err := el.GetAttribute("multiple")
	return SelectElement{
		element: el,
		multi:   err == nil && !strings.EqualFold(multi, "false"),
	}, nil
}

// Element returns the wrapped <select> element.
func (s SelectElement) Element() selenium.WebElement {
	return s.element
}

// IsMultiple reports whether the control allows selecting several options at
// the same time.
func (s SelectElement) IsMultiple() bool {
	return s.multi
}

// Options returns every option of the control in document order.
func (s SelectElement) Options() ([]selenium.WebElement, error) {
	return s.element.FindElements(selenium.ByTagName, "option")
}

// SelectedOptions returns every currently selected option in document order.
func (s SelectElement) SelectedOptions() ([]selenium.WebElement, error) {
	opts, err := s.Options()
	if err != nil {
		return nil, err
	}
	var selected []selenium.WebElement
	for _, opt := range opts {
		on, err := opt.IsSelected()
		if err != nil {
			return nil, err
		}
		if on {
			selected = append(selected, opt)
		}
	}
	return selected, nil
}

// FirstSelectedOption returns the first currently selected option.
func (s SelectElement) FirstSelectedOption() (selenium.WebElement, error) {
	selected, err := s.SelectedOptions()
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, errors.New("no options are selected")
	}
	return selected[0], nil
}

// SelectByVisibleText selects every option whose rendered text matches text
// (the first such option on a single-select). That is, given "Bar" it
// selects
//
//	<option value="foo">Bar</option>
//
// Options are matched through a normalize-space XPath first; when text
// contains spaces the document may have collapsed, candidates are re-checked
// against their trimmed rendered text.
func (s SelectElement) SelectByVisibleText(text string) error {
	options, err := s.element.FindElements(selenium.ByXPATH,
		`.//option[normalize-space(.) = `+escapeQuotes(text)+`]`)
	if err != nil {
		return err
	}
	for _, option := range options {
		if err := s.setSelected(option, true); err != nil {
			return err
		}
		if !s.multi {
			return nil
		}
	}

	matched := len(options) > 0
	if !matched && strings.Contains(text, " ") {
		token := longestTokenWithoutSpace(text)
		var candidates []selenium.WebElement
		if token == "" {
			// text is empty or all spaces; every option is a candidate.
			candidates, err = s.Options()
		} else {
			candidates, err = s.element.FindElements(selenium.ByXPATH,
				`.//option[contains(., `+escapeQuotes(token)+`)]`)
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(text)
		for _, option := range candidates {
			t, err := option.Text()
			if err != nil {
				return err
			}
			if trimmed == strings.TrimSpace(t) {
				if err := s.setSelected(option, true); err != nil {
					return err
				}
				if !s.multi {
					return nil
				}
				matched = true
			}
		}
	}
	if !matched {
		return errors.Errorf("cannot locate option with text: %s", text)
	}
	return nil
}

// SelectByValue selects every option whose value attribute equals value
// (the first such option on a single-select). That is, given "foo" it
// selects
//
//	<option value="foo">Bar</option>
func (s SelectElement) SelectByValue(value string) error {
	opts, err := s.findOptionsByValue(value)
	if err != nil {
		return err
	}
	for _, option := range opts {
		if err := s.setSelected(option, true); err != nil {
			return err
		}
		if !s.multi {
			return nil
		}
	}
	return nil
}

// DeselectAll clears every selected entry. Only multi-selects support
// deselection.
func (s SelectElement) DeselectAll() error {
	if !s.multi {
		return errors.New("you may only deselect options of a multi-select")
	}
	opts, err := s.Options()
	if err != nil {
		return err
	}
	for _, opt := range opts {
		if err := s.setSelected(opt, false); err != nil {
			return err
		}
	}
	return nil
}

// DeselectByVisibleText deselects every option whose rendered text matches
// text. Only multi-selects support deselection.
func (s SelectElement) DeselectByVisibleText(text string) error {
	if !s.multi {
		return errors.New("you may only deselect options of a multi-select")
	}
	options, err := s.element.FindElements(selenium.ByXPATH,
		`.//option[normalize-space(.) = `+escapeQuotes(text)+`]`)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return errors.Errorf("cannot locate option with text: %s", text)
	}
	for _, option := range options {
		if err := s.setSelected(option, false); err != nil {
			return err
		}
	}
	return nil
}

func (s SelectElement) findOptionsByValue(value string) ([]selenium.WebElement, error) {
	opts, err := s.element.FindElements(selenium.ByXPATH,
		`.//option[@value = `+escapeQuotes(value)+`]`)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, errors.Errorf("cannot locate option with value: %s", value)
	}
	return opts, nil
}

// setSelected clicks option only when its current state differs from
// selected, so repeated calls never toggle twice.
func (s SelectElement) setSelected(option selenium.WebElement, selected bool) error {
	current, err := option.IsSelected()
	if err != nil {
		return err
	}
	if current == selected {
		return nil
	}
	return option.Click()
}

// escapeQuotes renders text as an XPath string literal, falling back to a
// concat() expression when both quote characters appear in it.
func escapeQuotes(text string) string {
	if !strings.Contains(text, `"`) {
		return `"` + text + `"`
	}
	if !strings.Contains(text, `'`) {
		return `'` + text + `'`
	}
	parts := strings.Split(text, `"`)
	var b strings.Builder
	b.WriteString("concat(")
	for i, part := range parts {
		if i > 0 {
			b.WriteString(`, '"', `)
		}
		b.WriteString(`"` + part + `"`)
	}
	b.WriteString(")")
	return b.String()
}

func longestTokenWithoutSpace(s string) string {
	longest := ""
	for _, token := range strings.Split(s, " ") {
		if len(token) > len(longest) {
			longest = token
		}
	}
	return longest
}

package seleniumext

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

// Locate finds the first element matching l, retrying driver errors up to
// the session's find budget. Unlike the raw driver call it rides out the
// transient failures of a page still building itself.
func (s *Session) Locate(l Locator) (selenium.WebElement, error) {
	p := bind(s, NewTolerantPolicy[selenium.WebElement](), s.findRetries, "locate")
	return p.Do(func() (selenium.WebElement, error) {
		return s.wd.FindElement(l.By, l.Value)
	})
}

// LocateAll finds every element matching l, retrying like Locate. A locator
// matching nothing yields an empty slice.
func (s *Session) LocateAll(l Locator) ([]selenium.WebElement, error) {
	p := bind(s, NewTolerantPolicy[[]selenium.WebElement](), s.findRetries, "locate all")
	return p.Do(func() ([]selenium.WebElement, error) {
		return s.wd.FindElements(l.By, l.Value)
	})
}

// locateScrolled is the lookup step shared by the field accessors: scroll
// the target into view, then resolve it, the whole attempt retried under
// the tolerant policy.
func (s *Session) locateScrolled(l Locator) (selenium.WebElement, error) {
	p := bind(s, NewTolerantPolicy[selenium.WebElement](), s.findRetries, "locate")
	return p.Do(func() (selenium.WebElement, error) {
		if err := s.ScrollIntoView(l); err != nil {
			return nil, err
		}
		return s.wd.FindElement(l.By, l.Value)
	})
}

// Texts reads the visible text of every element matching l, retrying until
// the result is non-empty, up to the session's text budget. The budget
// running out returns the last (empty) read with a nil error.
func (s *Session) Texts(l Locator) ([]string, error) {
	p := bind(s, NewNonEmptyTextsPolicy(), s.textRetries, "texts")
	return p.Do(func() ([]string, error) {
		return s.readTexts(l)
	})
}

// TextsNonBlank is Texts, additionally retrying while any entry is blank.
func (s *Session) TextsNonBlank(l Locator) ([]string, error) {
	p := bind(s, NewNonBlankTextsPolicy(), s.textRetries, "texts")
	return p.Do(func() ([]string, error) {
		return s.readTexts(l)
	})
}

func (s *Session) readTexts(l Locator) ([]string, error) {
	els, err := s.wd.FindElements(l.By, l.Value)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(els))
	for _, el := range els {
		t, err := el.Text()
		if err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}
	return texts, nil
}

// Text reads the visible text of the first element matching l under the
// tolerant lookup policy.
func (s *Session) Text(l Locator) (string, error) {
	p := bind(s, NewTolerantPolicy[string](), s.findRetries, "text")
	return p.Do(func() (string, error) {
		el, err := s.wd.FindElement(l.By, l.Value)
		if err != nil {
			return "", err
		}
		return el.Text()
	})
}

// Attribute reads the named attribute of the first element matching l under
// the tolerant lookup policy.
func (s *Session) Attribute(l Locator, name string) (string, error) {
	p := bind(s, NewTolerantPolicy[string](), s.findRetries, "attribute")
	return p.Do(func() (string, error) {
		el, err := s.wd.FindElement(l.By, l.Value)
		if err != nil {
			return "", err
		}
		return el.GetAttribute(name)
	})
}

// FieldValues reads the current value of the form control matching l,
// interpreted per kind. MultiSelectBox yields every selected option's text
// in document order. The other kinds yield at most one entry: the value
// attribute for Text and Password, the selected option's text for Dropdown
// (no entry when nothing is selected), and "true"/"false" for Checkbox and
// RadioButton.
func (s *Session) FieldValues(l Locator, kind FieldKind) ([]string, error) {
	if !kind.valid() {
		return nil, errors.Wrapf(ErrUnknownFieldKind, "kind %d", int(kind))
	}
	el, err := s.locateScrolled(l)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Text, Password:
		v, err := el.GetAttribute("value")
		if err != nil {
			return nil, err
		}
		return []string{v}, nil
	case Dropdown:
		chosen, err := selectedOptionTexts(el)
		if err != nil {
			return nil, err
		}
		if len(chosen) == 0 {
			return nil, nil
		}
		return chosen[:1], nil
	case MultiSelectBox:
		return selectedOptionTexts(el)
	case Checkbox, RadioButton:
		on, err := el.IsSelected()
		if err != nil {
			return nil, err
		}
		return []string{strconv.FormatBool(on)}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFieldKind, "kind %d", int(kind))
	}
}

func selectedOptionTexts(el selenium.WebElement) ([]string, error) {
	sel, err := NewSelect(el)
	if err != nil {
		return nil, err
	}
	chosen, err := sel.SelectedOptions()
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(chosen))
	for _, opt := range chosen {
		t, err := opt.Text()
		if err != nil {
			return nil, err
		}
		texts = append(texts, t)
	}
	return texts, nil
}

// FieldValue is FieldValues reduced to its first entry, or "" when the
// control has no current value (an unselected dropdown, say).
func (s *Session) FieldValue(l Locator, kind FieldKind) (string, error) {
	values, err := s.FieldValues(l, kind)
	if err != nil || len(values) == 0 {
		return "", err
	}
	return values[0], nil
}

// SetFieldValue writes value into the form control matching l, interpreted
// per kind. Text and Password are cleared and retyped. Dropdown and
// MultiSelectBox select the option whose visible text equals value.
// Checkbox and RadioButton are clicked only when their current state,
// rendered as "true"/"false" and compared case-insensitively against value,
// differs; writing the state a control already has never toggles it.
func (s *Session) SetFieldValue(l Locator, kind FieldKind, value string) error {
	if !kind.valid() {
		return errors.Wrapf(ErrUnknownFieldKind, "kind %d", int(kind))
	}
	el, err := s.locateScrolled(l)
	if err != nil {
		return err
	}
	switch kind {
	case Text, Password:
		if err := el.Clear(); err != nil {
			return err
		}
		return el.SendKeys(value)
	case Dropdown, MultiSelectBox:
		sel, err := NewSelect(el)
		if err != nil {
			return err
		}
		return sel.SelectByVisibleText(value)
	case Checkbox, RadioButton:
		on, err := el.IsSelected()
		if err != nil {
			return err
		}
		if strings.EqualFold(strconv.FormatBool(on), value) {
			return nil
		}
		return el.Click()
	default:
		return errors.Wrapf(ErrUnknownFieldKind, "kind %d", int(kind))
	}
}

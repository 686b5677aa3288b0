package seleniumext

import (
	"github.com/tebeka/selenium"
)

// scrollIntoViewScript brings an element to the vertical center and
// horizontal start of the viewport.
const scrollIntoViewScript = `arguments[0].scrollIntoView({block: 'center', inline: 'start'});`

// probeState is the explicit outcome of one visibility probe, instead of
// caught-exception control flow.
type probeState int

const (
	probeLive probeState = iota
	probeStale
	probeMissing
	probeFailed
)

// probeDisplayed scrolls the first match of l into view and reads its
// display state. Absence at any step is probeMissing with a nil error. A
// stale handle is probeStale with the driver's error, ready to feed a
// stale-bounded policy. Anything else is probeFailed with its error.
func (s *Session) probeDisplayed(l Locator) (probeState, bool, error) {
	if err := s.ScrollIntoView(l); err != nil {
		return classifyProbe(err)
	}
	el, err := s.wd.FindElement(l.By, l.Value)
	if err != nil {
		return classifyProbe(err)
	}
	shown, err := el.IsDisplayed()
	if err != nil {
		return classifyProbe(err)
	}
	return probeLive, shown, nil
}

func classifyProbe(err error) (probeState, bool, error) {
	switch {
	case IsNotFound(err):
		return probeMissing, false, nil
	case IsStale(err):
		return probeStale, false, err
	default:
		return probeFailed, false, err
	}
}

// ElementIsDisplayed reports whether the first element matching l is
// currently displayed, scrolling it into view first. A locator matching
// nothing is false, not an error. A probe interrupted by a stale reference
// is re-checked up to the session's stale budget; a page that never settles
// within it surfaces the last stale error.
func (s *Session) ElementIsDisplayed(l Locator) (bool, error) {
	p := bind(s, NewTolerantPolicy[bool](), s.staleRetries, "displayed")
	p.RetryableErr = IsStale
	return p.Do(func() (bool, error) {
		st, shown, err := s.probeDisplayed(l)
		switch st {
		case probeLive:
			return shown, nil
		case probeMissing:
			return false, nil
		default:
			return false, err
		}
	})
}

// WaitDisplayed polls ElementIsDisplayed until it reports want, up to the
// session's find budget. It returns the probe's final answer, so a budget
// that runs out reports !want with a nil error.
func (s *Session) WaitDisplayed(l Locator, want bool) (bool, error) {
	p := bind(s, NewTolerantBoolPolicy(!want), s.findRetries, "wait displayed")
	return p.Do(func() (bool, error) {
		return s.ElementIsDisplayed(l)
	})
}

// ScrollIntoView scrolls the first element matching l to the vertical
// center and horizontal start of the viewport. Fire and forget: it does not
// confirm that scrolling completed.
func (s *Session) ScrollIntoView(l Locator) error {
	el, err := s.wd.FindElement(l.By, l.Value)
	if err != nil {
		return err
	}
	return s.ScrollElementIntoView(el)
}

// ScrollElementIntoView scrolls el like ScrollIntoView.
func (s *Session) ScrollElementIntoView(el selenium.WebElement) error {
	_, err := s.wd.ExecuteScript(scrollIntoViewScript, []interface{}{el})
	return err
}

// ElementIsStale reports whether el no longer refers to a live node. The
// check reads the element's enabled state and classifies the failure; a
// healthy read means the handle is still live. Errors other than staleness
// propagate.
func (s *Session) ElementIsStale(el selenium.WebElement) (bool, error) {
	if _, err := el.IsEnabled(); err != nil {
		if IsStale(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

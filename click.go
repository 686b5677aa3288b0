package seleniumext

import (
	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
)

// Condition reports whether a click's intended side effect has been
// observed. Errors are treated as transient and re-polled per policy.
type Condition func() (bool, error)

// Click scrolls the first element matching l into view and dispatches the
// gesture once. SingleClick goes to the element itself; DoubleClick and
// ContextClick move the pointer onto the element and fire through the
// driver's action primitives.
func (s *Session) Click(l Locator, kind ClickKind) error {
	if !kind.valid() {
		return errors.Wrapf(ErrUnknownClickKind, "kind %d", int(kind))
	}
	return s.clickOnce(l, kind)
}

func (s *Session) clickOnce(l Locator, kind ClickKind) error {
	if err := s.ScrollIntoView(l); err != nil {
		return err
	}
	el, err := s.wd.FindElement(l.By, l.Value)
	if err != nil {
		return err
	}
	switch kind {
	case SingleClick:
		return el.Click()
	case DoubleClick:
		if err := el.MoveTo(0, 0); err != nil {
			return err
		}
		return s.wd.DoubleClick()
	case ContextClick:
		if err := el.MoveTo(0, 0); err != nil {
			return err
		}
		return s.wd.Click(selenium.RightButton)
	default:
		return errors.Wrapf(ErrUnknownClickKind, "kind %d", int(kind))
	}
}

// ClickAndConfirm clicks the element matching l and polls cond until it
// reports that the click took effect. Each round scrolls to the target,
// dispatches the gesture, then runs cond under the confirmation budget; an
// unconfirmed round clicks again, up to the session's click budget. A click
// that cannot even be dispatched once fails immediately. A dispatch error
// on a later round is logged and the round proceeds to confirmation anyway,
// since the click may have landed regardless.
//
// It returns (true, nil) once cond confirms, (false, nil) when the click
// budget runs out unconfirmed, and (false, err) on a hard failure.
func (s *Session) ClickAndConfirm(l Locator, kind ClickKind, cond Condition) (bool, error) {
	if !kind.valid() {
		return false, errors.Wrapf(ErrUnknownClickKind, "kind %d", int(kind))
	}
	outer := bind(s, NewTolerantBoolPolicy(false), s.clickRetries, "click")
	inner := bind(s, NewTolerantBoolPolicy(false), s.confirmRetries, "confirm")
	clicked := false
	return outer.Do(func() (bool, error) {
		if err := s.clickOnce(l, kind); err != nil {
			if !clicked {
				return false, backoff.Permanent(err)
			}
			s.log.Debug().Err(err).Stringer("locator", l).Msg("re-click failed, confirming anyway")
		}
		clicked = true
		return inner.Do(cond)
	})
}

// ClickAndConfirmDisplayed confirms through the display state of the
// element matching confirm: the click took effect once that state equals
// wantDisplayed. Expect true to wait for an element to appear, false to
// wait for one to go away.
func (s *Session) ClickAndConfirmDisplayed(l Locator, kind ClickKind, confirm Locator, wantDisplayed bool) (bool, error) {
	return s.ClickAndConfirm(l, kind, func() (bool, error) {
		shown, err := s.ElementIsDisplayed(confirm)
		if err != nil {
			return false, err
		}
		return shown == wantDisplayed, nil
	})
}

// ClickAndConfirmStale confirms through staleness of the element matching
// confirm: a handle captured before the first click must stop resolving,
// meaning the node it pointed at was replaced or removed. The handle is
// captured exactly once, outside every retry loop. When confirm is not
// displayed before the click there is nothing to go stale, and the call
// falls back to ClickAndConfirmDisplayed expecting it to appear.
func (s *Session) ClickAndConfirmStale(l Locator, kind ClickKind, confirm Locator) (bool, error) {
	shown, err := s.ElementIsDisplayed(confirm)
	if err != nil {
		return false, err
	}
	if !shown {
		return s.ClickAndConfirmDisplayed(l, kind, confirm, true)
	}
	captured, err := s.wd.FindElement(confirm.By, confirm.Value)
	if err != nil {
		return false, err
	}
	return s.ClickAndConfirm(l, kind, func() (bool, error) {
		return s.ElementIsStale(captured)
	})
}

// ClickAndConfirmAlert confirms through an alert appearing. Once one is
// present it is accepted, dismissed, or left open per choice, and the click
// counts as confirmed. No alert being open yet is simply an unconfirmed
// round.
func (s *Session) ClickAndConfirmAlert(l Locator, kind ClickKind, choice AlertChoice) (bool, error) {
	switch choice {
	case AlertAccept, AlertDismiss, AlertLeaveOpen:
	default:
		return false, errors.Errorf("unknown alert choice: %d", int(choice))
	}
	return s.ClickAndConfirm(l, kind, func() (bool, error) {
		text, err := s.wd.AlertText()
		if err != nil {
			if IsNoAlert(err) {
				return false, nil
			}
			return false, err
		}
		s.log.Debug().Str("alert", text).Stringer("choice", choice).Msg("alert open")
		switch choice {
		case AlertAccept:
			err = s.wd.AcceptAlert()
		case AlertDismiss:
			err = s.wd.DismissAlert()
		}
		if err != nil {
			return false, err
		}
		return true, nil
	})
}

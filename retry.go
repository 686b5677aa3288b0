package seleniumext

import (
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

// errRetryResult marks an attempt whose result, not error, asked for another
// try. Do strips it on exhaustion and hands the result itself back.
var errRetryResult = errors.New("result not accepted")

// Policy describes how an operation is retried: which errors are worth
// another try, which results are, how many retries are allowed, and how
// long to pause between attempts. A policy with Retries = N makes at most
// N+1 attempts. The zero value makes a single attempt.
type Policy[T any] struct {
	// Retries is the number of re-attempts allowed after the first try.
	Retries uint64
	// Delay is the fixed pause before each re-attempt.
	Delay time.Duration
	// RetryableErr reports whether an attempt error is worth another try.
	// When nil, every error is final.
	RetryableErr func(error) bool
	// RetryableResult reports whether a successful attempt's result asks
	// for another try. When nil, every result is accepted.
	RetryableResult func(T) bool
	// Notify, when set, observes each retried attempt together with the
	// pause preceding the next one.
	Notify func(err error, next time.Duration)
}

// Do runs op under the policy. Exhausting the budget on the result path
// returns the last observed result with a nil error; callers that must
// distinguish "accepted" from "gave up" check the result. Exhausting it on
// the error path returns the last error as is. An op error wrapped with
// backoff.Permanent stops the attempts immediately regardless of
// RetryableErr.
func (p Policy[T]) Do(op func() (T, error)) (T, error) {
	attempt := func() (T, error) {
		v, err := op()
		switch {
		case err == nil:
			if p.RetryableResult != nil && p.RetryableResult(v) {
				return v, errRetryResult
			}
			return v, nil
		case isPermanent(err):
			return v, err
		case p.RetryableErr != nil && p.RetryableErr(err):
			return v, err
		default:
			return v, backoff.Permanent(err)
		}
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Delay), p.Retries)
	v, err := backoff.RetryNotifyWithData(attempt, b, p.Notify)
	if errors.Is(err, errRetryResult) {
		return v, nil
	}
	return v, err
}

func isPermanent(err error) bool {
	var perr *backoff.PermanentError
	return errors.As(err, &perr)
}

// retryAnyErr treats every error as transient. Helpers validate their
// arguments before entering a retry loop, so anything failing inside one
// came from the driver.
func retryAnyErr(error) bool { return true }

// NewTolerantPolicy builds the driver-error-tolerant lookup policy: every
// error is retried, every result is accepted.
func NewTolerantPolicy[T any]() Policy[T] {
	return Policy[T]{
		Retries:      DefaultFindRetries,
		Delay:        DefaultDelay,
		RetryableErr: retryAnyErr,
	}
}

// NewNonEmptyTextsPolicy builds the text-read policy: retries until a read
// produces at least one string, tolerating driver errors along the way.
func NewNonEmptyTextsPolicy() Policy[[]string] {
	return Policy[[]string]{
		Retries:         DefaultTextRetries,
		Delay:           DefaultDelay,
		RetryableErr:    retryAnyErr,
		RetryableResult: func(texts []string) bool { return len(texts) == 0 },
	}
}

// NewNonBlankTextsPolicy is NewNonEmptyTextsPolicy with the extra demand
// that no entry is blank.
func NewNonBlankTextsPolicy() Policy[[]string] {
	return Policy[[]string]{
		Retries:         DefaultTextRetries,
		Delay:           DefaultDelay,
		RetryableErr:    retryAnyErr,
		RetryableResult: anyBlank,
	}
}

func anyBlank(texts []string) bool {
	if len(texts) == 0 {
		return true
	}
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			return true
		}
	}
	return false
}

// NewBoolPolicy builds the condition-poll policy: a result equal to trigger
// asks for another try. Pass false to keep polling until a condition turns
// true. Errors are final.
func NewBoolPolicy(trigger bool) Policy[bool] {
	return Policy[bool]{
		Retries:         DefaultBoolRetries,
		Delay:           DefaultDelay,
		RetryableResult: func(v bool) bool { return v == trigger },
	}
}

// NewTolerantBoolPolicy is NewBoolPolicy with driver errors retried too.
func NewTolerantBoolPolicy(trigger bool) Policy[bool] {
	p := NewBoolPolicy(trigger)
	p.RetryableErr = retryAnyErr
	return p
}

// bind adapts a factory policy to the session's delay, a budget, and the
// session logger.
func bind[T any](s *Session, p Policy[T], retries uint64, op string) Policy[T] {
	p.Retries = retries
	p.Delay = s.delay
	p.Notify = s.notify(op)
	return p
}

func (s *Session) notify(op string) func(error, time.Duration) {
	return func(err error, next time.Duration) {
		s.log.Debug().Str("op", op).Err(err).Dur("backoff", next).Msg("retrying")
	}
}

// Package tracker implements the task tracking operations on top of the
// store: authorization, the task lifecycle, time tracking and notification
// fan-out. Every operation takes the acting principal explicitly.
package tracker

import (
	"strings"
	"time"

	"github.com/stsysd/tasktrack/model"
	"github.com/stsysd/tasktrack/notify"
	"github.com/stsysd/tasktrack/store"
)

// DefaultSessionTTL is the lifetime of a session created by sign-in.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Options tunes a Service. Zero values select the defaults.
type Options struct {
	// AdminEmails receive the ADMIN role when they sign up.
	AdminEmails []string
	SessionTTL  time.Duration
	// Rule is consulted before every status change.
	Rule model.TransitionRule
	Now  func() time.Time
}

// Service is the entry point for all tracker operations.
type Service struct {
	store       store.Store
	notifier    notify.Notifier
	rule        model.TransitionRule
	now         func() time.Time
	sessionTTL  time.Duration
	adminEmails map[string]bool
}

// NewService returns a Service over st. A nil notifier discards
// notifications.
func NewService(st store.Store, notifier notify.Notifier, opts Options) *Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	s := &Service{
		store:       st,
		notifier:    notifier,
		rule:        opts.Rule,
		now:         opts.Now,
		sessionTTL:  opts.SessionTTL,
		adminEmails: make(map[string]bool, len(opts.AdminEmails)),
	}
	if s.rule == nil {
		s.rule = model.AnyTransition
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.sessionTTL <= 0 {
		s.sessionTTL = DefaultSessionTTL
	}
	for _, e := range opts.AdminEmails {
		if e = normalizeEmail(e); e != "" {
			s.adminEmails[e] = true
		}
	}
	return s
}

func requireAdmin(p model.Principal) error {
	if !p.IsAdmin() {
		return model.ErrForbidden
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"utsav/internal/models"
)

// Sweeper drains due reminders and forwards them to the push dispatcher. One
// invocation fetches a single snapshot of the due set and processes each
// record independently; a record is marked sent exactly once per pass,
// whatever the delivery outcome (at-most-once semantics, no retry queue).
type Sweeper struct {
	reminders *ReminderService
	tokens    *TokenService
	catalog   *CatalogService
	push      Dispatcher
	audit     *NotificationLogService

	dispatchTimeout time.Duration
	interval        time.Duration
}

// Dispatcher abstracts the push provider for the sweep.
type Dispatcher interface {
	Dispatch(ctx context.Context, tokens []string, title, body string, data map[string]string) []DispatchResult
}

// SweepResult is what one sweep invocation reports back to its trigger.
type SweepResult struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
}

func NewSweeper(reminders *ReminderService, tokens *TokenService, catalog *CatalogService, push Dispatcher, audit *NotificationLogService) *Sweeper {
	return &Sweeper{
		reminders:       reminders,
		tokens:          tokens,
		catalog:         catalog,
		push:            push,
		audit:           audit,
		dispatchTimeout: 30 * time.Second,
		interval:        sweepInterval(),
	}
}

func sweepInterval() time.Duration {
	if v := os.Getenv("SWEEP_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Error: invalid SWEEP_INTERVAL %q, using default", v)
	}
	return time.Minute * 5
}

// Start runs the sweep on a ticker in the background. Deployments that prefer
// an external scheduler skip this and hit the trigger endpoint instead.
func (s *Sweeper) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := s.RunSweep(ctx)
			if err != nil {
				log.Printf("Error: reminder sweep failed: %v", err)
				continue
			}
			if result.Processed > 0 {
				log.Printf("Reminder sweep: processed=%d sent=%d failed=%d",
					result.Processed, result.Sent, result.Failed)
			}
		}
	}
}

// RunSweep executes one scan-and-dispatch pass. A failure to fetch the due
// set is fatal and nothing is processed; failures on individual records are
// isolated and reflected in the counts. Records left unsent by a mark-sent
// store error stay due and are retried on the next trigger.
func (s *Sweeper) RunSweep(ctx context.Context) (SweepResult, error) {
	due, err := s.reminders.ListDue(time.Now())
	if err != nil {
		return SweepResult{}, fmt.Errorf("fetching due reminders: %w", err)
	}

	result := SweepResult{Processed: len(due)}
	if len(due) == 0 {
		return result, nil
	}

	log.Printf("Processing %d due reminders", len(due))

	var sweepErr error
	for _, reminder := range due {
		delivered, skipped, err := s.processReminder(ctx, reminder)
		if err != nil {
			log.Printf("Error: reminder %s: %v", reminder.ID, err)
			if sweepErr == nil {
				sweepErr = err
			}
		}
		switch {
		case skipped:
			// no registered device, nothing counted
		case delivered:
			result.Sent++
		default:
			result.Failed++
		}
	}
	return result, sweepErr
}

// processReminder handles a single due record: resolve tokens, dispatch,
// prune invalid tokens, mark sent. Returns whether at least one message was
// delivered and whether dispatch was skipped for lack of tokens.
func (s *Sweeper) processReminder(ctx context.Context, reminder models.Reminder) (delivered, skipped bool, err error) {
	tokens, tokenErr := s.tokens.ListForUser(reminder.UserID)
	if tokenErr != nil {
		// Treated like an empty token set: the record is still marked sent so
		// it cannot loop forever, and the failure is reported.
		if markErr := s.reminders.MarkSent(reminder.ID); markErr != nil {
			return false, false, markErr
		}
		return false, false, tokenErr
	}

	if len(tokens) == 0 {
		log.Printf("No tokens for user %s", reminder.UserID)
		if markErr := s.reminders.MarkSent(reminder.ID); markErr != nil {
			return false, true, markErr
		}
		return false, true, nil
	}

	title := fmt.Sprintf("🙏 Reminder: %s", s.catalog.Lookup(reminder.UserID, reminder.EventID))
	body := fmt.Sprintf("Your event on %s is coming up!", reminder.EventDate)
	data := map[string]string{
		"eventId":   reminder.EventID,
		"eventDate": reminder.EventDate,
		"url":       "/day/" + reminder.EventDate,
	}

	tokenValues := make([]string, len(tokens))
	for i, t := range tokens {
		tokenValues[i] = t.Token
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	results := s.push.Dispatch(dispatchCtx, tokenValues, title, body, data)
	cancel()

	var firstError string
	for _, r := range results {
		if r.Success {
			delivered = true
			continue
		}
		if firstError == "" {
			firstError = r.ErrorCode
		}
		if r.ErrorCode == ErrUnregistered {
			if err := s.tokens.RemoveInvalid(r.Token); err != nil {
				log.Printf("Error: failed to prune invalid token: %v", err)
			}
		}
	}

	if s.audit != nil {
		s.audit.Record(reminder, len(tokens), countDelivered(results), firstError)
	}

	if markErr := s.reminders.MarkSent(reminder.ID); markErr != nil {
		return delivered, false, markErr
	}
	return delivered, false, nil
}

func countDelivered(results []DispatchResult) int {
	n := 0
	for _, r := range results {
		if r.Success {
			n++
		}
	}
	return n
}

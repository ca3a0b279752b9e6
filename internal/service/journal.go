package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xolan/mood/internal/api"
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/session"
	"github.com/xolan/mood/internal/stats"
)

// ErrNotAuthenticated is returned by journal operations without a token
var ErrNotAuthenticated = errors.New("not logged in")

// JournalService provides operations on the remote journal
type JournalService struct {
	session *session.Session
	client  *api.Client
	logger  *slog.Logger
}

// NewJournalService creates a new JournalService
func NewJournalService(sess *session.Session, client *api.Client, logger *slog.Logger) *JournalService {
	return &JournalService{
		session: sess,
		client:  client,
		logger:  logger,
	}
}

// Create validates req and persists it on the server.
// Validation failures are *journal.ValidationError and send nothing.
func (s *JournalService) Create(ctx context.Context, req journal.NewEntry) (journal.Entry, error) {
	if !s.session.Authorized() {
		return journal.Entry{}, ErrNotAuthenticated
	}
	if err := req.Validate(); err != nil {
		return journal.Entry{}, err
	}
	if req.Activities == nil {
		req.Activities = []string{}
	}

	created, err := s.client.CreateEntry(ctx, req)
	if err != nil {
		s.logger.Warn("create entry failed", "error", err)
		return journal.Entry{}, fmt.Errorf("failed to save entry: %w", err)
	}
	s.logger.Debug("entry created", "id", created.ID, "mood", created.Mood)
	return created, nil
}

// List returns all entries in server order.
func (s *JournalService) List(ctx context.Context) ([]journal.Entry, error) {
	if !s.session.Authorized() {
		return nil, ErrNotAuthenticated
	}

	entries, err := s.client.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("list entries failed", "error", err)
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	return entries, nil
}

// Stats fetches the feed and summarizes it.
func (s *JournalService) Stats(ctx context.Context) (*StatsResult, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(entries), nil
}

// Summarize computes statistics for entries already fetched.
func Summarize(entries []journal.Entry) *StatsResult {
	return &StatsResult{
		Statistics:   stats.CalculateStatistics(entries),
		Distribution: stats.MoodDistribution(entries),
		Activities:   stats.CalculateActivityBreakdown(entries),
	}
}

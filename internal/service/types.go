// Package service provides the business logic layer for the mood client.
// It composes the session, the API client and the config file into the
// operations shared by the CLI and the TUI.
package service

import (
	"github.com/xolan/mood/internal/journal"
	"github.com/xolan/mood/internal/session"
	"github.com/xolan/mood/internal/stats"
)

// AuthStatus describes the current authentication state
type AuthStatus struct {
	State  session.State
	APIURL string
}

// StatsResult contains statistics over the whole feed
type StatsResult struct {
	Statistics   stats.Statistics
	Distribution [journal.MaxMood]int
	Activities   []stats.ActivityBreakdown
}

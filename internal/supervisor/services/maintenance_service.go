// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// MaintenanceTask is one housekeeping step. Run reports how many entries it
// removed, or 0 when the step has no meaningful count.
type MaintenanceTask struct {
	Name string
	Run  func(ctx context.Context) (removed int, err error)
}

// MaintenanceService runs its tasks every interval: expiring recommendation
// and poster cache entries and reclaiming badger value-log space.
// A failing task is logged and does not stop the others.
type MaintenanceService struct {
	interval time.Duration
	tasks    []MaintenanceTask
	logger   zerolog.Logger
}

// NewMaintenanceService creates the service. A non-positive interval means 10m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(interval time.Duration, tasks []MaintenanceTask, logger zerolog.Logger) *MaintenanceService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &MaintenanceService{
		interval: interval,
		tasks:    tasks,
		logger:   logger.With().Str("service", "maintenance").Logger(),
	}
}

// Serve implements suture.Service.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("interval", s.interval).
		Int("tasks", len(s.tasks)).
		Msg("maintenance service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes every task once, in order.
func (s *MaintenanceService) RunOnce(ctx context.Context) {
	for _, task := range s.tasks {
		if ctx.Err() != nil {
			return
		}
		start := time.Now()
		removed, err := task.Run(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Str("task", task.Name).Msg("maintenance task failed")
			continue
		}
		s.logger.Debug().
			Str("task", task.Name).
			Int("removed", removed).
			Dur("duration", time.Since(start)).
			Msg("maintenance task complete")
	}
}

// String names the service in suture events.
func (s *MaintenanceService) String() string {
	return "maintenance"
}

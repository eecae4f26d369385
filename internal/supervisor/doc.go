// Movrec - Movie Recommendation Web Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movrec

/*
Package supervisor runs Movrec's long-lived goroutines under a suture v4 tree.

Tree layout:

	movrec (root)
	├── maintenance-layer   cache purge and badger value-log GC
	└── api-layer           HTTP server

A service that returns an error or panics is restarted with suture's backoff.
Lifecycle events are logged through sutureslog, bridged to zerolog by
logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout, logger))
	tree.AddMaintenanceService(services.NewMaintenanceService(interval, tasks, logger))
	err = tree.Serve(ctx) // blocks until ctx is canceled
*/
package supervisor

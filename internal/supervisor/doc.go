// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package supervisor runs the videodb batch under a suture v4 supervisor.

	RootSupervisor ("videodb")
	└── BatchService ("batch-service")

Supervisor events are logged through sutureslog, so they reach the same
zerolog output as the rest of the program via logging.NewSlogLogger.
Service restarts are also counted in videodb_service_restarts_total.

# Usage

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger("supervisor"),
	    supervisor.TreeConfigFrom(cfg.Supervisor),
	)
	if err != nil {
	    return err
	}
	tree.Add(batch)
	if err := tree.Serve(ctx); err != nil {
	    return err
	}

Serve returns nil once a service terminates the tree with
suture.ErrTerminateSupervisorTree, and ctx.Err() style errors when the
context is canceled first.
*/
package supervisor

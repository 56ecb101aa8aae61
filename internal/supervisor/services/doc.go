// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Package services provides suture.Service wrappers for videodb components.

# Batch Service

BatchService runs one request batch and then returns
suture.ErrTerminateSupervisorTree, so the tree stops as soon as the batch
is done:

	svc := services.NewBatchService(dispatcher, ds.Requests, sink, logger)
	tree.Add(svc)
	if err := tree.Serve(ctx); err != nil {
	    return err
	}
	if err := svc.Err(); err != nil {
	    return err
	}

Each batch gets its own correlation id, attached to every log line the
dispatcher writes for it.

If the batch panics, suture restarts the service. A restarted instance does
not run the batch again: requests already applied have mutated user state,
so it records ErrBatchReplayed and terminates the tree instead.
*/
package services

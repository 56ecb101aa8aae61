// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

/*
Command videodb runs one batch of catalog requests against a dataset.

It loads a JSON document of actors, users, movies, serials and commands,
applies every command in order, and writes one {"id", "message"} entry per
command to the output file (stdout by default).

# Startup Order

 1. Configuration: Koanf v2 layers (defaults, config file, environment, flags)
 2. Logging: zerolog initialised from the logging section
 3. Dataset: loaded and checked for integrity; any failure exits before a
    single command runs
 4. Batch: the dispatcher runs as a one-shot service under a suture tree
 5. Metrics: optionally written to a Prometheus textfile

# Usage

	videodb -input dataset.json -output results.json
	VIDEODB_DATASET=dataset.json LOG_LEVEL=debug videodb

# Exit Codes

	0  batch completed (individual commands may still have failed)
	1  invalid configuration or flags
	2  dataset could not be read, decoded or failed integrity checks
	3  batch interrupted, replayed after a panic, or results not written
*/
package main

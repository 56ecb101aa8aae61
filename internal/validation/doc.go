// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cartographus

// Package validation provides struct validation using go-playground/validator v10.
//
// Every request variant carries validate tags; the dispatcher runs
// ValidateStruct before routing so engines only ever see well-formed input.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Field names reported by their json tag, matching the dataset keys
//   - A notblank custom validator for usernames, titles and genres
//   - Translation of validator errors into readable messages
//
// # Quick Start
//
//	type RateCommand struct {
//	    Username string  `json:"username" validate:"required,notblank"`
//	    Grade    float64 `json:"grade" validate:"gte=1,lte=5"`
//	}
//
//	if verr := validation.ValidateStruct(&cmd); verr != nil {
//	    // verr.Fields() == []string{"grade"}
//	}
//
// # Thread Safety
//
// GetValidator initializes the validator with sync.Once; the returned
// instance is safe for concurrent use.
package validation

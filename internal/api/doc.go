// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package api implements the HTTP surface: request decoding and
// validation, the standard response envelope, routing, and the
// command-side event publishing that feeds analytics.
//
// Handlers are thin. Matching and ranking live in engine, state in
// store and catalog, aggregation in analytics. A handler's job is to
// translate HTTP to those calls and publish the resulting event after
// the state change succeeds, never before.
package api

// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package analytics maintains process-lifetime usage aggregates derived
// solely from observed events.
//
// The Aggregator subscribes to the event bus and keeps, per user, a
// search count plus a bounded FIFO history of the most recent search
// summaries, and system-wide totals for searches, users created, and
// favorites. All mutation happens inside event handlers behind a mutex;
// callers only get read snapshots via System and User.
//
// The Observer is a second subscriber that logs every event for audit
// purposes without touching any counter.
//
// State is ephemeral by design: it vanishes on restart and is never a
// source of truth.
package analytics

// SmartFridge - Pantry-Aware Recipe Search and Usage Analytics
// Copyright 2026 Fridgeworks
// SPDX-License-Identifier: Apache-2.0
// https://github.com/fridgeworks/smartfridge

// Package eventbus implements the in-process event notification system.
//
// Every mutating action in the service (user created, ingredient added,
// search performed, ...) publishes a typed event; side-effect concerns
// such as analytics aggregation and audit logging subscribe to those
// types without coupling to the read/write paths that produce them.
//
// # Design
//
// Event payloads are a closed tagged-variant set: one struct per event
// type, all implementing Payload. Handlers type-switch on the concrete
// payload instead of navigating untyped maps, and subscriptions are
// keyed by the Type enumeration rather than free strings.
//
// Dispatch is synchronous and blocking: Publish returns only after
// every subscriber has run, in registration order. Handler failures
// (errors and panics) are isolated per handler: logged and counted,
// never propagated to siblings or to the publisher.
//
// There is no persistence, no retry, and no ordering guarantee across
// distinct event types. Delivery order within one type follows publish
// order, since dispatch is synchronous per call.
package eventbus

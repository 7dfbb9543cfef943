// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the panel process lifecycle.
//
// It restores persisted preferences, starts the session watcher, runs the
// terminal panel and, on exit, flushes pending settings writes before the
// background workers and the state store are shut down.
package client

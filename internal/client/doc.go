// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the device-side runtime.
//
// It wires the settings store, the server adapter and the client services
// into a single process lifecycle: identity bootstrap, one-time device
// registration, periodic policy refresh and the background sync loop.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the task keeper.
//
// It wires urfave/cli commands to a [adapter.ServerAdapter], keeps the
// session token in a local file between invocations and renders task lists
// as lipgloss tables.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the boundary between the Bluesky services and the
// shells that present them.
//
// [Backend] exposes the operations shells call: initialisation of the data
// directory, sign-in and sign-out, paged feeds, single posts, replies,
// profiles and the write actions. [App] runs it behind the terminal UI; the
// HTTP bridge serves the same Backend to other front ends.
package client

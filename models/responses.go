// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is a plain confirmation body, e.g. after registration.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// Token is the signed session token to be sent back in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse carries the application version.
type VersionResponse struct {
	Version string `json:"version"`
}

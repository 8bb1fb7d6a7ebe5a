// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credentials turns a DataForSEO login/password pair into an HTTP
// basic-auth token. It performs no validation; callers check both values
// are non-empty before encoding.
package credentials

import "encoding/base64"

// Encode returns base64(login:password) using standard padding.
func Encode(login, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(login + ":" + password))
}

// Header returns the Authorization header value for token.
func Header(token string) string {
	return "Basic " + token
}

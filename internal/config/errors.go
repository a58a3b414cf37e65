// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	errNoHTTPAddress  = errors.New("no HTTP server address provided")
	errNoTokenSignKey = errors.New("no token sign key provided")
	errNoTokenIssuer  = errors.New("no token issuer provided")
	errNoDatabaseURI  = errors.New("no database URI provided")
	errNoS3Region     = errors.New("no object storage region provided")
	errNoS3Buckets    = errors.New("both permanent and temporary storage buckets must be provided")
)

package config

import "errors"

// validate checks that every setting the server cannot run without is
// present after all sources have been merged.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.Server.HTTPAddress == "" {
		errs = append(errs, errNoHTTPAddress)
	}
	if c.App.TokenSignKey == "" {
		errs = append(errs, errNoTokenSignKey)
	}
	if c.App.TokenIssuer == "" {
		errs = append(errs, errNoTokenIssuer)
	}
	if c.Storage.DB.URI == "" {
		errs = append(errs, errNoDatabaseURI)
	}
	if c.Storage.S3.Region == "" {
		errs = append(errs, errNoS3Region)
	}
	if c.Storage.S3.Bucket == "" || c.Storage.S3.TempBucket == "" {
		errs = append(errs, errNoS3Buckets)
	}

	return errors.Join(errs...)
}

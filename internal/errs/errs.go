// Package errs defines HTTPError, the single error shape returned to API
// clients, and constructors for the common statuses.
package errs

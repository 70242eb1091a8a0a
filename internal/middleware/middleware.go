// Package middleware holds the global and route-level echo middleware:
// Clerk authentication, request logging, CORS, rate limiting, tracing and
// panic recovery.
package middleware

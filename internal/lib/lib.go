// Package lib groups infrastructure that does not belong to a single layer:
// media storage, the facet cache, background jobs, email and small helpers.
package lib

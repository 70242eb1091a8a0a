// Package handler is the HTTP layer: it binds and validates requests, calls
// the service layer and shapes responses through the serializer package.
package handler

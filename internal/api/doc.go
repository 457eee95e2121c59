// Package api handles the registry's HTTP resources: athletes, categories
// and training centers. Handlers decode and validate requests strictly,
// call the services, and translate their errors into status codes
// (422 validation, 303 duplicate, 404 not found, 400 any other store failure).
package api

// Package api exposes the file lifecycle operations as transport-friendly
// services and DTO types shared by the CLI and any future remote surface.
package api

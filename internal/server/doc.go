// Package server exposes the analyzer over a small JSON HTTP API:
// survey file upload, the dashboard views, and a health check. Rendering
// (HTML, charts) is a consumer concern; only structured data leaves here.
package server

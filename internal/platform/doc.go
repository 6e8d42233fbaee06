package platform

// Package platform contains OS/platform integration glue: filesystem
// helpers, the platform executable suffix, and OS reveal-in-manager.

// Package persistence provides the GORM repository implementations for
// stations, reviews, users and station images, along with connection
// management and a database health probe.
package persistence

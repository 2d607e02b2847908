// Package legacy serves the station records that predate the database.
// The data set is embedded in the binary and can be replaced by a file on disk.
package legacy

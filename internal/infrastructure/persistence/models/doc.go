// Package models contains the GORM database models.
// Models carry the schema (keys, indexes, cascades) and convert to and from domain entities.
package models

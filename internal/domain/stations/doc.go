// Package stations defines the wash station and parking spot entities, their
// query filter and the repository and service contracts around them.
package stations

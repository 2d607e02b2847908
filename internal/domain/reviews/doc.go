// Package reviews holds user reviews of stations and their per-station summary.
package reviews

// Package images describes photos attached to stations and the object storage they live in.
package images

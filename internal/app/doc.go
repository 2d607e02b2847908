// Package app holds the application services behind the REST API and the CLI.
// Services validate input, enforce the moderation rules and coordinate the
// repositories, the legacy store and the image connector.
package app

// Package users models accounts signed in through the OAuth front end.
package users

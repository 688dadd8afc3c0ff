// Package user provides the User aggregate of the user registry: a keyed record
// with an email, a name and a creation time.
package user

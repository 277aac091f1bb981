// Package session models packer presence: the registered workstations and
// the login sessions bound to them. A picker has at most one active session
// at a time; logins at a new station force-close earlier sessions.
package session

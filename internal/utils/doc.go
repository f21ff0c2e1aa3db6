// Package utils provides general-purpose helpers used across the
// application: keyed hashing of secrets and random token generation.
package utils

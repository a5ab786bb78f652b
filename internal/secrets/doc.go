// Package secrets sources secret values for the store.
//
// A value comes from exactly one of two sources: masked interactive entry
// on the controlling terminal (ReadSecretValue) or the platform's
// cryptographically secure random source encoded as unpadded URL-safe
// base64 (GenerateRandomSecret). Values exist only in memory for the
// duration of one invocation.
package secrets

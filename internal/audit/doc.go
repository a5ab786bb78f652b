// Package audit provides audit trail logging for Mānuka operations.
//
// Every successful secret initialization is recorded in a store-level
// audit log. This helps operators understand which keys were initialized,
// when, and from which source.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	.env/.audit.jsonl
//
// Each entry contains:
//   - Unique entry ID
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Operation name
//   - Secret key and sourcing mode (never the secret value)
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk full,
// etc.), the operation continues without error. Operations should never
// fail just because audit logging failed.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit

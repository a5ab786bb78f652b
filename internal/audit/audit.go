package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileName is the audit log file inside the store directory. The leading
// dot keeps it from colliding with any <key>.txt secret file.
const FileName = ".audit.jsonl"

// Entry represents a single audit log entry. Entries record operation
// metadata only; the secret value is never written to the log.
type Entry struct {
	ID        string `json:"id"`               // Unique entry identifier.
	Timestamp string `json:"ts"`               // RFC3339 with microseconds, UTC.
	Operation string `json:"op"`               // Operation name.
	Key       string `json:"key,omitempty"`    // Secret key the operation targeted.
	Source    string `json:"source,omitempty"` // "value" or "generate".
	Length    int    `json:"length,omitempty"` // Bytes of entropy, generate only.
}

// Log appends an entry to the store's audit log.
// If logging fails, the operation continues without error: an invocation
// should never fail just because audit logging failed.
func Log(storePath string, entry Entry) {
	if storePath == "" {
		return
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath(storePath)

	// Open file for appending (create if doesn't exist).
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	// Write entry with newline.
	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file inside the store.
func LogPath(storePath string) string {
	return filepath.Join(storePath, FileName)
}

// ReadEntries reads all entries from the store's audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(storePath string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(storePath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			// Skip malformed lines; a partial write must not poison the log.
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return entries, err
	}

	return entries, nil
}

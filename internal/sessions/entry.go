package sessions

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

// logEntry is one line of a session JSONL file. Only the fields the
// summarizer needs are declared; unknown fields are ignored so newer log
// versions keep parsing.
type logEntry struct {
	Type        string          `json:"type"`
	UUID        string          `json:"uuid"`
	ParentUUID  string          `json:"parentUuid"`
	SessionID   string          `json:"sessionId"`
	Timestamp   string          `json:"timestamp"`
	Cwd         string          `json:"cwd"`
	Slug        string          `json:"slug"`
	GitBranch   string          `json:"gitBranch"`
	IsSidechain bool            `json:"isSidechain"`
	AgentID     string          `json:"agentId"`
	Message     json.RawMessage `json:"message"`
}

// parseLogEntry deserializes a line against the permissive schema. A line
// qualifies only when it carries the type discriminator, a uuid, a
// sessionId and a parseable timestamp; summary records and malformed lines
// fail here and are skipped by the caller.
func parseLogEntry(line []byte) (logEntry, time.Time, bool) {
	var e logEntry
	if err := json.Unmarshal(line, &e); err != nil {
		return logEntry{}, time.Time{}, false
	}
	if e.Type == "" || e.UUID == "" || e.SessionID == "" {
		return logEntry{}, time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return logEntry{}, time.Time{}, false
	}
	return e, ts, true
}

// messageText extracts the role and first textual body from a message
// payload. The payload is either {"role": ..., "content": "..."} or the
// structured form where content is a list of typed blocks, in which case
// the first "text" block wins.
func messageText(raw json.RawMessage) (role, text string) {
	if len(raw) == 0 {
		return "", ""
	}

	msg := gjson.ParseBytes(raw)
	role = msg.Get("role").Str

	content := msg.Get("content")
	if content.Type == gjson.String {
		return role, content.Str
	}
	if content.IsArray() {
		for _, block := range content.Array() {
			if block.Get("type").Str == "text" {
				return role, block.Get("text").Str
			}
		}
	}
	return role, ""
}

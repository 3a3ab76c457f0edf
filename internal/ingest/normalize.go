package ingest

import (
	"strings"
	"time"

	"github.com/steipete/wasearch/internal/logging"
	"github.com/steipete/wasearch/internal/store"
)

// Result is what a normalization pass produced.
type Result struct {
	Messages []store.Message
	Skipped  int
}

// Normalize flattens the export into store rows. Chats without a contact
// name are dropped whole; non-text messages are excluded silently; a
// text message missing its timestamp or text is skipped with a warning.
func Normalize(doc *Export) Result {
	var res Result
	for _, chat := range doc.Chats {
		contact := strings.TrimSpace(chat.ContactName)
		if contact == "" {
			continue
		}
		isGroup := chat.IsGroup()

		for i, raw := range chat.Messages {
			if raw.Type != "text" {
				continue
			}
			if raw.Text == nil || *raw.Text == "" {
				logging.Logger.Warn().
					Str("contact", contact).
					Int("index", i).
					Msg("skipping text message without a body")
				res.Skipped++
				continue
			}
			ts, err := time.Parse(time.RFC3339, raw.Timestamp)
			if err != nil {
				logging.Logger.Warn().
					Str("contact", contact).
					Int("index", i).
					Str("timestamp", raw.Timestamp).
					Msg("skipping message with missing or invalid timestamp")
				res.Skipped++
				continue
			}

			res.Messages = append(res.Messages, store.Message{
				ContactName: contact,
				Timestamp:   raw.Timestamp,
				TS:          ts.UTC(),
				FromMe:      raw.FromMe,
				SenderName:  SenderName(raw.FromMe, isGroup, contact, raw.RemoteResourceDisplayName),
				Text:        *raw.Text,
			})
		}
	}
	return res
}

// SenderName resolves a display name for one message.
//
// Own messages are "Me". Otherwise the candidate is the per-message display
// name for group chats and the contact name for direct chats; a candidate
// that is still a raw network address collapses to "Them", a multi-word
// candidate to its first word, and a missing candidate to "Unknown Sender".
func SenderName(fromMe, isGroup bool, contactName, displayName string) string {
	if fromMe {
		return "Me"
	}

	candidate := contactName
	if isGroup {
		candidate = displayName
	}
	switch {
	case candidate == "":
		return "Unknown Sender"
	case strings.Contains(candidate, networkSuffix):
		return "Them"
	case strings.Contains(candidate, " "):
		return candidate[:strings.Index(candidate, " ")]
	default:
		return candidate
	}
}

// Package ingest reads an exported chat-log JSON document and normalizes it
// into store rows.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

const (
	groupChatSuffix = "@g.us"
	networkSuffix   = "@s.whatsapp.net"
)

// Export mirrors the shape the exporter emits.
type Export struct {
	Chats []Chat `json:"chats"`
}

type Chat struct {
	ContactName string       `json:"contactName"`
	Key         string       `json:"key"`
	Messages    []RawMessage `json:"messages"`
}

// RawMessage keeps text as a pointer: a text-typed message without a text
// field is malformed, not empty.
type RawMessage struct {
	Type                      string  `json:"type"`
	Timestamp                 string  `json:"timestamp"`
	FromMe                    bool    `json:"fromMe"`
	RemoteResourceDisplayName string  `json:"remoteResourceDisplayName"`
	Text                      *string `json:"text"`
}

func (c Chat) IsGroup() bool {
	return strings.HasSuffix(c.Key, groupChatSuffix)
}

// ReadExport loads and decodes the export document. Both failure modes are
// fatal for the conversion run.
func ReadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file %q not found", path)
		}
		return nil, fmt.Errorf("read input file: %w", err)
	}

	var doc Export
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	return &doc, nil
}

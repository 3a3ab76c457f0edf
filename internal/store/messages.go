package store

import (
	"fmt"
	"time"
)

// InsertMessages writes all rows in one transaction: a conversion run either
// lands completely or not at all.
func (d *DB) InsertMessages(msgs []Message) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`
		INSERT INTO messages(contact_name, timestamp, ts, from_me, sender_name, text)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range msgs {
		if _, err = stmt.Exec(m.ContactName, m.Timestamp, unixMilli(m.TS), boolToInt(m.FromMe), m.SenderName, m.Text); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
	}
	return tx.Commit()
}

// MessagesBetween returns every message with start <= ts < end, contact-major
// and chronological within each contact.
func (d *DB) MessagesBetween(start, end time.Time) ([]Message, error) {
	rows, err := d.sql.Query(`
		SELECT id, contact_name, timestamp, ts, from_me, sender_name, text
		FROM messages
		WHERE ts >= ? AND ts < ?
		ORDER BY contact_name, ts
	`, unixMilli(start), unixMilli(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var ts int64
		var fromMe int
		if err := rows.Scan(&m.ID, &m.ContactName, &m.Timestamp, &ts, &fromMe, &m.SenderName, &m.Text); err != nil {
			return nil, err
		}
		m.TS = fromUnixMilli(ts)
		m.FromMe = fromMe != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

func (d *DB) CountMessages() (int64, error) {
	row := d.sql.QueryRow(`SELECT COUNT(1) FROM messages`)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Stats summarizes a store for the info command.
type Stats struct {
	Messages int64     `json:"messages"`
	Contacts int64     `json:"contacts"`
	FirstTS  time.Time `json:"first_timestamp,omitzero"`
	LastTS   time.Time `json:"last_timestamp,omitzero"`
}

func (d *DB) GetStats() (Stats, error) {
	var s Stats
	var err error
	if s.Messages, err = d.CountMessages(); err != nil {
		return Stats{}, err
	}
	row := d.sql.QueryRow(`SELECT COUNT(DISTINCT contact_name) FROM messages`)
	if err := row.Scan(&s.Contacts); err != nil {
		return Stats{}, err
	}
	if s.Messages == 0 {
		return s, nil
	}

	var first, last int64
	row = d.sql.QueryRow(`SELECT MIN(ts), MAX(ts) FROM messages`)
	if err := row.Scan(&first, &last); err != nil {
		return Stats{}, err
	}
	s.FirstTS = fromUnixMilli(first)
	s.LastTS = fromUnixMilli(last)
	return s, nil
}

// ListContacts returns each contact with its message count, busiest first.
type ContactCount struct {
	ContactName string `json:"contact_name"`
	Messages    int64  `json:"messages"`
}

func (d *DB) ListContacts() ([]ContactCount, error) {
	rows, err := d.sql.Query(`
		SELECT contact_name, COUNT(1) AS n
		FROM messages
		GROUP BY contact_name
		ORDER BY n DESC, contact_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ContactCount
	for rows.Next() {
		var c ContactCount
		if err := rows.Scan(&c.ContactName, &c.Messages); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

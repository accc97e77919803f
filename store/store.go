// Package store is the bot's persistence boundary: whole-value reads and
// overwrites of gob-encoded snapshots under string keys. The ledger and the
// start marker are the only tenants.
package store

import (
	"bytes"
	"encoding/gob"
)

type Store interface {
	// Get decodes the value stored under key into v. The second return is
	// false when the key has never been written.
	Get(key string, v interface{}) (bool, error)
	// Set overwrites the value stored under key.
	Set(key string, v interface{}) error
}

func encode(v interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)

	if err := gob.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decode(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

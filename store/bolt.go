package store

import (
	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
)

const bucketName = "anytoany"

// Bolt persists values in a single-bucket boltdb file.
type Bolt struct {
	db *bolt.DB
}

func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "opening store %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating bucket")
	}

	return &Bolt{db}, nil
}

func (s *Bolt) Get(key string, v interface{}) (bool, error) {
	var data []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		if encoded := tx.Bucket([]byte(bucketName)).Get([]byte(key)); encoded != nil {
			data = append(data, encoded...) // value is only valid inside the transaction
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil
	}

	return true, decode(data, v)
}

func (s *Bolt) Set(key string, v interface{}) error {
	data, err := encode(v)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

func (s *Bolt) Close() error {
	return s.db.Close()
}

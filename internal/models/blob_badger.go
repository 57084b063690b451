package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerRepo is the embedded on-disk store, the closest thing to browser local storage.
type BadgerRepo struct {
	db        *badger.DB
	namespace string
}

func BadgerNewRepo(db *badger.DB, namespace string) *BadgerRepo {
	return &BadgerRepo{db: db, namespace: namespace}
}

func (b *BadgerRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(namespaced(b.namespace, key)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrBlobNotFound
		}
		if err != nil {
			return fmt.Errorf("get blob %s: %w", key, err)
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *BadgerRepo) Put(ctx context.Context, key string, data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(namespaced(b.namespace, key)), data); err != nil {
			return fmt.Errorf("set blob %s: %w", key, err)
		}
		return nil
	})
}

func (b *BadgerRepo) Delete(ctx context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(namespaced(b.namespace, key)))
	})
}

func (b *BadgerRepo) Ping(ctx context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger database is closed")
	}
	return nil
}

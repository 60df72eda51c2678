package orm

import (
	"reflect"

	"github.com/iov-one/batchpay"
	"github.com/iov-one/batchpay/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	batchpay.Persistent
	Validate() error
}

// ModelBucket stores models of a single type under a prefix. Lookup is done
// by the primary key only.
type ModelBucket struct {
	b     Bucket
	model reflect.Type
}

// NewModelBucket returns a ModelBucket storing entities of the same type as
// the given model.
func NewModelBucket(name string, m Model) ModelBucket {
	return ModelBucket{
		b:     NewBucket(name),
		model: reflect.TypeOf(m),
	}
}

// Bucket returns the underlying prefixed bucket.
func (mb ModelBucket) Bucket() Bucket {
	return mb.b
}

// Register registers this bucket for queries under the given name.
func (mb ModelBucket) Register(name string, r batchpay.QueryRouter) {
	mb.b.Register(name, r)
}

// One query the database for a single model instance. Result is loaded
// into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database.
// If given model type cannot be used to contain stored entity, ErrType
// is returned.
func (mb ModelBucket) One(db batchpay.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := mb.checkType(dest); err != nil {
		return err
	}
	raw, err := db.Get(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}

// Has returns nil if an entity with given primary key exists in the
// database, ErrNotFound otherwise.
func (mb ModelBucket) Has(db batchpay.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read from the database")
	}
	if !ok {
		return errors.Wrap(errors.ErrNotFound, "no entity with given key")
	}
	return nil
}

// Insert saves given model in the database. It fails with ErrDuplicate if
// an entity with given primary key already exists.
func (mb ModelBucket) Insert(db batchpay.KVStore, key []byte, m Model) error {
	switch err := mb.Has(db, key); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "%T already exists", m)
	case !errors.ErrNotFound.Is(err):
		return err
	}
	return mb.Put(db, key, m)
}

// Put saves given model in the database, overwriting any previous value.
func (mb ModelBucket) Put(db batchpay.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := mb.checkType(m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	if err := db.Set(mb.b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Delete removes an entity with given primary key from the database.
// It returns ErrNotFound if an entity with given key does not exist.
func (mb ModelBucket) Delete(db batchpay.KVStore, key []byte) error {
	if err := mb.Has(db, key); err != nil {
		return err
	}
	return db.Delete(mb.b.DBKey(key))
}

func (mb ModelBucket) checkType(m Model) error {
	if t := reflect.TypeOf(m); t != mb.model {
		return errors.Wrapf(errors.ErrType, "%s cannot be represented as %s", t, mb.model)
	}
	return nil
}

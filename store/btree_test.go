package store

import (
	"testing"

	"github.com/iov-one/batchpay/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func collect(t *testing.T, it Iterator) []Model {
	t.Helper()
	defer it.Release()
	var res []Model
	for {
		k, v, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return res
		}
		if err != nil {
			t.Fatalf("iterator: %+v", err)
		}
		res = append(res, Model{Key: k, Value: v})
	}
}

func TestBTreeCacheWrap(t *testing.T) {
	Convey("Given a memory store with some data", t, func() {
		db := MemStore()
		So(db.Set([]byte("alice"), []byte("1")), ShouldBeNil)
		So(db.Set([]byte("bob"), []byte("2")), ShouldBeNil)

		Convey("Values can be read back", func() {
			v, err := db.Get([]byte("alice"))
			So(err, ShouldBeNil)
			So(string(v), ShouldEqual, "1")

			has, err := db.Has([]byte("carol"))
			So(err, ShouldBeNil)
			So(has, ShouldBeFalse)
		})

		Convey("A discarded cache wrap leaves the parent untouched", func() {
			cache := db.CacheWrap()
			So(cache.Set([]byte("alice"), []byte("100")), ShouldBeNil)
			So(cache.Delete([]byte("bob")), ShouldBeNil)

			v, err := cache.Get([]byte("alice"))
			So(err, ShouldBeNil)
			So(string(v), ShouldEqual, "100")
			has, err := cache.Has([]byte("bob"))
			So(err, ShouldBeNil)
			So(has, ShouldBeFalse)

			cache.Discard()

			v, err = db.Get([]byte("alice"))
			So(err, ShouldBeNil)
			So(string(v), ShouldEqual, "1")
			has, err = db.Has([]byte("bob"))
			So(err, ShouldBeNil)
			So(has, ShouldBeTrue)
		})

		Convey("A written cache wrap applies all operations", func() {
			cache := db.CacheWrap()
			So(cache.Set([]byte("carol"), []byte("3")), ShouldBeNil)
			So(cache.Delete([]byte("alice")), ShouldBeNil)
			So(cache.Write(), ShouldBeNil)

			v, err := db.Get([]byte("carol"))
			So(err, ShouldBeNil)
			So(string(v), ShouldEqual, "3")
			has, err := db.Has([]byte("alice"))
			So(err, ShouldBeNil)
			So(has, ShouldBeFalse)
		})

		Convey("Iteration merges the cache with the parent", func() {
			cache := db.CacheWrap()
			So(cache.Set([]byte("aaron"), []byte("0")), ShouldBeNil)
			So(cache.Set([]byte("bob"), []byte("22")), ShouldBeNil)
			So(cache.Delete([]byte("alice")), ShouldBeNil)

			it, err := cache.Iterator(nil, nil)
			So(err, ShouldBeNil)
			So(collect(t, it), ShouldResemble, []Model{
				{Key: []byte("aaron"), Value: []byte("0")},
				{Key: []byte("bob"), Value: []byte("22")},
			})

			it, err = cache.ReverseIterator(nil, nil)
			So(err, ShouldBeNil)
			So(collect(t, it), ShouldResemble, []Model{
				{Key: []byte("bob"), Value: []byte("22")},
				{Key: []byte("aaron"), Value: []byte("0")},
			})

			it, err = cache.Iterator([]byte("b"), nil)
			So(err, ShouldBeNil)
			So(collect(t, it), ShouldResemble, []Model{
				{Key: []byte("bob"), Value: []byte("22")},
			})
		})

		Convey("Nested savepoints roll back independently", func() {
			outer := db.CacheWrap()
			So(outer.Set([]byte("carol"), []byte("3")), ShouldBeNil)

			inner := outer.CacheWrap()
			So(inner.(*BTreeCacheWrap).Depth(), ShouldEqual, outer.(*BTreeCacheWrap).Depth()+1)
			So(inner.Set([]byte("dave"), []byte("4")), ShouldBeNil)
			inner.Discard()

			kept := outer.CacheWrap()
			So(kept.Set([]byte("erin"), []byte("5")), ShouldBeNil)
			So(kept.Write(), ShouldBeNil)
			So(outer.Write(), ShouldBeNil)

			for key, want := range map[string]bool{"carol": true, "dave": false, "erin": true} {
				has, err := db.Has([]byte(key))
				So(err, ShouldBeNil)
				So(has, ShouldEqual, want)
			}
		})

		Convey("A released savepoint rejects further use", func() {
			cache := db.CacheWrap()
			So(cache.Set([]byte("carol"), []byte("3")), ShouldBeNil)
			So(cache.Write(), ShouldBeNil)

			So(errors.ErrState.Is(cache.Write()), ShouldBeTrue)
			So(errors.ErrState.Is(cache.Set([]byte("dave"), []byte("4"))), ShouldBeTrue)
			So(errors.ErrState.Is(cache.Delete([]byte("carol"))), ShouldBeTrue)
			cache.Discard()

			v, err := db.Get([]byte("carol"))
			So(err, ShouldBeNil)
			So(string(v), ShouldEqual, "3")
		})
	})
}

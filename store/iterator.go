package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/batchpay/errors"
)

// ascendBtree returns all btree items within [start, end) in ascending
// order. A nil bound is open.
func ascendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var res []btree.Item
	collect := func(i btree.Item) bool {
		res = append(res, i)
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(collect)
	case start == nil:
		bt.AscendLessThan(bkey{end}, collect)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, collect)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, collect)
	}
	return res
}

// descendBtree returns all btree items within [start, end) in descending
// order. A nil bound is open.
func descendBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	items := ascendBtree(bt, start, end)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// cacheIterator merges the cached btree items with the backing store
// iterator. Cached items take precedence over the parent values for the same
// key and deleted items hide the parent value.
type cacheIterator struct {
	items   []btree.Item
	idx     int
	parent  Iterator
	reverse bool

	// peeked parent element, if any
	pkey, pvalue []byte
	pdone        bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []btree.Item, parent Iterator, reverse bool) *cacheIterator {
	return &cacheIterator{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
}

func (c *cacheIterator) peekParent() error {
	if c.pdone || c.pkey != nil {
		return nil
	}
	k, v, err := c.parent.Next()
	switch {
	case err == nil:
		c.pkey, c.pvalue = k, v
		return nil
	case errors.ErrIteratorDone.Is(err):
		c.pdone = true
		return nil
	default:
		return err
	}
}

// first returns true if a should be returned before b.
func (c *cacheIterator) first(a, b []byte) bool {
	if c.reverse {
		return bytes.Compare(a, b) > 0
	}
	return bytes.Compare(a, b) < 0
}

func (c *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.peekParent(); err != nil {
			return nil, nil, err
		}

		if c.idx < len(c.items) {
			item := c.items[c.idx]
			ikey := item.(keyer).Key()
			if c.pdone || !c.first(c.pkey, ikey) {
				c.idx++
				// cached value shadows the parent one
				if !c.pdone && bytes.Equal(c.pkey, ikey) {
					c.pkey, c.pvalue = nil, nil
				}
				switch t := item.(type) {
				case setItem:
					return t.key, t.value, nil
				case deletedItem:
					continue
				default:
					return nil, nil, errors.Wrapf(errors.ErrDatabase, "Unknown item in btree: %#v", item)
				}
			}
		}

		if c.pdone {
			return nil, nil, errors.ErrIteratorDone
		}
		key, value = c.pkey, c.pvalue
		c.pkey, c.pvalue = nil, nil
		return key, value, nil
	}
}

func (c *cacheIterator) Release() {
	c.parent.Release()
	c.items = nil
}

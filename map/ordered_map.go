package gomap

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const defaultDegree = 32

type entry[K constraints.Ordered, V any] struct {
	key   K
	value V
}

// OrderedMap 基于B树的有序map，按照key升序遍历
type OrderedMap[K constraints.Ordered, V any] struct {
	degree int
	tree   *btree.BTreeG[entry[K, V]]
}

// NewOrderedMap degree为B树的度，小于2时使用默认值
func NewOrderedMap[K constraints.Ordered, V any](degree int) *OrderedMap[K, V] {
	if degree < 2 {
		degree = defaultDegree
	}
	return &OrderedMap[K, V]{degree: degree}
}

func lessEntry[K constraints.Ordered, V any](a, b entry[K, V]) bool {
	return a.key < b.key
}

func (m *OrderedMap[K, V]) init() {
	if m.tree == nil {
		m.tree = btree.NewG[entry[K, V]](m.degree, lessEntry[K, V])
	}
}

func (m *OrderedMap[K, V]) Insert(key K, value V) {
	m.init()
	m.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
}

func (m *OrderedMap[K, V]) Get(key K) (value V, exist bool) {
	if m.tree == nil {
		return
	}
	var e entry[K, V]
	if e, exist = m.tree.Get(entry[K, V]{key: key}); exist {
		value = e.value
	}
	return
}

func (m *OrderedMap[K, V]) Len() int {
	if m.tree == nil {
		return 0
	}
	return m.tree.Len()
}

func (m *OrderedMap[K, V]) Range(f RangeFunc[K, V]) {
	if m.tree == nil {
		return
	}
	m.tree.Ascend(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}

func (m *OrderedMap[K, V]) Clear() {
	if m.tree != nil {
		m.tree.Clear(false)
	}
}

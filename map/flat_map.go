package gomap

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// FlatMap 基于有序切片的map，key升序连续存放，查找使用二分
// 插入已存在的key时覆盖value，插入新key时需要移动其后的所有元素
type FlatMap[K constraints.Ordered, V any] struct {
	items []entry[K, V]
}

func NewFlatMap[K constraints.Ordered, V any]() *FlatMap[K, V] {
	return &FlatMap[K, V]{}
}

func compareEntry[K constraints.Ordered, V any](e entry[K, V], key K) int {
	switch {
	case e.key < key:
		return -1
	case e.key > key:
		return 1
	default:
		return 0
	}
}

func (m *FlatMap[K, V]) Insert(key K, value V) {
	i, found := slices.BinarySearchFunc(m.items, key, compareEntry[K, V])
	if found {
		m.items[i].value = value
		return
	}
	m.items = slices.Insert(m.items, i, entry[K, V]{key: key, value: value})
}

func (m *FlatMap[K, V]) Get(key K) (value V, exist bool) {
	i, found := slices.BinarySearchFunc(m.items, key, compareEntry[K, V])
	if found {
		value, exist = m.items[i].value, true
	}
	return
}

func (m *FlatMap[K, V]) Len() int {
	return len(m.items)
}

func (m *FlatMap[K, V]) Range(f RangeFunc[K, V]) {
	for _, e := range m.items {
		if !f(e.key, e.value) {
			break
		}
	}
}

// Clear 保留底层数组容量
func (m *FlatMap[K, V]) Clear() {
	var zero entry[K, V]
	for i := range m.items {
		m.items[i] = zero
	}
	m.items = m.items[:0]
}

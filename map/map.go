package gomap

import "golang.org/x/exp/constraints"

// Map 基于内置map的哈希表，遍历顺序不确定
type Map[K constraints.Ordered, V any] struct {
	mp map[K]V
}

func NewMap[K constraints.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

func (m *Map[K, V]) init() {
	if m.mp == nil {
		m.mp = make(map[K]V)
	}
}

func (m *Map[K, V]) Insert(key K, value V) {
	m.init()
	m.mp[key] = value
}

func (m *Map[K, V]) Get(key K) (value V, exist bool) {
	if m.mp != nil {
		value, exist = m.mp[key]
	}
	return
}

func (m *Map[K, V]) Len() int {
	return len(m.mp)
}

func (m *Map[K, V]) Range(f RangeFunc[K, V]) {
	for k, v := range m.mp {
		if !f(k, v) {
			break
		}
	}
}

// Clear 丢弃底层map，下一次插入时重新分配
func (m *Map[K, V]) Clear() {
	m.mp = nil
}

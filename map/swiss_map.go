package gomap

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/constraints"
)

// SwissMap 基于SwissTable的哈希表，遍历顺序不确定
type SwissMap[K constraints.Ordered, V any] struct {
	mp *swiss.Map[K, V]
}

func NewSwissMap[K constraints.Ordered, V any]() *SwissMap[K, V] {
	return &SwissMap[K, V]{}
}

func (m *SwissMap[K, V]) init() {
	if m.mp == nil {
		m.mp = swiss.NewMap[K, V](0)
	}
}

func (m *SwissMap[K, V]) Insert(key K, value V) {
	m.init()
	m.mp.Put(key, value)
}

func (m *SwissMap[K, V]) Get(key K) (value V, exist bool) {
	if m.mp != nil {
		value, exist = m.mp.Get(key)
	}
	return
}

func (m *SwissMap[K, V]) Len() int {
	if m.mp == nil {
		return 0
	}
	return m.mp.Count()
}

func (m *SwissMap[K, V]) Range(f RangeFunc[K, V]) {
	if m.mp == nil {
		return
	}
	m.mp.Iter(func(k K, v V) (stop bool) {
		return !f(k, v)
	})
}

func (m *SwissMap[K, V]) Clear() {
	m.mp = nil
}

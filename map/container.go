package gomap

import "golang.org/x/exp/constraints"

// RangeFunc map迭代器，返回false则终止遍历
type RangeFunc[K comparable, V any] func(key K, value V) bool

// Container 被测试的关联容器需要实现的能力
type Container[K constraints.Ordered, V any] interface {
	// Insert 插入或覆盖key对应的value
	Insert(key K, value V)

	// Get 返回key对应的value，exist表示key是否存在
	Get(key K) (value V, exist bool)

	// Len 返回容器中不同key的数量
	Len() int

	// Range 按照容器自身的顺序遍历所有元素，f返回false时终止遍历
	Range(f RangeFunc[K, V])

	// Clear 清空容器，清空后容器可以继续使用
	Clear()
}

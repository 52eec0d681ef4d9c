package dict

import (
	"math"
	"unicode"
	"unicode/utf16"

	"chaindict/config"
	"chaindict/lib/logger"
)

const hashPrime = 31

var log = logger.WithField("module", "dict")

// ChainedHashMap 使用拉链法解决冲突的 map，非线程安全。
// 插入新 key 前若 size >= capacity*loadFactor，则容量翻倍并重新散列全部元素；
// 容量只增不减，Clear 也不会恢复初始容量。
type ChainedHashMap struct {
	buckets    [][]Entry
	capacity   int
	loadFactor float64
	size       int
}

// NewChainedHashMap 返回容量为 16、负载因子为 0.75 的空 map
func NewChainedHashMap() *ChainedHashMap {
	return NewChainedHashMapWith(config.DefaultInitialCapacity, config.DefaultLoadFactor)
}

func NewChainedHashMapWith(capacity int, loadFactor float64) *ChainedHashMap {
	if capacity <= 0 {
		panic("Non-positive capacity")
	}
	if loadFactor <= 0 || math.IsNaN(loadFactor) || math.IsInf(loadFactor, 0) {
		panic("Invalid load factor")
	}
	return &ChainedHashMap{
		buckets:    makeBuckets(capacity),
		capacity:   capacity,
		loadFactor: loadFactor,
	}
}

// NewChainedHashMapFromProperties 按配置构造，p 为 nil 时使用全局 config.Properties
func NewChainedHashMapFromProperties(p *config.DictProperties) *ChainedHashMap {
	if p == nil {
		p = config.Properties
	}
	return NewChainedHashMapWith(p.InitialCapacity, p.LoadFactor)
}

func (m *ChainedHashMap) Len() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return m.size
}

func (m *ChainedHashMap) Capacity() int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return m.capacity
}

// Hash 返回 key 在当前容量下的桶下标，容量变化后结果随之改变
func (m *ChainedHashMap) Hash(key string) int {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	return hashIndex(key, m.capacity)
}

// Set 写入键值对并返回 m 以便链式调用。已存在的 key 原地覆盖，size 不变。
func (m *ChainedHashMap) Set(key string, value any) HashMap {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	index := m.Hash(key)
	chain := m.buckets[index]
	for i := range chain {
		if chain[i].Key == key {
			chain[i].Value = value
			return m
		}
	}
	if m.overloaded() {
		// 默认参数下一次翻倍即可，自定义的小负载因子可能需要多次
		for m.overloaded() {
			m.grow()
		}
		index = m.Hash(key)
	}
	m.buckets[index] = append(m.buckets[index], Entry{Key: key, Value: value})
	m.size++
	return m
}

// Get 返回 key 对应的值，不存在时返回 nil。
// 存入 nil 的 key 与不存在的 key 无法区分。
func (m *ChainedHashMap) Get(key string) any {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	for _, entry := range m.buckets[m.Hash(key)] {
		if entry.Key == key {
			return entry.Value
		}
	}
	return nil
}

// Has 等价于 Get(key) != nil，因此值为 nil 的 key 被视为不存在
func (m *ChainedHashMap) Has(key string) bool {
	return m.Get(key) != nil
}

func (m *ChainedHashMap) Remove(key string) bool {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	index := m.Hash(key)
	chain := m.buckets[index]
	for i := range chain {
		if chain[i].Key != key {
			continue
		}
		last := len(chain) - 1
		copy(chain[i:], chain[i+1:])
		chain[last] = Entry{}
		m.buckets[index] = chain[:last]
		m.size--
		return true
	}
	return false
}

func (m *ChainedHashMap) Clear() HashMap {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	m.buckets = makeBuckets(m.capacity)
	m.size = 0
	return m
}

// ForEach 按桶下标、桶内插入顺序遍历
func (m *ChainedHashMap) ForEach(p Processor) {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	for _, chain := range m.buckets {
		for _, entry := range chain {
			if !p(entry.Key, entry.Value) {
				return
			}
		}
	}
}

func (m *ChainedHashMap) Keys() []string {
	keys := make([]string, 0, m.Len())
	m.ForEach(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *ChainedHashMap) Values() []any {
	values := make([]any, 0, m.Len())
	m.ForEach(func(_ string, value any) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (m *ChainedHashMap) Entries() []Entry {
	entries := make([]Entry, 0, m.Len())
	m.ForEach(func(key string, value any) bool {
		entries = append(entries, Entry{Key: key, Value: value})
		return true
	})
	return entries
}

// Buckets 返回当前桶布局的副本，修改返回值不会影响 m
func (m *ChainedHashMap) Buckets() [][]Entry {
	if m == nil {
		panic("Nil ChainedHashMap")
	}
	res := make([][]Entry, len(m.buckets))
	for i, chain := range m.buckets {
		res[i] = append([]Entry(nil), chain...)
	}
	return res
}

func (m *ChainedHashMap) overloaded() bool {
	return float64(m.size) >= float64(m.capacity)*m.loadFactor
}

// grow 容量翻倍，清零 size 后把旧桶中的元素逐个放入新桶
func (m *ChainedHashMap) grow() {
	old := m.buckets
	oldCapacity := m.capacity
	m.capacity *= 2
	m.buckets = makeBuckets(m.capacity)
	m.size = 0
	for _, chain := range old {
		for _, entry := range chain {
			m.place(entry)
		}
	}
	log.Debugf("grow capacity %d -> %d, rehashed %d entries", oldCapacity, m.capacity, m.size)
}

// place 直接追加到目标桶，旧桶中的 key 互不相同，无需查重
func (m *ChainedHashMap) place(entry Entry) {
	index := m.Hash(entry.Key)
	m.buckets[index] = append(m.buckets[index], entry)
	m.size++
}

func makeBuckets(capacity int) [][]Entry {
	return make([][]Entry, capacity)
}

// hashIndex 对 key 的 UTF-16 码元做系数为 31 的多项式滚动哈希，每一步都对 capacity 取模
func hashIndex(key string, capacity int) int {
	code := 0
	for _, r := range key {
		if r1, r2 := utf16.EncodeRune(r); r1 != unicode.ReplacementChar {
			code = (hashPrime*code + int(r1)) % capacity
			code = (hashPrime*code + int(r2)) % capacity
			continue
		}
		code = (hashPrime*code + int(r)) % capacity
	}
	return code
}

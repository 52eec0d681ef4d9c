package set

import "chaindict/datastruct/dict"

// Consumer 遍历集合成员时调用，返回 false 时停止遍历
type Consumer func(string) bool

// member 是每个成员在底层 map 中的占位值，不会暴露给调用方
const member = true

// HashSet 基于 dict.HashMap 实现的字符串集合，非线程安全
type HashSet struct {
	m dict.HashMap
}

func NewHashSet(members ...string) *HashSet {
	return NewHashSetWith(dict.NewChainedHashMap(), members...)
}

// NewHashSetWith 使用给定的 map 作为底层存储，m 中已有的 key 也会被视为成员
func NewHashSetWith(m dict.HashMap, members ...string) *HashSet {
	if m == nil {
		panic("Nil HashMap")
	}
	res := &HashSet{m: m}
	for _, str := range members {
		res.Add(str)
	}
	return res
}

func (s *HashSet) Add(key string) *HashSet {
	s.m.Set(key, member)
	return s
}

func (s *HashSet) Has(key string) bool {
	return s.m.Has(key)
}

func (s *HashSet) Remove(key string) bool {
	return s.m.Remove(key)
}

func (s *HashSet) Len() int {
	return s.m.Len()
}

func (s *HashSet) Clear() *HashSet {
	s.m.Clear()
	return s
}

func (s *HashSet) Keys() []string {
	return s.m.Keys()
}

// Values 与 Keys 相同，集合没有独立的值
func (s *HashSet) Values() []string {
	return s.m.Keys()
}

// Entries 返回单元素元组而不是键值对
func (s *HashSet) Entries() [][1]string {
	keys := s.m.Keys()
	res := make([][1]string, len(keys))
	for i, key := range keys {
		res[i] = [1]string{key}
	}
	return res
}

func (s *HashSet) ForEach(c Consumer) {
	s.m.ForEach(func(key string, _ any) bool {
		return c(key)
	})
}

func (s *HashSet) Intersect(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	s.ForEach(func(key string) bool {
		if s1.Has(key) {
			res.Add(key)
		}
		return true
	})
	return res
}

func (s *HashSet) Union(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	addFunc := func(key string) bool {
		res.Add(key)
		return true
	}
	s.ForEach(addFunc)
	s1.ForEach(addFunc)
	return res
}

func (s *HashSet) Diff(s1 *HashSet) *HashSet {
	if s == nil {
		panic("HashSet is nil")
	}
	res := NewHashSet()
	s.ForEach(func(key string) bool {
		if !s1.Has(key) {
			res.Add(key)
		}
		return true
	})
	return res
}

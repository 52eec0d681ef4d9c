package dict

import "slices"

// SimpleHashMap 基于内置 map 实现 HashMap，枚举时按 key 升序
type SimpleHashMap struct {
	data map[string]any
}

var (
	_ HashMap = (*SimpleHashMap)(nil)
	_ HashMap = (*ChainedHashMap)(nil)
)

func NewSimpleHashMap() *SimpleHashMap {
	return &SimpleHashMap{data: make(map[string]any)}
}

func (m *SimpleHashMap) Len() int {
	if m.data == nil {
		panic("Nil map")
	}
	return len(m.data)
}

func (m *SimpleHashMap) Set(key string, value any) HashMap {
	if m.data == nil {
		panic("Nil map")
	}
	m.data[key] = value
	return m
}

func (m *SimpleHashMap) Get(key string) any {
	if m.data == nil {
		panic("Nil map")
	}
	return m.data[key]
}

func (m *SimpleHashMap) Has(key string) bool {
	return m.Get(key) != nil
}

func (m *SimpleHashMap) Remove(key string) bool {
	if m.data == nil {
		panic("Nil map")
	}
	_, exists := m.data[key]
	if exists {
		delete(m.data, key)
	}
	return exists
}

func (m *SimpleHashMap) Clear() HashMap {
	*m = *NewSimpleHashMap()
	return m
}

func (m *SimpleHashMap) ForEach(p Processor) {
	for _, key := range m.Keys() {
		if !p(key, m.data[key]) {
			break
		}
	}
}

func (m *SimpleHashMap) Keys() []string {
	if m.data == nil {
		panic("Nil map")
	}
	res := make([]string, 0, len(m.data))
	for key := range m.data {
		res = append(res, key)
	}
	slices.Sort(res)
	return res
}

func (m *SimpleHashMap) Values() []any {
	res := make([]any, 0, m.Len())
	m.ForEach(func(_ string, value any) bool {
		res = append(res, value)
		return true
	})
	return res
}

func (m *SimpleHashMap) Entries() []Entry {
	res := make([]Entry, 0, m.Len())
	m.ForEach(func(key string, value any) bool {
		res = append(res, Entry{Key: key, Value: value})
		return true
	})
	return res
}

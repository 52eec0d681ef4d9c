package dict

// Processor 遍历时对每个键值对调用，返回 false 时停止遍历
type Processor func(key string, value any) bool

// Entry 是枚举时返回的键值对副本
type Entry struct {
	Key   string
	Value any
}

// HashMap is a string-keyed map that is not safe for concurrent use.
//
// Get reports a missing key as nil, so a key stored with a nil value is
// indistinguishable from an absent one and Has reports it as absent.
type HashMap interface {
	Len() int
	Set(key string, value any) HashMap
	Get(key string) any
	Has(key string) bool
	Remove(key string) bool
	Clear() HashMap
	Keys() []string
	Values() []any
	Entries() []Entry
	ForEach(p Processor)
}

package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes one exported struct field.
type FieldInfo struct {
	Name     string
	Index    int
	IsStruct bool
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func (fc *fieldCache) get(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:     f.Name,
				Index:    i,
				IsStruct: f.Type.Kind() == reflect.Struct,
			})
		}
	}
	fc.fields[t] = fields
	return fields
}

var fields = &fieldCache{fields: make(map[reflect.Type][]FieldInfo)}

// Fields returns the exported fields of struct type t, cached.
func Fields(t reflect.Type) []FieldInfo {
	return fields.get(t)
}

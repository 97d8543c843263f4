package debugui

import (
	"reflect"
	"sync"
)

type fieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// fieldCache memoizes exported struct fields per component type, so the
// inspector does not re-walk reflect metadata every frame.
type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

var componentFields = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}

func (c *fieldCache) get(t reflect.Type) []fieldInfo {
	c.mu.RLock()
	cached, ok := c.fields[t]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.fields[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, fieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	c.fields[t] = fields
	return fields
}

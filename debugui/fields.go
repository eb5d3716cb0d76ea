package debugui

import (
	"reflect"
	"sync"
)

// Field is an exported struct field the inspector can show. Kind describes
// the pointed-to type when Pointer is set.
type Field struct {
	Name     string
	Index    int
	Kind     reflect.Kind
	Pointer  bool
	Embedded bool
}

// FieldCache memoizes the exported fields of struct types. Safe for
// concurrent use.
type FieldCache struct {
	cache sync.Map // reflect.Type -> []Field
}

func NewFieldCache() *FieldCache {
	return &FieldCache{}
}

// Fields returns the exported fields of t in declaration order; a pointer type
// is described by its element. Embedded structs are listed even when they
// export nothing themselves.
func (c *FieldCache) Fields(t reflect.Type) []Field {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if fields, ok := c.cache.Load(t); ok {
		return fields.([]Field)
	}
	fields, _ := c.cache.LoadOrStore(t, exportedFields(t))
	return fields.([]Field)
}

func exportedFields(t reflect.Type) []Field {
	if t.Kind() != reflect.Struct {
		return nil
	}

	var fields []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		ft := sf.Type
		f := Field{Name: sf.Name, Index: i, Embedded: sf.Anonymous}
		if ft.Kind() == reflect.Pointer {
			f.Pointer = true
			ft = ft.Elem()
		}
		f.Kind = ft.Kind()
		fields = append(fields, f)
	}
	return fields
}

var inspectorFields = NewFieldCache()

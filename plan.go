package palette

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
	"gopkg.in/yaml.v3"
)

// nodeTag names the struct tag that maps a field to a mapping key.
const nodeTag = "node"

func init() {
	sentinel.Tag(nodeTag)
}

// fieldPlan describes how to move one struct field in and out of a mapping.
type fieldPlan struct {
	index []int        // reflect.Value.FieldByIndex access path
	name  string       // Go field name for error messages
	key   string       // mapping key
	typ   reflect.Type // field type
}

// typePlan is the ordered field plan for one mapping-shaped type.
type typePlan struct {
	typeName string
	fields   []fieldPlan
}

// StructCodec maps a flat struct of primitive fields to a mapping node,
// one key per field carrying a node tag. The plan is built on first use.
type StructCodec[T any] struct {
	once sync.Once
	plan *typePlan
	err  error
}

// NewStructCodec returns a codec for T driven by its node tags.
func NewStructCodec[T any]() *StructCodec[T] {
	return &StructCodec[T]{}
}

func (c *StructCodec[T]) ensurePlan() (*typePlan, error) {
	c.once.Do(func() {
		c.plan, c.err = buildTypePlan[T]()
	})
	return c.plan, c.err
}

// buildTypePlan scans T's fields and keeps those carrying a node tag.
func buildTypePlan[T any]() (*typePlan, error) {
	typ := reflect.TypeFor[T]()
	meta := sentinel.Scan[T]()
	plan := &typePlan{typeName: typ.String()}

	for _, field := range meta.Fields {
		key, ok := field.Tags[nodeTag]
		if !ok || key == "" || key == "-" {
			continue
		}
		if !typ.FieldByIndex(field.Index).IsExported() {
			return nil, fmt.Errorf("field %s.%s: node tag on unexported field", plan.typeName, field.Name)
		}
		if field.Kind != sentinel.KindScalar || !isPrimitive(field.ReflectType.Kind()) {
			return nil, fmt.Errorf("field %s.%s: unsupported kind %s", plan.typeName, field.Name, field.ReflectType.Kind())
		}
		plan.fields = append(plan.fields, fieldPlan{
			index: append([]int{}, field.Index...),
			name:  field.Name,
			key:   key,
			typ:   field.ReflectType,
		})
	}

	return plan, nil
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Encode writes one scalar child per planned field, in declaration order.
func (c *StructCodec[T]) Encode(v T) (*yaml.Node, error) {
	plan, err := c.ensurePlan()
	if err != nil {
		return nil, err
	}

	rv := reflect.ValueOf(v)
	n := NewMap()
	for _, f := range plan.fields {
		child, err := NewScalar(rv.FieldByIndex(f.index).Interface())
		if err != nil {
			return nil, fmt.Errorf("encode %s field %s: %w", plan.typeName, f.name, err)
		}
		SetField(n, f.key, child)
	}
	return n, nil
}

// Decode requires every planned key before extracting any field.
func (c *StructCodec[T]) Decode(n *yaml.Node) (T, error) {
	var zero T
	plan, err := c.ensurePlan()
	if err != nil {
		return zero, err
	}

	n = resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return zero, newDecodeError(ErrShapeMismatch, plan.typeName, "", nil)
	}

	children := make([]*yaml.Node, len(plan.fields))
	for i, f := range plan.fields {
		child, ok := Field(n, f.key)
		if !ok {
			return zero, newDecodeError(ErrMissingKey, plan.typeName, f.key, nil)
		}
		children[i] = child
	}

	out := reflect.New(reflect.TypeFor[T]()).Elem()
	for i, f := range plan.fields {
		child := resolve(children[i])
		if child == nil || child.Kind != yaml.ScalarNode || child.ShortTag() == tagNull {
			return zero, newDecodeError(ErrShapeMismatch, plan.typeName, f.key, nil)
		}
		// yaml.v3 truncates float text into integers; require integer text.
		if isInteger(f.typ.Kind()) && child.ShortTag() != tagInt {
			return zero, newDecodeError(ErrShapeMismatch, plan.typeName, f.key, nil)
		}
		ptr := reflect.New(f.typ)
		if err := child.Decode(ptr.Interface()); err != nil {
			return zero, newDecodeError(ErrShapeMismatch, plan.typeName, f.key, err)
		}
		out.FieldByIndex(f.index).Set(ptr.Elem())
	}

	return out.Interface().(T), nil
}

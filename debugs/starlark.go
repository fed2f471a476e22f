package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/calc/calclang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)

	case calclang.Pos:
		return starlark.String(v.String())

	case calclang.Token:
		d := newDict(
			"kind", v.Kind.String(),
			"text", v.Text,
			"pos", v.Pos,
		)
		if value, ok := v.Literal(); ok {
			d.SetKey(starlark.String("value"), starlark.Float(value))
		}
		return d

	case calclang.Node:
		if reflect.ValueOf(v).IsNil() {
			return starlark.None
		}
		return nodeToStarlark(v)

	case calclang.Value:
		return newDict(
			"number", v.Number,
			"pos", v.Pos,
		)

	case *calclang.Error:
		if v == nil {
			return starlark.None
		}
		return newDict(
			"kind", v.Kind.Error(),
			"details", v.Details,
			"pos", v.Pos,
		)

	case error:
		return starlark.String(v.Error())

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return starlark.MakeInt(int(value.Int()))
	case reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return starlark.MakeUint(uint(value.Uint()))
	case reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func nodeToStarlark(node calclang.Node) starlark.Value {
	switch node := node.(type) {
	case *calclang.NumberLiteral:
		return newDict(
			"type", "number",
			"token", node.Token,
		)
	case *calclang.UnaryOp:
		return newDict(
			"type", "unary",
			"operator", node.Operator.Text,
			"operand", node.Operand,
			"pos", node.Pos(),
		)
	case *calclang.BinaryOp:
		return newDict(
			"type", "binary",
			"operator", node.Operator.Text,
			"left", node.Left,
			"right", node.Right,
			"pos", node.Pos(),
		)
	}
	panic(fmt.Errorf("bad node: %T", node))
}

func newDict(kvs ...any) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i+1 < len(kvs); i += 2 {
		d.SetKey(toStarlarkValue(kvs[i]), toStarlarkValue(kvs[i+1]))
	}
	return d
}

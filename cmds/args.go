package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/reusee/calc/vars"
)

var restType = reflect.TypeFor[[]string]()

// getArg converts the leading arguments to a value of type t.
// It returns the number of arguments consumed.
func getArg(t reflect.Type, args []string) (ret reflect.Value, n int, err error) {
	if t == restType {
		rest := make([]string, len(args))
		copy(rest, args)
		return reflect.ValueOf(rest), len(args), nil
	}

	if len(args) == 0 {
		if t.Kind() == reflect.Pointer {
			// optional
			return reflect.New(t.Elem()), 0, nil
		}
		return ret, 0, fmt.Errorf("expecting argument, got nothing")
	}

	if t.Kind() == reflect.Pointer {
		elem, n, err := getArg(t.Elem(), args)
		if err != nil {
			return ret, 0, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, n, nil
	}

	str := args[0]
	ret = reflect.New(t).Elem()

	switch t.Kind() {

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to int: %w", str, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to unsigned int: %w", str, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, 0, fmt.Errorf("convert %s to float: %w", str, err)
		}
		ret.SetFloat(v)

	case reflect.String:
		ret.SetString(str)

	default:
		return ret, 0, fmt.Errorf("unsupported type: %v", t)
	}

	return ret, 1, nil
}

package initchecker

import (
	"fmt"
	"reflect"
	"strings"
)

// CheckInit takes name/value pairs and panics naming every value that is nil,
// including nil pointers, maps and funcs wrapped in an interface.
func CheckInit(pairs ...any) {
	if len(pairs)%2 != 0 {
		panic("CheckInit: odd number of arguments")
	}
	var missing []string
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("CheckInit: argument %d is %T, want a dependency name", i, pairs[i]))
		}
		if isNil(pairs[i+1]) {
			missing = append(missing, name)
		}
	}
	switch len(missing) {
	case 0:
	case 1:
		panic(missing[0] + " dependency not initialized")
	default:
		panic(strings.Join(missing, ", ") + " dependencies not initialized")
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

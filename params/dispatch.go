package params

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
)

var errorType = reflect.TypeFor[error]()

// Call invokes fn with the fields of args as positional arguments and returns
// its results. The signature of fn is checked against the schema first.
func Call(fn any, args Arguments) ([]any, error) {
	v, target, err := funcValue(fn, args)
	if err != nil {
		return nil, err
	}
	in, err := prepare(v, target, args)
	if err != nil {
		return nil, err
	}
	return results(v.Call(in)), nil
}

// CallAs is like Call for targets returning T or (T, error). A non-nil error
// returned by the target is passed through unchanged.
func CallAs[T any](fn any, args Arguments) (T, error) {
	v, target, err := funcValue(fn, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return callAs[T](v, target, args)
}

// CallMethod looks up the method called name on recv and invokes it like
// Call. When name is not found as given its exported form is tried, and
// methods declared on *T are found for a recv of type T.
func CallMethod(recv any, name string, args Arguments) ([]any, error) {
	v, target, err := methodValue(recv, name, args)
	if err != nil {
		return nil, err
	}
	in, err := prepare(v, target, args)
	if err != nil {
		return nil, err
	}
	return results(v.Call(in)), nil
}

// CallMethodAs is the method counterpart of CallAs.
func CallMethodAs[T any](recv any, name string, args Arguments) (T, error) {
	v, target, err := methodValue(recv, name, args)
	if err != nil {
		var zero T
		return zero, err
	}
	return callAs[T](v, target, args)
}

func funcValue(fn any, args Arguments) (reflect.Value, string, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, "", &DispatchError{Schema: schemaName(args), Target: fmt.Sprintf("%T", fn), Position: -1, Kind: ErrNotCallable}
	}
	name := "func"
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		name = f.Name()
	}
	return v, name, nil
}

func methodValue(recv any, name string, args Arguments) (reflect.Value, string, error) {
	v := reflect.ValueOf(recv)
	target := fmt.Sprintf("%T.%s", recv, name)
	if !v.IsValid() {
		return reflect.Value{}, target, &DispatchError{Schema: schemaName(args), Target: target, Position: -1, Kind: ErrNoMethod}
	}
	names := []string{name}
	if exported := ExportName(name); exported != name {
		names = append(names, exported)
	}
	for _, n := range names {
		if m := v.MethodByName(n); m.IsValid() {
			return m, fmt.Sprintf("%T.%s", recv, n), nil
		}
		if v.Kind() != reflect.Pointer {
			p := reflect.New(v.Type())
			p.Elem().Set(v)
			if m := p.MethodByName(n); m.IsValid() {
				return m, fmt.Sprintf("*%T.%s", recv, n), nil
			}
		}
	}
	return reflect.Value{}, target, &DispatchError{Schema: schemaName(args), Target: target, Position: -1, Kind: ErrNoMethod}
}

// prepare converts the fields of args into call arguments, checking arity and
// per-position assignability against v's signature. When args is a struct
// with one field per value, as generated types are, the declared field types
// are checked rather than the types of the values they hold.
func prepare(v reflect.Value, target string, args Arguments) ([]reflect.Value, error) {
	var vals []any
	if args != nil {
		vals = args.Args()
	}
	t := v.Type()
	if t.IsVariadic() || t.NumIn() != len(vals) {
		want := strconv.Itoa(t.NumIn()) + " parameters"
		if t.IsVariadic() {
			want = "variadic parameters"
		}
		return nil, &DispatchError{Schema: schemaName(args), Target: target, Position: -1, Want: want, Got: strconv.Itoa(len(vals)) + " fields", Kind: ErrArity}
	}
	declared := fieldTypes(args, len(vals))
	in := make([]reflect.Value, len(vals))
	for i, a := range vals {
		pt := t.In(i)
		if declared != nil {
			ft := declared[i]
			if !ft.AssignableTo(pt) {
				return nil, argTypeError(args, target, i, pt, ft.String())
			}
			fv := reflect.New(ft).Elem()
			if a != nil {
				av := reflect.ValueOf(a)
				if !av.Type().AssignableTo(ft) {
					return nil, argTypeError(args, target, i, ft, av.Type().String())
				}
				fv.Set(av)
			}
			in[i] = fv
			continue
		}
		if a == nil {
			if !nillable(pt) {
				return nil, argTypeError(args, target, i, pt, "nil")
			}
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, argTypeError(args, target, i, pt, av.Type().String())
		}
		in[i] = av
	}
	return in, nil
}

// fieldTypes returns the declared field types of args, or nil when args is
// not a struct with exactly n fields.
func fieldTypes(args Arguments, n int) []reflect.Type {
	if args == nil {
		return nil
	}
	rt := reflect.TypeOf(args)
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt.Kind() != reflect.Struct || rt.NumField() != n {
		return nil
	}
	out := make([]reflect.Type, n)
	for i := range out {
		out[i] = rt.Field(i).Type
	}
	return out
}

func callAs[T any](v reflect.Value, target string, args Arguments) (T, error) {
	var out T
	want := reflect.TypeFor[T]()
	t := v.Type()
	ok := t.NumOut() >= 1 && t.NumOut() <= 2 && t.Out(0).AssignableTo(want)
	if ok && t.NumOut() == 2 {
		ok = t.Out(1) == errorType
	}
	if !ok {
		return out, &DispatchError{Schema: schemaName(args), Target: target, Position: -1, Want: resultList(t), Got: want.String(), Kind: ErrResultType}
	}
	in, err := prepare(v, target, args)
	if err != nil {
		return out, err
	}
	res := v.Call(in)
	if len(res) == 2 && !res[1].IsNil() {
		return out, res[1].Interface().(error)
	}
	reflect.ValueOf(&out).Elem().Set(res[0])
	return out, nil
}

func argTypeError(args Arguments, target string, i int, want reflect.Type, got string) error {
	field := strconv.Itoa(i)
	if s := schemaOf(args); s != nil && i < s.Len() {
		field = s.Field(i).Name
	}
	return &DispatchError{Schema: schemaName(args), Target: target, Position: i, Field: field, Want: want.String(), Got: got, Kind: ErrArgType}
}

func results(out []reflect.Value) []any {
	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res
}

func resultList(t reflect.Type) string {
	s := "("
	for i := 0; i < t.NumOut(); i++ {
		if i > 0 {
			s += ", "
		}
		s += t.Out(i).String()
	}
	return s + ")"
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}

func schemaOf(args Arguments) *Schema {
	if args == nil {
		return nil
	}
	return args.Schema()
}

func schemaName(args Arguments) string {
	if s := schemaOf(args); s != nil {
		return s.Name()
	}
	return "<unknown>"
}

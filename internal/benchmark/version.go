package benchmark

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// NewVersion creates a version from a ready-made invocation closure.
func NewVersion(name string, runs int, invoke Invocation) *AlgorithmVersion {
	return &AlgorithmVersion{Name: name, Runs: runs, invoke: invoke}
}

// CreateVersion binds target and its fixed argument list into a version
// whose invocation takes no arguments. The target is not called here.
//
// When invoked, a non-nil trailing error result fails the repetition. The
// first remaining result is the value; if it is a receivable channel the
// invocation waits for one value (a received non-nil error fails it), and
// if it implements Pending it is awaited.
//
// A runs value below 1 is accepted and produces an empty sample set.
func CreateVersion(name string, target any, runs int, args ...any) (*AlgorithmVersion, error) {
	fn := reflect.ValueOf(target)
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("version %q: target must be a function, got %T", name, target)
	}
	if fn.IsNil() {
		return nil, fmt.Errorf("version %q: target is a nil function", name)
	}
	in, err := bindArguments(fn.Type(), args)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", name, err)
	}
	return NewVersion(name, runs, func(ctx context.Context) (any, error) {
		return resolve(ctx, fn.Call(in))
	}), nil
}

// MustCreateVersion is like CreateVersion but panics if the binding is invalid.
func MustCreateVersion(name string, target any, runs int, args ...any) *AlgorithmVersion {
	v, err := CreateVersion(name, target, runs, args...)
	if err != nil {
		panic(err)
	}
	return v
}

func bindArguments(ft reflect.Type, args []any) ([]reflect.Value, error) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("expected at least %d arguments, got %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var paramType reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			paramType = ft.In(n - 1).Elem()
		} else {
			paramType = ft.In(i)
		}
		v, err := argumentValue(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argumentValue(arg any, paramType reflect.Type) (reflect.Value, error) {
	if arg == nil {
		if nillable(paramType.Kind()) {
			return reflect.Zero(paramType), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", paramType)
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(paramType) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), paramType)
	}
	return v, nil
}

func resolve(ctx context.Context, out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type().Implements(errorType) {
		if !isNil(out[n-1]) {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return await(ctx, out[0])
}

func await(ctx context.Context, v reflect.Value) (any, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	if v.Kind() == reflect.Chan && v.Type().ChanDir()&reflect.RecvDir != 0 {
		if v.IsNil() {
			return nil, errors.New("pending result is a nil channel")
		}
		chosen, recv, ok := reflect.Select([]reflect.SelectCase{
			{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(ctx.Done())},
			{Dir: reflect.SelectRecv, Chan: v},
		})
		if chosen == 0 {
			return nil, ctx.Err()
		}
		if !ok {
			return nil, nil
		}
		return settle(recv)
	}

	if isNil(v) {
		return nil, nil
	}
	if p, ok := v.Interface().(Pending); ok {
		return p.Await(ctx)
	}
	return v.Interface(), nil
}

func settle(v reflect.Value) (any, error) {
	if isNil(v) {
		return nil, nil
	}
	val := v.Interface()
	if err, ok := val.(error); ok {
		return nil, err
	}
	return val, nil
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	}
	return false
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	return nillable(v.Kind()) && v.IsNil()
}

package benchmark

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type delayed struct {
	d     time.Duration
	value string
	err   error
}

func (p delayed) Await(ctx context.Context) (any, error) {
	select {
	case <-time.After(p.d):
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func TestCreateVersionForwardsBoundArguments(t *testing.T) {
	var gotA int
	var gotB string
	v, err := CreateVersion("bound", func(a int, b string) string {
		gotA, gotB = a, b
		return strings.Repeat(b, a)
	}, 2, 3, "x")
	require.NoError(t, err)
	assert.Equal(t, "bound", v.Name)
	assert.Equal(t, 2, v.Runs)
	assert.Zero(t, gotA, "target must not run at construction")

	value, err := v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "xxx", value)
	assert.Equal(t, 3, gotA)
	assert.Equal(t, "x", gotB)
}

func TestCreateVersionVariadicAndNil(t *testing.T) {
	sum := func(prefix []int, values ...int) int {
		total := len(prefix)
		for _, v := range values {
			total += v
		}
		return total
	}

	v, err := CreateVersion("variadic", sum, 1, nil, 1, 2, 3)
	require.NoError(t, err)
	value, err := v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, value)

	v, err = CreateVersion("no variadic args", sum, 1, []int{9})
	require.NoError(t, err)
	value, err = v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestCreateVersionRejectsBadBindings(t *testing.T) {
	cases := map[string]struct {
		target any
		args   []any
		want   string
	}{
		"not a function": {target: 42, want: "target must be a function"},
		"nil function":   {target: (func())(nil), want: "nil function"},
		"too few":        {target: func(a, b int) {}, args: []any{1}, want: "expected 2 arguments, got 1"},
		"too many":       {target: func(a int) {}, args: []any{1, 2}, want: "expected 1 arguments, got 2"},
		"wrong type":     {target: func(a int) {}, args: []any{"one"}, want: "string is not assignable to int"},
		"nil to int":     {target: func(a int) {}, args: []any{nil}, want: "nil is not assignable to int"},
		"variadic short": {target: func(a int, rest ...int) {}, want: "expected at least 1 arguments, got 0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := CreateVersion(name, tc.target, 1, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMustCreateVersionPanics(t *testing.T) {
	assert.Panics(t, func() { MustCreateVersion("bad", "nope", 1) })
}

func TestInvokeTrailingError(t *testing.T) {
	boom := errors.New("boom")
	v := MustCreateVersion("err", func() (int, error) { return 0, boom }, 1)
	_, err := v.Invoke(context.Background())
	assert.ErrorIs(t, err, boom)

	v = MustCreateVersion("only err", func() error { return nil }, 1)
	value, err := v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestInvokeAwaitsChannels(t *testing.T) {
	boom := errors.New("rejected")
	v := MustCreateVersion("rejects", func() <-chan error {
		out := make(chan error, 1)
		out <- boom
		return out
	}, 1)
	_, err := v.Invoke(context.Background())
	assert.ErrorIs(t, err, boom)

	v = MustCreateVersion("closed", func() chan string {
		out := make(chan string)
		close(out)
		return out
	}, 1)
	value, err := v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Nil(t, value)

	v = MustCreateVersion("nil channel", func() <-chan int { return nil }, 1)
	_, err = v.Invoke(context.Background())
	assert.Error(t, err)
}

func TestInvokeAwaitsPending(t *testing.T) {
	v := MustCreateVersion("pending", func() Pending { return delayed{d: time.Millisecond, value: "done"} }, 1)
	value, err := v.Invoke(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "done", value)

	boom := errors.New("late failure")
	v = MustCreateVersion("pending any", func() any { return delayed{err: boom} }, 1)
	_, err = v.Invoke(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestInvokeHonoursCancellationWhileAwaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := MustCreateVersion("never", func() <-chan int { return make(chan int) }, 1)
	_, err := v.Invoke(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

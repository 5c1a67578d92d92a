package memory

import (
	"bytes"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	Key string
	Val int
}

func TestSet(t *testing.T) {
	type args[T any] struct {
		key  string
		val  *T
		m    *MStorage
		opts []func(*SetOptions)
	}
	type testCase[T any] struct {
		name    string
		args    args[T]
		wantErr error
	}
	ms := NewMemStorage()
	tests := []testCase[target]{
		{
			name: "default",
			args: args[target]{
				key: "key1",
				val: &target{Key: "key1", Val: 1},
				m:   ms,
			},
		}, {
			name: "duplicate records",
			args: args[target]{
				key: "key1",
				val: &target{Key: "key1", Val: 2},
				m:   ms,
			},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 3},
				m:    ms,
				opts: []func(*SetOptions){WithOverwrite()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, tt.args.m, tt.args.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			val, getErr := Get[target](t.Context(), tt.args.key, tt.args.m)
			require.NoError(t, getErr)
			assert.Equal(t, *tt.args.val, *val)
		})
	}
}

func TestSet_ConcurrentSameKey(t *testing.T) {
	ms := NewMemStorage()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := Set[target](t.Context(), "same", &target{Key: "same", Val: i}, ms)
			if err == nil {
				wins.Add(1)
				return
			}
			if !errors.Is(err, ErrDuplicateKey) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, 1, ms.Len())
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get[target](t.Context(), "missing", NewMemStorage())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate(t *testing.T) {
	ms := NewMemStorage()
	require.NoError(t, Set[target](t.Context(), "k", &target{Key: "k", Val: 1}, ms))

	got, err := Update[target](t.Context(), "k", ms, func(v *target) error {
		v.Val++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Val)

	failErr := errors.New("stop")
	_, err = Update[target](t.Context(), "k", ms, func(v *target) error {
		v.Val = 100
		return failErr
	})
	require.ErrorIs(t, err, failErr)

	stored, err := Get[target](t.Context(), "k", ms)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Val)

	_, err = Update[target](t.Context(), "missing", ms, func(*target) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFilterAndDeleteFunc(t *testing.T) {
	ms := NewMemStorage()
	for i := range 10 {
		key := string(rune('a' + i))
		require.NoError(t, Set[target](t.Context(), key, &target{Key: key, Val: i}, ms))
	}

	even, err := FilterAll[target](t.Context(), ms, func(v target) bool { return v.Val%2 == 0 })
	require.NoError(t, err)
	assert.Len(t, even, 5)

	deleted, err := DeleteFunc[target](t.Context(), ms, func(v target) bool { return v.Val < 3 })
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.Equal(t, 7, ms.Len())

	all, err := GetAll[target](t.Context(), ms)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestDumpLoad(t *testing.T) {
	src := NewMemStorage()
	require.NoError(t, Set[target](t.Context(), "k1", &target{Key: "k1", Val: 1}, src))
	require.NoError(t, Set[target](t.Context(), "k2", &target{Key: "k2", Val: 2}, src))

	var buf bytes.Buffer
	require.NoError(t, src.Dump(&buf))

	dst := NewMemStorage()
	require.NoError(t, dst.Load(&buf))
	assert.Equal(t, 2, dst.Len())

	v, err := Get[target](t.Context(), "k2", dst)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Val)
}

package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reduxkit/pkg/store"
)

func addTodo(args ...any) any {
	title, _ := args[0].(string)
	return store.NewAction("ADD_TODO", title)
}

func increment(...any) any {
	return inc
}

func TestBindActionCreator(t *testing.T) {
	t.Parallel()

	s := store.MustNew(store.CombineReducers([]store.Entry{
		{Key: "todos", Reducer: todos()},
	}, store.WithDiagnostics(nil)))

	bound := store.BindActionCreator(addTodo, s.Dispatch)
	res, err := bound("write tests")
	require.NoError(t, err)
	assert.Equal(t, store.NewAction("ADD_TODO", "write tests"), res)

	list, _ := s.GetState().(*store.StateMap).Get("todos")
	assert.Equal(t, []todo{{Title: "write tests"}}, list)
}

func TestBindActionCreators(t *testing.T) {
	t.Parallel()

	t.Run("binds a single creator", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		bound, err := store.BindActionCreators(store.ActionCreator(increment), s.Dispatch)
		require.NoError(t, err)

		fn, ok := bound.(store.BoundActionCreator)
		require.True(t, ok)
		_, err = fn()
		require.NoError(t, err)
		assert.Equal(t, 1, s.GetState())
	})

	t.Run("binds a plain function", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		bound, err := store.BindActionCreators(increment, s.Dispatch)
		require.NoError(t, err)

		_, err = bound.(store.BoundActionCreator)()
		require.NoError(t, err)
		assert.Equal(t, 1, s.GetState())
	})

	t.Run("binds a map and skips nil entries", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		bound, err := store.BindActionCreators(map[string]store.ActionCreator{
			"increment": increment,
			"decrement": func(...any) any { return dec },
			"missing":   nil,
		}, s.Dispatch)
		require.NoError(t, err)

		creators, ok := bound.(map[string]store.BoundActionCreator)
		require.True(t, ok)
		assert.Len(t, creators, 2)
		assert.NotContains(t, creators, "missing")

		_, _ = creators["increment"]()
		_, _ = creators["increment"]()
		_, _ = creators["decrement"]()
		assert.Equal(t, 1, s.GetState())
	})

	t.Run("binds a map of plain functions", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		bound, err := store.BindActionCreators(map[string]func(...any) any{
			"increment": increment,
			"missing":   nil,
		}, s.Dispatch)
		require.NoError(t, err)

		creators, ok := bound.(map[string]store.BoundActionCreator)
		require.True(t, ok)
		assert.Len(t, creators, 1)

		_, err = creators["increment"]()
		require.NoError(t, err)
		assert.Equal(t, 1, s.GetState())

		var nilMap map[string]func(...any) any
		_, err = store.BindActionCreators(nilMap, s.Dispatch)
		require.ErrorIs(t, err, store.ErrInvalidArgument)
	})

	t.Run("propagates dispatch errors", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		bound, err := store.BindActionCreators(func(...any) any { return "not an action" }, s.Dispatch)
		require.NoError(t, err)

		_, err = bound.(store.BoundActionCreator)()
		require.ErrorIs(t, err, store.ErrInvalidAction)
	})

	t.Run("rejects unsupported values", func(t *testing.T) {
		t.Parallel()
		s := store.MustNew(counter())

		var nilCreator store.ActionCreator
		var nilMap map[string]store.ActionCreator
		for _, v := range []any{nil, 42, "increment", nilCreator, nilMap, map[string]int{}, func() {}} {
			bound, err := store.BindActionCreators(v, s.Dispatch)
			assert.ErrorIs(t, err, store.ErrInvalidArgument, "value %#v", v)
			assert.Nil(t, bound)
		}
	})

	t.Run("rejects nil dispatch", func(t *testing.T) {
		t.Parallel()
		_, err := store.BindActionCreators(increment, nil)
		require.ErrorIs(t, err, store.ErrInvalidArgument)
	})
}

func TestBindActionCreatorMap(t *testing.T) {
	t.Parallel()

	var dispatched []any
	dispatch := func(action any) (any, error) {
		dispatched = append(dispatched, action)
		return action, nil
	}

	bound := store.BindActionCreatorMap(map[string]store.ActionCreator{
		"add":   addTodo,
		"empty": nil,
	}, dispatch)
	require.Len(t, bound, 1)

	_, err := bound["add"]("ship it")
	require.NoError(t, err)
	assert.Equal(t, []any{store.NewAction("ADD_TODO", "ship it")}, dispatched)
}

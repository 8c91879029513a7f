package rule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formval/pkg/rule"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "sync", rule.KindSync.String())
	assert.Equal(t, "async", rule.KindAsync.String())
	assert.Equal(t, "unknown", rule.Kind(42).String())
}

func TestSync_Valid(t *testing.T) {
	t.Run("evaluates the predicate", func(t *testing.T) {
		r := rule.Sync[string]{
			Check: func(v string) bool { return v == "ok" },
		}

		assert.True(t, r.Valid("ok"))
		assert.False(t, r.Valid("nope"))
	})

	t.Run("nil predicate always passes", func(t *testing.T) {
		r := rule.Sync[string]{Feedback: "never shown"}

		assert.True(t, r.Valid("anything"))
	})

	t.Run("reports sync kind", func(t *testing.T) {
		assert.Equal(t, rule.KindSync, rule.Sync[string]{}.Kind())
	})
}

func TestAsync_Valid(t *testing.T) {
	t.Run("evaluates the predicate", func(t *testing.T) {
		r := rule.Async[int]{
			Check: func(_ context.Context, v int) (bool, error) {
				return v > 0, nil
			},
		}

		ok, err := r.Valid(context.Background(), 1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = r.Valid(context.Background(), -1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nil predicate always passes", func(t *testing.T) {
		r := rule.Async[string]{}

		ok, err := r.Valid(context.Background(), "anything")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("reports async kind", func(t *testing.T) {
		assert.Equal(t, rule.KindAsync, rule.Async[string]{}.Kind())
	})
}

func TestSets(t *testing.T) {
	t.Run("sync set preserves declaration order", func(t *testing.T) {
		set := rule.SyncSet[string]{
			Name: "username",
			Rules: []rule.Sync[string]{
				{Feedback: "first"},
				{Feedback: "second"},
			},
		}

		rules := set.SyncRules()
		require.Len(t, rules, 2)
		assert.Equal(t, "first", rules[0].Feedback)
		assert.Equal(t, "second", rules[1].Feedback)
	})

	t.Run("async set preserves declaration order", func(t *testing.T) {
		set := rule.AsyncSet[string]{
			Name: "email",
			Rules: []rule.Async[string]{
				{Feedback: "first"},
				{Feedback: "second"},
			},
		}

		rules := set.AsyncRules()
		require.Len(t, rules, 2)
		assert.Equal(t, "first", rules[0].Feedback)
		assert.Equal(t, "second", rules[1].Feedback)
	})
}

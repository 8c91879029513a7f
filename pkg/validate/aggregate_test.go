package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formval/pkg/rule"
	"github.com/dmitrymomot/formval/pkg/validate"
)

func TestAggregateSync(t *testing.T) {
	ruleA := rule.Sync[string]{Feedback: "a"}
	ruleB := rule.Sync[string]{Feedback: "b"}
	ruleC := rule.Sync[string]{Feedback: "c"}

	t.Run("set rules come before list rules", func(t *testing.T) {
		set := rule.SyncSet[string]{Name: "shared", Rules: []rule.Sync[string]{ruleA, ruleB}}

		merged := validate.AggregateSync([]rule.Sync[string]{ruleC}, set)

		assert.Len(t, merged, 3)
		assert.Equal(t, "a", merged[0].Feedback)
		assert.Equal(t, "b", merged[1].Feedback)
		assert.Equal(t, "c", merged[2].Feedback)
	})

	t.Run("nil list yields set rules only", func(t *testing.T) {
		set := rule.SyncSet[string]{Rules: []rule.Sync[string]{ruleA}}

		merged := validate.AggregateSync(nil, set)

		assert.Len(t, merged, 1)
		assert.Equal(t, "a", merged[0].Feedback)
	})

	t.Run("nil set yields list rules only", func(t *testing.T) {
		merged := validate.AggregateSync([]rule.Sync[string]{ruleB}, nil)

		assert.Len(t, merged, 1)
		assert.Equal(t, "b", merged[0].Feedback)
	})

	t.Run("both nil yields empty sequence", func(t *testing.T) {
		merged := validate.AggregateSync[string](nil, nil)

		assert.NotNil(t, merged)
		assert.Empty(t, merged)
	})

	t.Run("result is a fresh slice", func(t *testing.T) {
		list := []rule.Sync[string]{ruleA}

		merged := validate.AggregateSync(list, nil)
		merged[0] = ruleC

		assert.Equal(t, "a", list[0].Feedback)
	})
}

func TestAggregateAsync(t *testing.T) {
	ruleA := rule.Async[string]{Feedback: "a"}
	ruleB := rule.Async[string]{Feedback: "b"}

	t.Run("set rules come before list rules", func(t *testing.T) {
		set := rule.AsyncSet[string]{Name: "shared", Rules: []rule.Async[string]{ruleA}}

		merged := validate.AggregateAsync([]rule.Async[string]{ruleB}, set)

		assert.Len(t, merged, 2)
		assert.Equal(t, "a", merged[0].Feedback)
		assert.Equal(t, "b", merged[1].Feedback)
	})

	t.Run("both nil yields empty sequence", func(t *testing.T) {
		merged := validate.AggregateAsync[string](nil, nil)

		assert.Empty(t, merged)
	})
}

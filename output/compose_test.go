package output

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/aocget/internal/util"
	"github.com/teranos/aocget/puzzle"
)

func TestComposeExamples_KeysInOrder(t *testing.T) {
	examples := make([]puzzle.Example, 12)
	for i := range examples {
		examples[i] = puzzle.Example{InputData: util.Ptr(fmt.Sprintf("input %d", i))}
	}

	composed := ComposeExamples(examples)

	require.Len(t, composed, 12)
	for i := range examples {
		key := fmt.Sprintf("example-%d", i+1)
		require.Contains(t, composed, key)
		assert.Equal(t, fmt.Sprintf("input %d", i), composed[key][puzzle.FieldInputData])
	}
	assert.NotContains(t, composed, "example-0")
	assert.NotContains(t, composed, "example-13")
}

func TestComposeExamples_OnlyPresentFields(t *testing.T) {
	composed := ComposeExamples([]puzzle.Example{
		{InputData: util.Ptr("abc")},
		{InputData: util.Ptr("xyz"), AnswerA: util.Ptr("3"), AnswerB: util.Ptr("9")},
		{},
		{Extra: util.Ptr("after 18 steps")},
	})

	want := map[string]map[string]string{
		"example-1": {"input_data": "abc"},
		"example-2": {"input_data": "xyz", "answer_a": "3", "answer_b": "9"},
		"example-3": {},
		"example-4": {"extra": "after 18 steps"},
	}
	if diff := cmp.Diff(want, composed); diff != "" {
		t.Errorf("ComposeExamples() mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeExamples_Empty(t *testing.T) {
	composed := ComposeExamples(nil)
	require.NotNil(t, composed)
	assert.Empty(t, composed)
}

func TestComposeExamples_NoDeduplication(t *testing.T) {
	same := puzzle.Example{InputData: util.Ptr("1"), AnswerA: util.Ptr("1")}
	composed := ComposeExamples([]puzzle.Example{same, same})

	assert.Len(t, composed, 2)
	assert.Equal(t, composed["example-1"], composed["example-2"])
}

func TestComposeInput(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		doc := ComposeInput("199\n200\n208\n", true)
		assert.Equal(t, map[string]any{"input": []string{"199", "200", "208"}}, doc)
	})

	t.Run("tokens split on any whitespace", func(t *testing.T) {
		doc := ComposeInput("  a b\t c\n\n d  \n", true)
		assert.Equal(t, []string{"a", "b", "c", "d"}, doc["input"])
	})

	t.Run("tokens of empty input", func(t *testing.T) {
		doc := ComposeInput("\n", true)
		assert.Equal(t, []string{}, doc["input"])
	})

	t.Run("raw", func(t *testing.T) {
		doc := ComposeInput("line one\nline two\n", false)
		assert.Equal(t, map[string]any{"input_data": "line one\nline two\n"}, doc)
	})
}

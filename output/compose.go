package output

import (
	"strconv"
	"strings"

	"github.com/teranos/aocget/puzzle"
)

// ExampleKey returns the EXAMPLES.toml table name for the example at the
// given 0-based position.
func ExampleKey(index int) string {
	return "example-" + strconv.Itoa(index+1)
}

// ComposeExamples re-keys examples into example-1..example-N, each holding
// only its present fields.
func ComposeExamples(examples []puzzle.Example) map[string]map[string]string {
	composed := make(map[string]map[string]string, len(examples))
	for i, example := range examples {
		composed[ExampleKey(i)] = example.Fields()
	}
	return composed
}

// ComposeInput builds the INPUT.toml document. Tokens mode stores the
// trimmed input split on whitespace under "input"; raw mode stores the text
// unchanged under "input_data".
func ComposeInput(input string, tokens bool) map[string]any {
	if tokens {
		fields := strings.Fields(input)
		if fields == nil {
			fields = []string{}
		}
		return map[string]any{"input": fields}
	}
	return map[string]any{puzzle.FieldInputData: input}
}

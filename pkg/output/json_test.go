package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stripecheck/stripecheck/pkg/result"
)

func TestJSONWriter(t *testing.T) {
	r := result.NewReport()
	r.Add("list_charges", result.OutcomeEntry(result.Success("ok")))

	var buf strings.Builder
	require.NoError(t, NewJSONWriter(&buf).Write(r))

	out := buf.String()
	assert.Contains(t, out, `"run_id"`)
	assert.Contains(t, out, `"list_charges"`)
	assert.Contains(t, out, `"succeeded"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

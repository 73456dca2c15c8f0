package validators

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// decode mirrors how ValidateCreateJourney reads bodies, keeping numbers as json.Number.
func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()

	var out map[string]interface{}
	require.NoError(t, dec.Decode(&out))
	return out
}

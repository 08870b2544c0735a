package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The worker and producer agree on the wire format through these keys;
// renaming one silently strands messages in the DLQ.
func TestAssignmentPayloadWireFormat(t *testing.T) {
	payload := AssignmentPayload{
		Kind:          "lead",
		RecordID:      "l-1",
		Title:         "Acme Corp",
		AssigneeID:    "u-1",
		AssigneeName:  "Ana",
		AssigneeEmail: "ana@corp.com",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &decoded))
	for _, key := range []string{"kind", "record_id", "title", "assignee_id", "assignee_name", "assignee_email"} {
		assert.Contains(t, decoded, key)
	}

	var received AssignmentPayload
	assert.NoError(t, json.Unmarshal(body, &received))
	assert.Equal(t, payload, received)
}

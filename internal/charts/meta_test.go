package charts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/climatescope-data/internal/model"
)

func TestMeta(t *testing.T) {
	defs := []model.ChartDefinition{
		def("policy", "auction-policy", model.ChartAnswer),
		def("cap", "capacity", model.ChartAbsolute),
	}
	answers := map[string][]model.AnswerOption{
		"auction-policy": {{ID: "0", Label: "No"}, {ID: "1", Label: "Yes"}},
	}

	got := Meta(defs, answers)
	require.Len(t, got, 2)
	assert.Len(t, got[0].Options, 2)
	assert.NotNil(t, got[1].Options)
	assert.Empty(t, got[1].Options)

	data, err := json.Marshal(got[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "policy",
		"indicatorId": "auction-policy",
		"name": "policy title",
		"type": "answer",
		"description": null,
		"topic": null,
		"labelX": null,
		"labelY": null,
		"unit": null,
		"applicable-grid": null,
		"options": [{"id": "0", "label": "No"}, {"id": "1", "label": "Yes"}]
	}`, string(data))
}

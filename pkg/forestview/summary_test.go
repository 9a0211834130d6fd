package forestview_test

import (
	"testing"

	"unionfind_tool/pkg/forestview"
	"unionfind_tool/pkg/unionfind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSummary(t *testing.T) {
	sum, err := forestview.Summary(chainScenario().Snapshot())
	require.NoError(t, err)
	t.Log("\n" + sum)
	require.True(t, gjson.Valid(sum))

	assert.Equal(t, int64(7), forestview.SummaryField(sum, "elements").Int())
	assert.Equal(t, int64(2), forestview.SummaryField(sum, "components").Int())
	assert.Equal(t, int64(5), forestview.SummaryField(sum, "largest").Int())
	assert.Equal(t, int64(1), forestview.SummaryField(sum, "maxDepth").Int())
	assert.Equal(t, int64(2), forestview.SummaryField(sum, "sets.#").Int())

	var second []int64
	for _, v := range forestview.SummaryField(sum, "sets.1").Array() {
		second = append(second, v.Int())
	}
	assert.Equal(t, []int64{5, 6}, second)
}

func TestSummaryEmpty(t *testing.T) {
	sum, err := forestview.Summary(unionfind.New[int](0).Snapshot())
	require.NoError(t, err)
	assert.Equal(t, int64(0), forestview.SummaryField(sum, "elements").Int())
	assert.Equal(t, int64(0), forestview.SummaryField(sum, "sets.#").Int())
}

func TestDescribe(t *testing.T) {
	big := unionfind.New[int](1000)
	for i := 1; i < 998; i++ {
		big.Union(0, i)
	}

	tests := []struct {
		name string
		uf   *unionfind.UnionFind[int]
		want string
	}{
		{"empty", unionfind.New[int](0), "0 elements in 0 components"},
		{"single", unionfind.New[int](1), "1 element in 1 component (largest 1)"},
		{"large", big, "1,000 elements in 3 components (largest 998)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, forestview.Describe(tt.uf.Snapshot()))
		})
	}
}

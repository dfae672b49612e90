package batch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_EmptyInput(t *testing.T) {
	assert.Nil(t, Plan(nil, nil, Remote))
	assert.Nil(t, Plan([]string{}, []int{}, Local))
}

func TestPlan_BucketSelection(t *testing.T) {
	tests := []struct {
		name     string
		textLen  int
		mode     Mode
		wantSize int
	}{
		{"short remote", 50, Remote, 20},
		{"medium remote", 150, Remote, 15},
		{"long remote", 300, Remote, 10},
		{"very long remote", 800, Remote, 5},
		{"short local", 50, Local, 50},
		{"medium local", 150, Local, 40},
		{"long local", 300, Local, 25},
		{"very long local", 800, Local, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := make([]string, 100)
			indices := make([]int, 100)
			for i := range inputs {
				inputs[i] = strings.Repeat("x", tt.textLen)
				indices[i] = i
			}

			batches := Plan(inputs, indices, tt.mode)
			require.NotEmpty(t, batches)
			assert.Len(t, batches[0].Texts, tt.wantSize)
		})
	}
}

func TestPlan_PreservesEveryIndexExactlyOnce(t *testing.T) {
	inputs := make([]string, 53)
	indices := make([]int, 53)
	for i := range inputs {
		inputs[i] = "feedback"
		indices[i] = i * 2 // arbitrary original positions
	}

	batches := Plan(inputs, indices, Remote)

	seen := make(map[int]bool)
	total := 0
	for _, b := range batches {
		require.Len(t, b.OriginalIndices, len(b.Texts))
		for _, idx := range b.OriginalIndices {
			assert.False(t, seen[idx], "index %d appeared twice", idx)
			seen[idx] = true
		}
		total += len(b.Texts)
	}
	assert.Equal(t, len(inputs), total)
}

func TestPlan_LastBatchHoldsRemainder(t *testing.T) {
	inputs := make([]string, 23)
	indices := make([]int, 23)
	for i := range inputs {
		inputs[i] = "short"
		indices[i] = i
	}

	batches := Plan(inputs, indices, Remote) // size 20 bucket
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Texts, 20)
	assert.Len(t, batches[1].Texts, 3)
}

// Package batch partitions analysis inputs into size-adaptive batches.
// Shorter average text gets larger batches, since per-item call overhead
// dominates for short feedback snippets.
package batch

// Mode selects the batch-size table. Local batches are larger than remote
// ones because local computation has no quota cost.
type Mode int

const (
	Remote Mode = iota
	Local
)

// Batch is a contiguous slice of a request's inputs together with the
// positions they came from, so results can be scattered back into the
// output array regardless of completion order.
type Batch struct {
	Texts           []string
	OriginalIndices []int
}

var (
	lengthThresholds = []int{100, 200, 500}
	remoteSizes      = []int{20, 15, 10, 5}
	localSizes       = []int{50, 40, 25, 10}
)

// Plan splits inputs into contiguous batches. indices[i] is the position of
// inputs[i] in the originating request; len(indices) must equal len(inputs).
// The planner is stateless and performs no I/O.
func Plan(inputs []string, indices []int, mode Mode) []Batch {
	if len(inputs) == 0 {
		return nil
	}

	size := sizeFor(avgLength(inputs), mode)
	batches := make([]Batch, 0, (len(inputs)+size-1)/size)
	for start := 0; start < len(inputs); start += size {
		end := start + size
		if end > len(inputs) {
			end = len(inputs)
		}
		batches = append(batches, Batch{
			Texts:           inputs[start:end],
			OriginalIndices: indices[start:end],
		})
	}
	return batches
}

func avgLength(inputs []string) int {
	total := 0
	for _, s := range inputs {
		total += len(s)
	}
	return total / len(inputs)
}

func sizeFor(avg int, mode Mode) int {
	sizes := remoteSizes
	if mode == Local {
		sizes = localSizes
	}
	for i, threshold := range lengthThresholds {
		if avg < threshold {
			return sizes[i]
		}
	}
	return sizes[len(sizes)-1]
}

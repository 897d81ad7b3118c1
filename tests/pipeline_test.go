package tests

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/rail-go/rail/pkg/rail"
	"github.com/rail-go/rail/pkg/rail/chain"
	"github.com/rail-go/rail/pkg/rail/option"
	"github.com/rail-go/rail/pkg/rail/result"
	"github.com/rail-go/rail/pkg/rail/seq"
	"github.com/stretchr/testify/assert"
)

// TestOrderLinePipeline runs a batch of raw order lines through the full
// pricing pipeline and checks the valid/rejected split.
func TestOrderLinePipeline(t *testing.T) {
	catalog := map[string]int{
		"widget": 250,
		"gadget": 99,
		"bolt":   5,
	}

	lines := []string{
		// well-formed lines
		"widget:3",
		"bolt: 12",
		"gadget:1",

		// rejected for different reasons
		"gadget:0",    // quantity must be positive
		"no-quantity", // malformed line
		"sprocket:2",  // unknown item
		"widget:many", // quantity is not a number
	}

	results := processOrder(catalog, lines)

	fmt.Println("Pipeline results:")
	for i, res := range results {
		fmt.Printf("%d. %-14s -> %s\n", i+1, lines[i], res)
	}

	rejected := 0
	for _, res := range results {
		if res == "rejected" {
			rejected++
		}
	}

	assert.Equal(t, len(lines), len(results))
	assert.Equal(t, 4, rejected)
	assert.Equal(t, "total: 750 cents", results[0])
	assert.Equal(t, "total: 60 cents", results[1])
	assert.Equal(t, "total: 99 cents", results[2])
}

// TestOrderBatchAggregation prices a batch as a whole, first with the
// short-circuiting collapse and then with full error accumulation.
func TestOrderBatchAggregation(t *testing.T) {
	catalog := map[string]int{"widget": 250, "bolt": 5}

	good := priceBatch(catalog, []string{"widget:2", "bolt:10"})
	batch := seq.Combine(good)
	assert.True(t, batch.IsOk())
	assert.Equal(t, []int{500, 50}, batch.Value())

	mixed := priceBatch(catalog, []string{"widget:2", "sprocket:1", "bolt:zero"})
	collapsed := seq.Combine(mixed)
	assert.True(t, collapsed.IsErr())
	assert.EqualError(t, collapsed.Err(), `unknown item "sprocket"`)

	all := seq.CombineAll(mixed)
	assert.True(t, all.IsErr())
	assert.Len(t, rail.GetErrors(all.Err()), 2)

	totals, errs := seq.Partition(mixed)
	assert.Equal(t, []int{500}, totals)
	assert.Len(t, errs, 2)
}

func processOrder(catalog map[string]int, lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, r := range priceBatch(catalog, lines) {
		out = append(out, result.Finally(r,
			func(cents int) string { return fmt.Sprintf("total: %d cents", cents) },
			func(error) string { return "rejected" },
		))
	}
	return out
}

func priceBatch(catalog map[string]int, lines []string) []rail.Result[int, error] {
	rs := make([]rail.Result[int, error], 0, len(lines))
	for _, line := range lines {
		rs = append(rs, priceLine(catalog, line))
	}
	return rs
}

// priceLine turns a raw "item:quantity" line into a total price in cents.
func priceLine(catalog map[string]int, line string) rail.Result[int, error] {
	name, qtyText, found := strings.Cut(line, ":")
	if !found {
		return rail.Err[int](fmt.Errorf("malformed line %q", line))
	}

	unit, known := catalog[name]
	unitPrice := option.ToResult(rail.FromOk(unit, known), fmt.Errorf("unknown item %q", name))

	quantity := chain.ThenFit(
		chain.FromValue[string, error](strings.TrimSpace(qtyText)), strconv.Atoi).
		Verify(func(q int) bool { return q > 0 }, errors.New("quantity must be positive")).
		Result()

	return result.Switch(unitPrice, func(price int) rail.Result[int, error] {
		return result.Map(quantity, func(q int) int { return q * price })
	})
}

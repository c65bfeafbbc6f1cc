package display

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"multiservicios/internal/domain"
)

func TestFormatID_PositionInSortedCollection(t *testing.T) {
	ids := []int64{42, 7, 19, 3, 100}
	sorted := []int64{3, 7, 19, 42, 100}

	for k, id := range sorted {
		assert.Equal(t, fmt.Sprintf("%03d", k+1), FormatID(ids, id, ""))
	}
}

func TestFormatID_Prefix(t *testing.T) {
	assert.Equal(t, "P002", FormatID([]int64{10, 20, 30}, 20, "P"))
}

func TestFormatID_AbsentEntity(t *testing.T) {
	assert.Equal(t, Placeholder, FormatID([]int64{1, 2}, 5, ""))
	assert.Equal(t, Placeholder, FormatID(nil, 1, ""))
}

func TestFormatID_DoesNotReorderInput(t *testing.T) {
	ids := []int64{5, 1, 3}
	FormatID(ids, 3, "")

	assert.Equal(t, []int64{5, 1, 3}, ids)
}

func TestFormatID_GapsAreNotStable(t *testing.T) {
	assert.Equal(t, "002", FormatID([]int64{1, 9}, 9, ""))
}

func TestIDs_MatchesFormatID(t *testing.T) {
	ids := []int64{8, 2, 15, 4}
	labels := IDs(ids, "F")

	for _, id := range ids {
		assert.Equal(t, FormatID(ids, id, "F"), labels[id])
	}
	assert.Equal(t, Placeholder, Lookup(labels, 99))
}

func TestOf_Entities(t *testing.T) {
	clientes := []domain.Cliente{{ID: 30}, {ID: 10}, {ID: 20}}

	assert.Equal(t, "003", Of(clientes, 30, ""))
	assert.Equal(t, []int64{30, 10, 20}, EntityIDs(clientes))
}

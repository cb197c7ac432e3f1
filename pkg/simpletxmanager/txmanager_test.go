package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSerializationFailure(t *testing.T) {
	pqErr := &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
	flattened := fmt.Errorf("create_booking: internal error: %v",
		fmt.Errorf("booking.repository: failed to execute query: %v", pqErr))

	assert.False(t, isSerializationFailure(nil))
	assert.True(t, isSerializationFailure(fmt.Errorf("query failed: %w", pqErr)))
	assert.True(t, isSerializationFailure(flattened))
	assert.False(t, isSerializationFailure(fmt.Errorf("query failed: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isSerializationFailure(errors.New("booking.repository: booking not found")))
}

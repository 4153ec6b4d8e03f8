package exceptions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, IsDuplicateKey(ErrMongoDBDuplicateKey(errors.New("E11000"))))
	assert.True(t, IsDuplicateKey(fmt.Errorf("consume: %w", ErrMongoDBDuplicateKey(nil))))
	assert.False(t, IsDuplicateKey(ErrMongoDBUpdateDocument(errors.New("timeout"))))
	assert.False(t, IsDuplicateKey(errors.New("duplicate key on unique index")))
	assert.False(t, IsDuplicateKey(nil))
}

package pgerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
		exclusion bool
		unique    bool
	}{
		{"serialization failure", &pq.Error{Code: CodeSerializationFailure}, true, false, false},
		{"deadlock", &pq.Error{Code: CodeDeadlockDetected}, true, false, false},
		{"exclusion", &pq.Error{Code: CodeExclusionViolation}, false, true, false},
		{"unique", &pq.Error{Code: CodeUniqueViolation}, false, false, true},
		{"wrapped serialization", fmt.Errorf("outer: %w", &pq.Error{Code: CodeSerializationFailure}), true, false, false},
		{"plain error", errors.New("boom"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Equal(t, tt.exclusion, IsExclusionViolation(tt.err))
			assert.Equal(t, tt.unique, IsUniqueViolation(tt.err))
		})
	}
}

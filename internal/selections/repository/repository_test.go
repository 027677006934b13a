package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

func TestMapInsertError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantErr    error
		wantStatus int
	}{
		{
			name:       "duplicate pair is a conflict",
			err:        &pq.Error{Code: pq.ErrorCode(uniqueViolation)},
			wantErr:    pkgErrors.ErrAlreadySelected,
			wantStatus: 409,
		},
		{
			name:       "unknown course id is a missing class",
			err:        &pq.Error{Code: pq.ErrorCode(foreignKeyViolation)},
			wantErr:    pkgErrors.ErrClassNotFound,
			wantStatus: 404,
		},
		{
			name:       "wrapped constraint error still unwraps",
			err:        errors.Wrap(&pq.Error{Code: pq.ErrorCode(foreignKeyViolation)}, "insert selection"),
			wantErr:    pkgErrors.ErrClassNotFound,
			wantStatus: 404,
		},
		{
			name:       "other pq error stays a db error",
			err:        &pq.Error{Code: "42P01"},
			wantErr:    pkgErrors.ErrDb,
			wantStatus: 500,
		},
		{
			name:       "non-pq error stays a db error",
			err:        errors.New("connection reset"),
			wantErr:    pkgErrors.ErrDb,
			wantStatus: 500,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mapped := mapInsertError(test.err)

			assert.ErrorIs(t, mapped, test.wantErr)
			assert.Equal(t, test.wantStatus, pkgErrors.Status(mapped))
		})
	}
}

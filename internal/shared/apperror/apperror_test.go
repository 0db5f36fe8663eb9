package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-hrms/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryInput struct {
	TaskID string `json:"task_id" binding:"required"`
	Hours  string `json:"hours" binding:"required"`
}

type submitInput struct {
	WeekStartDate string       `json:"week_start_date" binding:"required"`
	Month         string       `json:"month" binding:"omitempty,yearmonth"`
	Reason        string       `json:"reason" binding:"omitempty,min=10"`
	Entries       []entryInput `json:"entries" binding:"required,min=1,dive"`
}

func TestMapValidationError(t *testing.T) {
	apperror.Init()

	t.Run("first field names the message, details list every field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&submitInput{
			Month:   "2025-13",
			Reason:  "short",
			Entries: []entryInput{{TaskID: "t1"}},
		})
		require.Error(t, err)

		mapped := apperror.MapValidationError(err)
		httpErr := apperror.ToHTTP(mapped)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, apperror.CodeInvalidInput, httpErr.Code)
		assert.Equal(t, "Week Start Date is required", httpErr.Message)
		assert.Equal(t, map[string]string{
			"week_start_date":  "required",
			"month":            "yearmonth",
			"reason":           "min=10",
			"entries[0].hours": "required",
		}, httpErr.Details)
	})

	t.Run("non validator error", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(errors.New("unexpected EOF")))

		assert.Equal(t, "Invalid input", httpErr.Message)
		assert.Nil(t, httpErr.Details)
	})
}

func TestToHTTP(t *testing.T) {
	notFound := apperror.New(apperror.CodeNotFound, "Request not found", http.StatusNotFound)

	httpErr := apperror.ToHTTP(notFound)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Nil(t, httpErr.Details)

	httpErr = apperror.ToHTTP(errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Internal server error", httpErr.Message)

	wrapped := errors.Join(errors.New("context"), notFound)
	assert.True(t, apperror.HasCode(wrapped, apperror.CodeNotFound))
	assert.Equal(t, "", apperror.CodeOf(errors.New("plain")))
}

func TestWithDetailsLeavesOriginalUntouched(t *testing.T) {
	base := apperror.InvalidField("Hours")
	withDetails := base.WithDetails(map[string]string{"hours": "max"})

	assert.Nil(t, base.Details)
	assert.Equal(t, "max", withDetails.Details["hours"])
	assert.Equal(t, base.Message, withDetails.Message)
}

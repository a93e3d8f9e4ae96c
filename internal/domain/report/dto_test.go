package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
)

func TestAttendanceReportRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       AttendanceReportRequest
		wantField string
	}{
		{
			name: "valid period",
			req:  AttendanceReportRequest{From: "2025-06-01", To: "2025-06-30"},
		},
		{
			name:      "malformed from",
			req:       AttendanceReportRequest{From: "01/06/2025", To: "2025-06-30"},
			wantField: "from",
		},
		{
			name:      "to precedes from",
			req:       AttendanceReportRequest{From: "2025-06-30", To: "2025-06-01"},
			wantField: "to",
		},
		{
			name:      "period over a year",
			req:       AttendanceReportRequest{From: "2024-01-01", To: "2025-06-01"},
			wantField: "to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

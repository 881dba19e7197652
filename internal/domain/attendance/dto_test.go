package attendance

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreateAttendanceRequest_Validate(t *testing.T) {
	t.Run("missing selection wins over other errors", func(t *testing.T) {
		req := CreateAttendanceRequest{ClientID: "  ", EmployeeID: "e1", Status: "Late"}
		err := req.Validate()
		assert.ErrorIs(t, err, ErrSelectionRequired)
	})

	t.Run("missing employee", func(t *testing.T) {
		req := CreateAttendanceRequest{ClientID: "c1"}
		assert.ErrorIs(t, req.Validate(), ErrSelectionRequired)
	})

	t.Run("defaults applied", func(t *testing.T) {
		req := CreateAttendanceRequest{ClientID: " c1 ", EmployeeID: "e1"}
		require.NoError(t, req.Validate())
		assert.Equal(t, "c1", req.ClientID)
		assert.Equal(t, StatusPresent, req.Status)
		assert.Equal(t, TypeFullDay, req.Type)
		assert.Equal(t, ShiftFirst, req.Shift)
	})

	t.Run("invalid enumerations and date", func(t *testing.T) {
		req := CreateAttendanceRequest{
			ClientID:   "c1",
			EmployeeID: "e1",
			Date:       strPtr("15/10/2026"),
			Status:     "Late",
			Type:       "Quarter day",
			Shift:      "Night",
		}
		err := req.Validate()

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		fields := verrs.ToMap()
		assert.Len(t, fields, 4)
		assert.Contains(t, fields, "date")
		assert.Contains(t, fields, "status")
		assert.Contains(t, fields, "type")
		assert.Contains(t, fields, "shift")
	})

	t.Run("explicit values kept", func(t *testing.T) {
		req := CreateAttendanceRequest{
			ClientID:   "c1",
			EmployeeID: "e1",
			Date:       strPtr("2026-10-15"),
			Status:     StatusAbsent,
			Type:       TypeHalfDay,
			Shift:      ShiftThird,
		}
		require.NoError(t, req.Validate())
		assert.Equal(t, StatusAbsent, req.Status)
		assert.Equal(t, TypeHalfDay, req.Type)
		assert.Equal(t, ShiftThird, req.Shift)
	})
}

func TestNextFormState_KeepsSelections(t *testing.T) {
	next := NextFormState(CreateAttendanceRequest{
		ClientID:   "c1",
		EmployeeID: "e1",
		Status:     StatusAbsent,
		Type:       TypeHalfDay,
		Shift:      ShiftSecond,
	})

	assert.Equal(t, FormState{
		ClientID:   "c1",
		EmployeeID: "e1",
		Status:     StatusPresent,
		Type:       TypeFullDay,
		Shift:      ShiftFirst,
	}, next)
}

func TestUpdateAttendanceRequest(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		var req UpdateAttendanceRequest
		assert.ErrorIs(t, req.Validate(), ErrNothingToUpdate)
	})

	t.Run("invalid fields", func(t *testing.T) {
		status := Status("Late")
		shift := Shift("4th Shift")
		req := UpdateAttendanceRequest{Date: strPtr("2026-13-01"), Status: &status, Shift: &shift}

		var verrs validator.ValidationErrors
		require.ErrorAs(t, req.Validate(), &verrs)
		assert.Len(t, verrs, 3)
	})

	t.Run("apply overwrites only provided fields", func(t *testing.T) {
		status := StatusAbsent
		req := UpdateAttendanceRequest{Date: strPtr("2026-10-14"), Status: &status}
		require.NoError(t, req.Validate())

		rec := Record{
			ID:           "a1",
			Date:         "2026-10-15",
			EmployeeID:   "e1",
			EmployeeName: "John Doe",
			Status:       StatusPresent,
			Type:         TypeHalfDay,
			Shift:        ShiftSecond,
		}
		got := req.Apply(rec)

		assert.Equal(t, "2026-10-14", got.Date)
		assert.Equal(t, StatusAbsent, got.Status)
		assert.Equal(t, TypeHalfDay, got.Type)
		assert.Equal(t, ShiftSecond, got.Shift)
		assert.Equal(t, "John Doe", got.EmployeeName)
		assert.Equal(t, "2026-10-15", rec.Date, "input record must not change")
	})
}

func TestAttendanceFilter_Validate(t *testing.T) {
	assert.NoError(t, AttendanceFilter{}.Validate())
	assert.NoError(t, AttendanceFilter{Date: strPtr("2026-10-15")}.Validate())
	assert.Error(t, AttendanceFilter{Date: strPtr("yesterday")}.Validate())
}

func TestNewListAttendanceResponse(t *testing.T) {
	empty := NewListAttendanceResponse(nil)
	assert.True(t, empty.Empty)
	assert.Equal(t, EmptyMessage, empty.Message)
	assert.NotNil(t, empty.Records)

	resp := NewListAttendanceResponse([]Record{{ID: "a1", Date: "2026-10-15"}})
	assert.False(t, resp.Empty)
	assert.Empty(t, resp.Message)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "a1", resp.Records[0].ID)
}

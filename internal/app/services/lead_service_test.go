package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/courseleads/internal/app/models"
	"github.com/yigit/courseleads/internal/app/models/dto"
	"github.com/yigit/courseleads/internal/pkg/apperrors"
)

func validRegistration() dto.RegisterLeadRequest {
	return dto.RegisterLeadRequest{
		Name:            raw(`"Jane"`),
		Email:           raw(`"jane@example.com"`),
		Phone:           raw(`5550100`),
		LinkedInProfile: raw(`"in/jane"`),
	}
}

func TestParseRegisterLead(t *testing.T) {
	cmd, err := ParseRegisterLead("3", validRegistration())
	require.NoError(t, err)
	assert.Equal(t, models.RegisterLead{
		CourseID:        "3",
		Name:            "Jane",
		Email:           "jane@example.com",
		Phone:           "5550100",
		LinkedInProfile: "in/jane",
	}, cmd)

	blanks := map[string]func(*dto.RegisterLeadRequest){
		"name":     func(r *dto.RegisterLeadRequest) { r.Name = raw(`" "`) },
		"email":    func(r *dto.RegisterLeadRequest) { r.Email = raw(`""`) },
		"phone":    func(r *dto.RegisterLeadRequest) { r.Phone = raw(`"\t"`) },
		"linkedin": func(r *dto.RegisterLeadRequest) { r.LinkedInProfile = raw(`"\n "`) },
	}
	for field, mutate := range blanks {
		t.Run("blank "+field, func(t *testing.T) {
			req := validRegistration()
			mutate(&req)

			_, err := ParseRegisterLead("3", req)
			msg, ok := apperrors.ValidationMessage(err)
			require.True(t, ok)
			assert.Equal(t, "Name, email, phone, and linkedin_profile are required fields", msg)
		})
	}

	t.Run("absent field is registered as undefined", func(t *testing.T) {
		req := validRegistration()
		req.Phone = nil

		cmd, err := ParseRegisterLead("3", req)
		require.NoError(t, err)
		assert.Equal(t, "undefined", cmd.Phone)
	})
}

func TestParseUpdateLeadStatus(t *testing.T) {
	for _, status := range []string{"Accepted", "Rejected", "Pending", "Waitlisted"} {
		cmd, err := ParseUpdateLeadStatus("1", dto.UpdateLeadStatusRequest{Status: raw(`"` + status + `"`)})
		require.NoError(t, err, status)
		assert.Equal(t, models.LeadStatus(status), cmd.Status)
		assert.True(t, cmd.Status.Valid())
	}

	for _, body := range []string{`"accepted"`, `"PENDING"`, `""`, `"Done"`, `1`, `["Accepted"]`, `null`, ``} {
		_, err := ParseUpdateLeadStatus("1", dto.UpdateLeadStatusRequest{Status: raw(body)})
		msg, ok := apperrors.ValidationMessage(err)
		require.True(t, ok, body)
		assert.Equal(t, "Invalid status. Must be one of Accepted, Rejected, Pending, or Waitlisted", msg)
	}
}

func TestParseLeadFilter(t *testing.T) {
	assert.Equal(t, models.LeadFilter{}, ParseLeadFilter(dto.LeadSearchQuery{}))
	assert.Equal(t, models.LeadFilter{Name: "Jo"}, ParseLeadFilter(dto.LeadSearchQuery{Name: []string{"Jo"}}))
	assert.Equal(t,
		models.LeadFilter{Name: "a,b", Email: "x"},
		ParseLeadFilter(dto.LeadSearchQuery{Name: []string{"a", "b"}, Email: []string{"x"}}),
	)
}

func TestLeadService(t *testing.T) {
	ctx := context.Background()

	t.Run("register", func(t *testing.T) {
		repo := new(mockLeadStore)
		repo.On("Create", ctx, models.RegisterLead{
			CourseID: "3", Name: "Jane", Email: "jane@example.com", Phone: "5550100", LinkedInProfile: "in/jane",
		}).Return(int64(11), nil)

		id, err := NewLeadService(repo).Register(ctx, "3", validRegistration())
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		repo.AssertExpectations(t)
	})

	t.Run("update status of missing lead succeeds", func(t *testing.T) {
		repo := new(mockLeadStore)
		repo.On("UpdateStatus", ctx, models.UpdateLeadStatus{LeadID: "404", Status: models.LeadStatusRejected}).Return(int64(0), nil)

		err := NewLeadService(repo).UpdateStatus(ctx, "404", dto.UpdateLeadStatusRequest{Status: raw(`"Rejected"`)})
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("search passes the joined filter", func(t *testing.T) {
		repo := new(mockLeadStore)
		leads := []*models.Lead{{ID: 1, Name: "John"}}
		repo.On("Search", ctx, models.LeadFilter{Name: "Jo", Email: "a,b"}).Return(leads, nil)

		got, err := NewLeadService(repo).Search(ctx, dto.LeadSearchQuery{Name: []string{"Jo"}, Email: []string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, leads, got)
	})

	t.Run("search storage failure", func(t *testing.T) {
		repo := new(mockLeadStore)
		repo.On("Search", ctx, models.LeadFilter{}).Return(nil, apperrors.NewStorageError("search leads", errors.New("timeout")))

		_, err := NewLeadService(repo).Search(ctx, dto.LeadSearchQuery{})
		assert.True(t, errors.Is(err, apperrors.ErrStorage))
	})
}

package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yigit/courseleads/internal/app/models"
)

type mockCourseStore struct {
	mock.Mock
}

func (m *mockCourseStore) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *mockCourseStore) Update(ctx context.Context, update models.UpdateCourse) (int64, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(int64), args.Error(1)
}

type mockLeadStore struct {
	mock.Mock
}

func (m *mockLeadStore) Create(ctx context.Context, lead models.RegisterLead) (int64, error) {
	args := m.Called(ctx, lead)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLeadStore) UpdateStatus(ctx context.Context, update models.UpdateLeadStatus) (int64, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLeadStore) Search(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	args := m.Called(ctx, filter)
	leads, _ := args.Get(0).([]*models.Lead)
	return leads, args.Error(1)
}

type mockCommentStore struct {
	mock.Mock
}

func (m *mockCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

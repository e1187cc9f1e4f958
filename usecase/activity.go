package usecase

import (
	"context"

	"main/model"
)

type ActivityLogService struct {
	ActivityRepo ActivityLogRepository
}

// RecordLogin appends the login audit entry. The write is awaited: the
// login response is not sent until the entry is durable.
func (s *ActivityLogService) RecordLogin(ctx context.Context, email string) error {
	return s.ActivityRepo.AppendEntry(ctx, &model.ActivityLog{
		Email:   email,
		Action:  model.ActionLogin,
		Profile: "",
	})
}

// LogActivity appends an entry for a client-observed action that has no
// persistence write of its own.
func (s *ActivityLogService) LogActivity(ctx context.Context, email, action, profile string) error {
	return s.ActivityRepo.AppendEntry(ctx, &model.ActivityLog{
		Email:   email,
		Action:  action,
		Profile: profile,
	})
}

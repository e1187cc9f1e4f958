package usecase

import (
	"context"

	"main/model"
)

type ProfileInfoService struct {
	ProfileInfoRepo ProfileInfoRepository
	ActivityRepo    ActivityLogRepository
}

// UpdateProfileInfo replaces the contact record for info.Profile with
// exactly the supplied values, then appends an update_profile entry.
// Repeating the same request leaves the same stored state.
func (s *ProfileInfoService) UpdateProfileInfo(ctx context.Context, info *model.ProfileInfo, actorEmail string) error {
	if err := s.ProfileInfoRepo.UpsertProfileInfo(ctx, info); err != nil {
		return err
	}

	return s.ActivityRepo.AppendEntry(ctx, &model.ActivityLog{
		Email:   actorEmail,
		Action:  model.ActionUpdateProfile,
		Profile: info.Profile,
	})
}

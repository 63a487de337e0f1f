package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

// JuniorStaff lists the Junior Staff of the caller's department. Only Staff see anyone.
func (s *Service) JuniorStaff(ctx context.Context, caller entity.User) ([]entity.StaffMember, error) {
	switch caller.Role {
	case entity.RoleStaff:
		if caller.Department == nil || *caller.Department == "" {
			return []entity.StaffMember{}, nil
		}

		return s.users.StaffByRoleAndDepartment(ctx, entity.RoleJuniorStaff, *caller.Department)
	case entity.RoleHigherAuthority, entity.RoleJuniorStaff:
		return []entity.StaffMember{}, nil
	default:
		return []entity.StaffMember{}, nil
	}
}

// UpdateProfile rewrites the caller's editable fields and optionally replaces the profile image.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID uuid.UUID,
	upd entity.ProfileUpdate,
	image *entity.ProfileImage,
) (entity.User, error) {
	err := validateProfile(&upd)
	if err != nil {
		return entity.User{}, err
	}

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return entity.User{}, err
	}

	previousImage := user.ProfileImage

	if image != nil {
		url, err := s.images.SaveProfileImage(ctx, user.ID, image.Data)
		if err != nil {
			return entity.User{}, err
		}

		user.ProfileImage = url
	}

	user.Name = upd.Name
	user.Email = upd.Email
	user.EmpID = upd.EmpID
	user.Department = &upd.Department
	user.Contact = upd.Contact
	user.Address = upd.Address

	updated, err := s.users.UpdateProfile(ctx, user)
	if err != nil {
		if image != nil {
			s.removeImage(ctx, user.ProfileImage)
		}

		return entity.User{}, fmt.Errorf("update profile: %w", err)
	}

	if image != nil && previousImage != "" && previousImage != updated.ProfileImage {
		s.removeImage(ctx, previousImage)
	}

	return updated, nil
}

func (s *Service) removeImage(ctx context.Context, url string) {
	err := s.images.Remove(ctx, url)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete profile image", "image", url, "error", err)
	}
}

func validateProfile(upd *entity.ProfileUpdate) error {
	upd.Name = strings.TrimSpace(upd.Name)
	upd.Email = entity.NormalizeEmail(upd.Email)
	upd.EmpID = strings.TrimSpace(upd.EmpID)
	upd.Department = strings.TrimSpace(upd.Department)
	upd.Contact = strings.TrimSpace(upd.Contact)
	upd.Address = strings.TrimSpace(upd.Address)

	checks := []struct {
		ok  bool
		msg string
	}{
		{upd.Name != "", "Name is required"},
		{ValidateEmail(upd.Email) == nil, "Valid email is required"},
		{upd.EmpID != "", "Employee ID is required"},
		{upd.Department != "", "Department is required"},
		{upd.Contact != "", "Contact is required"},
		{upd.Address != "", "Address is required"},
	}

	for _, c := range checks {
		if !c.ok {
			return entity.NewValidationError(c.msg)
		}
	}

	return nil
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

func TestJuniorStaff(t *testing.T) {
	t.Parallel()

	dept := "Roads"
	empty := ""
	juniors := []entity.StaffMember{{ID: uuid.Must(uuid.NewV4()), Name: "Kiran", Role: entity.RoleJuniorStaff}}

	tests := []struct {
		name       string
		caller     entity.User
		queried    bool
		wantLength int
	}{
		{"staff with department", entity.User{Role: entity.RoleStaff, Department: &dept}, true, 1},
		{"staff without department", entity.User{Role: entity.RoleStaff, Department: &empty}, false, 0},
		{"higher authority", entity.User{Role: entity.RoleHigherAuthority, Department: &dept}, false, 0},
		{"junior staff", entity.User{Role: entity.RoleJuniorStaff, Department: &dept}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, d := newTestService(t)

			if tt.queried {
				d.users.EXPECT().StaffByRoleAndDepartment(gomock.Any(), entity.RoleJuniorStaff, dept).Return(juniors, nil)
			}

			got, err := svc.JuniorStaff(context.Background(), tt.caller)
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Len(t, got, tt.wantLength)
		})
	}
}

func profileUpdate() entity.ProfileUpdate {
	return entity.ProfileUpdate{
		Name:       "Asha",
		Email:      " Asha@Example.com",
		EmpID:      "EMP-1",
		Department: "Water",
		Contact:    "9000000000",
		Address:    "Ward 3",
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(u *entity.ProfileUpdate)
		message string
	}{
		{"missing name", func(u *entity.ProfileUpdate) { u.Name = "" }, "Name is required"},
		{"bad email", func(u *entity.ProfileUpdate) { u.Email = "asha" }, "Valid email is required"},
		{"missing department", func(u *entity.ProfileUpdate) { u.Department = " " }, "Department is required"},
		{"missing address", func(u *entity.ProfileUpdate) { u.Address = "" }, "Address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _ := newTestService(t)
			upd := profileUpdate()
			tt.modify(&upd)

			_, err := svc.UpdateProfile(context.Background(), uuid.Must(uuid.NewV4()), upd, nil)

			var verr *entity.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tt.message, verr.Message)
		})
	}
}

func existingUser() entity.User {
	dept := "Roads"

	return entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Old",
		Email:        "old@example.com",
		Role:         entity.RoleStaff,
		Department:   &dept,
		ProfileImage: "/uploads/profile-images/old.png",
		JoiningDate:  fixedNow.AddDate(-1, 0, 0),
	}
}

func TestUpdateProfile_ReplacesImage(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	user := existingUser()
	image := &entity.ProfileImage{Data: []byte("png-bytes"), Filename: "me.png"}

	d.users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	d.images.EXPECT().SaveProfileImage(gomock.Any(), user.ID, image.Data).Return("/uploads/profile-images/new.png", nil)
	d.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
		require.Equal(t, "asha@example.com", u.Email)
		require.Equal(t, "Water", *u.Department)
		require.Equal(t, user.JoiningDate, u.JoiningDate)
		require.Equal(t, "/uploads/profile-images/new.png", u.ProfileImage)

		return u, nil
	})
	d.images.EXPECT().Remove(gomock.Any(), "/uploads/profile-images/old.png").Return(nil)

	updated, err := svc.UpdateProfile(context.Background(), user.ID, profileUpdate(), image)
	require.NoError(t, err)
	require.Equal(t, "Asha", updated.Name)
}

func TestUpdateProfile_FailedUpdateDropsNewImage(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	user := existingUser()

	d.users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	d.images.EXPECT().SaveProfileImage(gomock.Any(), user.ID, gomock.Any()).Return("/uploads/profile-images/new.png", nil)
	d.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(entity.User{}, entity.ErrEmailTaken)
	d.images.EXPECT().Remove(gomock.Any(), "/uploads/profile-images/new.png").Return(errors.New("gone"))

	_, err := svc.UpdateProfile(context.Background(), user.ID, profileUpdate(), &entity.ProfileImage{Data: []byte("x")})
	require.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestUpdateProfile_WithoutImage(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	user := existingUser()

	d.users.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	d.users.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entity.User) (entity.User, error) {
		return u, nil
	})

	updated, err := svc.UpdateProfile(context.Background(), user.ID, profileUpdate(), nil)
	require.NoError(t, err)
	require.Equal(t, user.ProfileImage, updated.ProfileImage)
}

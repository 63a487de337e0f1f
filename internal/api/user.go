package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/abhay963/Nagar-Sahayata-Portal/internal/entity"
)

const (
	profileImageField = "profileImage"
	multipartOverhead = 1 << 20
)

type UpdateProfileResponse struct {
	UpdatedUser entity.User `json:"updatedUser"`
}

// @Summary Junior staff of my department
// @Description Only Staff receive a non-empty list.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.StaffMember
// @Failure 401 {object} ResponseError
// @Router /api/users/junior-staff [get]
func (h *Handler) JuniorStaff(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	staff, err := h.s.JuniorStaff(r.Context(), caller)
	if err != nil {
		sendErr(r.Context(), w, http.StatusInternalServerError, err, "Server error fetching junior staff")
		return
	}

	sendJSON(r.Context(), w, http.StatusOK, staff)
}

// @Summary Update my profile
// @Tags users
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param empId formData string true "Employee ID"
// @Param department formData string true "Department"
// @Param contact formData string true "Contact"
// @Param address formData string true "Address"
// @Param profileImage formData file false "PNG or JPEG, up to 2MB"
// @Success 200 {object} UpdateProfileResponse
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Router /api/users/update-profile [put]
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := callerFromContext(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+multipartOverhead)

	err := r.ParseMultipartForm(h.maxImageSize + multipartOverhead)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			sendServiceErr(ctx, w, entity.ErrImageTooLarge)
			return
		}

		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid multipart form")

		return
	}

	image, err := h.profileImage(r)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	upd := entity.ProfileUpdate{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		EmpID:      r.FormValue("empId"),
		Department: r.FormValue("department"),
		Contact:    r.FormValue("contact"),
		Address:    r.FormValue("address"),
	}

	user, err := h.s.UpdateProfile(ctx, caller.ID, upd, image)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, UpdateProfileResponse{UpdatedUser: user})
}

// profileImage returns the uploaded image, or nil when the form carries none.
func (h *Handler) profileImage(r *http.Request) (*entity.ProfileImage, error) {
	file, header, err := r.FormFile(profileImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, fmt.Errorf("read profile image: %w", err)
	}
	defer file.Close()

	if header.Size > h.maxImageSize {
		return nil, entity.ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read profile image: %w", err)
	}

	if int64(len(data)) > h.maxImageSize {
		return nil, entity.ErrImageTooLarge
	}

	return &entity.ProfileImage{Data: data, Filename: header.Filename}, nil
}

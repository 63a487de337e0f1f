package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Department   *string   `json:"department,omitempty"`
	Contact      string    `json:"contact"`
	EmpID        string    `json:"empId"`
	Address      string    `json:"address"`
	ProfileImage string    `json:"profileImage"`
	JoiningDate  time.Time `json:"joiningDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session is a user together with a freshly issued token and the page the client should open.
type Session struct {
	User
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

type UserJwtClaims struct {
	ID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

type SignupForm struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	Contact    string
	EmpID      string
	Address    string
	Otp        string
}

type ProfileUpdate struct {
	Name       string
	Email      string
	EmpID      string
	Department string
	Contact    string
	Address    string
}

type StaffMember struct {
	ID   uuid.UUID `json:"_id"`
	Name string    `json:"name"`
	Role Role      `json:"role"`
}

type ProfileImage struct {
	Data     []byte
	Filename string
}

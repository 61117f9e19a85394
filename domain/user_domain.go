package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister     = "registration submitted, waiting for approval"
	MessageSuccessLogin        = "login successful"
	MessageSuccessMe           = "profile retrieved successfully"
	MessageSuccessApproveUser  = "user approved successfully"
	MessageSuccessRejectUser   = "registration rejected"
	MessageSuccessGetUsers     = "users retrieved successfully"
	MessageSuccessToggleAllerg = "allergy preferences updated"

	MessageFailedRegister    = "failed to register"
	MessageFailedLogin       = "failed to login"
	MessageFailedMe          = "failed to retrieve profile"
	MessageFailedApproveUser = "failed to approve user"
	MessageFailedRejectUser  = "failed to reject registration"
	MessageFailedGetUsers    = "failed to retrieve users"
	MessageFailedToggleAller = "failed to update allergy preferences"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongCredentials   = errors.New("wrong username or password")
	ErrAccountNotApproved = errors.New("account is not approved yet")
	ErrUserAlreadyActive  = errors.New("user is already approved")
)

type (
	RegisterRequest struct {
		Username  string `json:"username" validate:"required,min=3"`
		Password  string `json:"password" validate:"required,min=6"`
		Email     string `json:"email" validate:"omitempty,email"`
		FullName  string `json:"full_name" validate:"required"`
		ClassName string `json:"class_name"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Username   string    `json:"username"`
		Email      string    `json:"email,omitempty"`
		Role       string    `json:"role"`
		Balance    float64   `json:"balance"`
		FullName   string    `json:"full_name"`
		ClassName  string    `json:"class_name,omitempty"`
		IsApproved bool      `json:"is_approved"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ToggleAllergyRequest struct {
		AllergyID string `json:"allergy_id" validate:"required,uuid"`
	}

	CreateAllergyRequest struct {
		Name string `json:"name" validate:"required"`
	}

	AllergyResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Selected bool   `json:"selected,omitempty"`
	}
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/my-group/internal/logger"
	"github.com/MKhiriev/my-group/internal/store"
	"github.com/MKhiriev/my-group/internal/utils"
	"github.com/MKhiriev/my-group/models"
)

const (
	maxUsernameLength = 100
	minPasswordLength = 6
)

// IDGenerator produces identifiers for new accounts.
type IDGenerator interface {
	Generate() string
}

type userService struct {
	userRepository store.UserRepository
	hasher         PasswordHasher
	ids            IDGenerator

	logger *logger.Logger
}

// NewUserService builds the provisioning and hierarchy service.
func NewUserService(userRepository store.UserRepository, hasher PasswordHasher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		logger:         logger,
	}
}

// CreateUser provisions a new account attributed to actor.
//
// Anonymous callers may only register USER accounts. Authenticated callers
// create exactly the role beneath their own: SUPER_ADMIN creates CORPORATE,
// CORPORATE creates BRANCH. The created_by value supplied by the caller is
// ignored, the actor is always the creator.
func (s *userService) CreateUser(ctx context.Context, actor *models.Principal, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	if err := validateCreateUser(req); err != nil {
		return models.User{}, err
	}

	var createdBy *string
	if actor == nil {
		if !req.Role.SelfRegistrable() {
			return models.User{}, fmt.Errorf("%w: anonymous callers may only register %s accounts", ErrForbidden, models.RoleUser)
		}
	} else {
		creator, err := s.activeActor(ctx, actor)
		if err != nil {
			return models.User{}, err
		}
		if !creator.Role.CanCreate(req.Role) {
			return models.User{}, fmt.Errorf("%w: %s cannot create %s accounts", ErrForbidden, creator.Role, req.Role)
		}
		createdBy = &creator.UserID
	}

	var profile *models.ProfileFields
	req.ProfileFields = normalizeProfile(req.ProfileFields)
	if !req.ProfileFields.IsEmpty() {
		if err := validateProfile(req.ProfileFields); err != nil {
			return models.User{}, err
		}
		fields := req.ProfileFields
		if fields.DisplayName == nil {
			fields.DisplayName = &req.Username
		}
		profile = &fields
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: password hashing failed: %w", ErrInternal, err)
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		UserID:       s.ids.Generate(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		CreatedBy:    createdBy,
		IsActive:     true,
	}, profile)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Str("user_id", created.UserID).Str("role", created.Role.String()).Msg("user created")
	return created.Sanitized(), nil
}

// EnsureRootAdmin creates the bootstrap SUPER_ADMIN account.
func (s *userService) EnsureRootAdmin(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if err := validateCreateUser(models.CreateUserRequest{Username: username, Password: password, Role: models.RoleSuperAdmin}); err != nil {
		return false, err
	}

	exists, err := s.userRepository.UsernameExists(ctx, username)
	if err != nil {
		return false, mapStoreError(err)
	}
	if exists {
		return false, nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("%w: password hashing failed: %w", ErrInternal, err)
	}

	_, err = s.userRepository.CreateUser(ctx, models.User{
		UserID:       s.ids.Generate(),
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
	}, nil)
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.EnsureRootAdmin").Msg("root admin creation failed")
		return false, mapStoreError(err)
	}

	return true, nil
}

// ListByCreator returns the accounts created directly by creatorID.
// Only SUPER_ADMIN may list everything or another creator's accounts.
func (s *userService) ListByCreator(ctx context.Context, actor *models.Principal, creatorID *string) ([]models.User, error) {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return nil, err
	}

	if creatorID != nil {
		if !utils.IsUUID(*creatorID) {
			return nil, validationError("creator id is not a valid identifier")
		}
		if *creatorID != current.UserID && current.Role != models.RoleSuperAdmin {
			return nil, fmt.Errorf("%w: only the creator may list its accounts", ErrForbidden)
		}
	} else if current.Role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: only %s may list every account", ErrForbidden, models.RoleSuperAdmin)
	}

	users, err := s.userRepository.ListUsersByCreator(ctx, creatorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListByCreator").Msg("listing users failed")
		return nil, mapStoreError(err)
	}

	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// GetUser returns one account to itself, its creator or a SUPER_ADMIN.
func (s *userService) GetUser(ctx context.Context, actor *models.Principal, userID string) (models.User, error) {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return models.User{}, err
	}

	target, err := s.findTarget(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if target.UserID != current.UserID && !manages(current, target) {
		return models.User{}, fmt.Errorf("%w: account is outside of the caller's hierarchy", ErrForbidden)
	}

	return target.Sanitized(), nil
}

// UpdateStatus activates or deactivates an account. Only its creator or a
// SUPER_ADMIN may change it and nobody may deactivate their own account.
func (s *userService) UpdateStatus(ctx context.Context, actor *models.Principal, userID string, isActive bool) (models.User, error) {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return models.User{}, err
	}

	target, err := s.findTarget(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if target.UserID == current.UserID {
		return models.User{}, fmt.Errorf("%w: own status cannot be changed", ErrForbidden)
	}
	if !manages(current, target) {
		return models.User{}, fmt.Errorf("%w: only the creator may change the status", ErrForbidden)
	}

	updated, err := s.userRepository.UpdateUserStatus(ctx, target.UserID, isActive)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateStatus").Str("user_id", target.UserID).Msg("status update failed")
		return models.User{}, mapStoreError(err)
	}

	return updated.Sanitized(), nil
}

// UpsertProfile replaces the profile of profile.UserID. The account itself,
// its creator and SUPER_ADMIN may write it.
func (s *userService) UpsertProfile(ctx context.Context, actor *models.Principal, profile models.UserProfile) (models.UserProfile, error) {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile.UserID = strings.TrimSpace(profile.UserID)
	if profile.UserID == "" {
		return models.UserProfile{}, validationError("userId is required")
	}
	profile.ProfileFields = normalizeProfile(profile.ProfileFields)
	if err = validateProfile(profile.ProfileFields); err != nil {
		return models.UserProfile{}, err
	}

	target, err := s.findTarget(ctx, profile.UserID)
	if errors.Is(err, ErrNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: user %s does not exist", ErrInvalidReference, profile.UserID)
	}
	if err != nil {
		return models.UserProfile{}, err
	}

	if target.UserID != current.UserID && !manages(current, target) {
		return models.UserProfile{}, fmt.Errorf("%w: account is outside of the caller's hierarchy", ErrForbidden)
	}

	stored, err := s.userRepository.UpsertProfile(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpsertProfile").Str("user_id", profile.UserID).Msg("profile upsert failed")
		return models.UserProfile{}, mapStoreError(err)
	}

	return stored, nil
}

// DeleteUser removes an account that has not created any other account.
func (s *userService) DeleteUser(ctx context.Context, actor *models.Principal, userID string) error {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return err
	}

	target, err := s.findTarget(ctx, userID)
	if err != nil {
		return err
	}

	if target.UserID == current.UserID {
		return fmt.Errorf("%w: own account cannot be deleted", ErrForbidden)
	}
	if !manages(current, target) {
		return fmt.Errorf("%w: only the creator may delete the account", ErrForbidden)
	}

	if err = s.userRepository.DeleteUser(ctx, target.UserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Str("user_id", target.UserID).Msg("user deletion failed")
		return mapStoreError(err)
	}

	return nil
}

// ChangePassword replaces the caller's own password after verifying the
// current one.
func (s *userService) ChangePassword(ctx context.Context, actor *models.Principal, userID string, req models.ChangePasswordRequest) error {
	current, err := s.activeActor(ctx, actor)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return fmt.Errorf("%w: only the account owner may change its password", ErrForbidden)
	}

	if req.CurrentPassword == "" {
		return validationError("current password is required")
	}
	if utf8.RuneCountInString(req.NewPassword) < minPasswordLength {
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if err = s.hasher.Compare(current.PasswordHash, req.CurrentPassword); err != nil {
		return ErrInvalidCredential
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%w: password hashing failed: %w", ErrInternal, err)
	}

	if err = s.userRepository.UpdatePasswordHash(ctx, current.UserID, hash); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ChangePassword").Str("user_id", current.UserID).Msg("password update failed")
		return mapStoreError(err)
	}

	return nil
}

// activeActor reloads the caller. A token outlives deactivation and role
// changes, so the stored row is authoritative.
func (s *userService) activeActor(ctx context.Context, actor *models.Principal) (models.User, error) {
	if actor == nil || actor.UserID == "" {
		return models.User{}, ErrUnauthenticated
	}
	if !utils.IsUUID(actor.UserID) {
		return models.User{}, fmt.Errorf("%w: malformed subject", ErrUnauthenticated)
	}

	user, err := s.userRepository.FindUserByID(ctx, actor.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("%w: account no longer exists", ErrUnauthenticated)
	}
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	if !user.IsActive {
		return models.User{}, fmt.Errorf("%w: account is inactive", ErrUnauthenticated)
	}

	return user, nil
}

func (s *userService) findTarget(ctx context.Context, userID string) (models.User, error) {
	if !utils.IsUUID(userID) {
		return models.User{}, fmt.Errorf("%w: user %q", ErrNotFound, userID)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}
	return user, nil
}

// manages reports whether actor may administer target.
func manages(actor, target models.User) bool {
	if actor.Role == models.RoleSuperAdmin {
		return true
	}
	return target.CreatedBy != nil && *target.CreatedBy == actor.UserID
}

func validateCreateUser(req models.CreateUserRequest) error {
	switch {
	case req.Username == "":
		return validationError("username is required")
	case utf8.RuneCountInString(req.Username) > maxUsernameLength:
		return validationError(fmt.Sprintf("username must be at most %d characters", maxUsernameLength))
	case req.Password == "":
		return validationError("password is required")
	case utf8.RuneCountInString(req.Password) < minPasswordLength:
		return validationError(fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	case req.Role == "":
		return validationError("role is required")
	case !req.Role.Valid():
		return validationError(fmt.Sprintf("unknown role %q", req.Role))
	}
	return nil
}

// normalizeProfile trims text attributes and clears the blank ones.
func normalizeProfile(p models.ProfileFields) models.ProfileFields {
	for _, field := range []**string{
		&p.DisplayName, &p.FullName, &p.EmailID, &p.Gender, &p.MaritalStatus,
		&p.Nationality, &p.Education, &p.Profession, &p.DateOfBirth,
	} {
		if *field == nil {
			continue
		}
		v := strings.TrimSpace(**field)
		if v == "" {
			*field = nil
			continue
		}
		*field = &v
	}
	return p
}

func validateProfile(p models.ProfileFields) error {
	if p.DateOfBirth != nil {
		if _, err := time.Parse(models.DateOfBirthLayout, *p.DateOfBirth); err != nil {
			return validationError("date_of_birth must use the YYYY-MM-DD layout")
		}
	}
	if p.EmailID != nil && !strings.Contains(*p.EmailID, "@") {
		return validationError("email_id is not a valid address")
	}
	return nil
}

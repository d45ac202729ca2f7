// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProfileFields are the optional personal attributes of an account.
// DateOfBirth uses the YYYY-MM-DD layout.
type ProfileFields struct {
	DisplayName   *string `json:"display_name,omitempty"`
	FullName      *string `json:"full_name,omitempty"`
	EmailID       *string `json:"email_id,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	Education     *string `json:"education,omitempty"`
	Profession    *string `json:"profession,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	CountryID     *int64  `json:"country_id,omitempty"`
	StateID       *int64  `json:"state_id,omitempty"`
	DistrictID    *int64  `json:"district_id,omitempty"`
}

// DateOfBirthLayout is the wire and storage layout of ProfileFields.DateOfBirth.
const DateOfBirthLayout = "2006-01-02"

// IsEmpty reports whether no profile attribute is set.
func (p ProfileFields) IsEmpty() bool {
	return p.DisplayName == nil &&
		p.FullName == nil &&
		p.EmailID == nil &&
		p.Gender == nil &&
		p.MaritalStatus == nil &&
		p.Nationality == nil &&
		p.Education == nil &&
		p.Profession == nil &&
		p.DateOfBirth == nil &&
		p.CountryID == nil &&
		p.StateID == nil &&
		p.DistrictID == nil
}

// UserProfile is the one-to-one profile row of an account.
type UserProfile struct {
	UserID string `json:"user_id"`
	ProfileFields
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the body of the profile upsert call. The whole
// field set is replaced, omitted attributes are cleared.
type UpdateProfileRequest struct {
	UserID string `json:"userId"`
	ProfileFields
}

// Profile returns the request as a storable profile.
func (r UpdateProfileRequest) Profile() UserProfile {
	return UserProfile{UserID: r.UserID, ProfileFields: r.ProfileFields}
}

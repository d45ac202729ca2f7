// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Continent is the top level of the location reference hierarchy.
type Continent struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Country belongs to a continent. ContinentName is filled on reads.
type Country struct {
	ID            int64     `json:"id"`
	ContinentID   int64     `json:"continent_id"`
	ContinentName string    `json:"continent_name,omitempty"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Currency      *string   `json:"currency"`
	FlagImage     *string   `json:"flag_image"`
	ISOCode       *string   `json:"iso_code"`
	Nationality   *string   `json:"nationality"`
	DisplayOrder  int       `json:"display_order"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// State belongs to a country.
type State struct {
	ID           int64     `json:"id"`
	CountryID    int64     `json:"country_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// District belongs to a state.
type District struct {
	ID           int64     `json:"id"`
	StateID      int64     `json:"state_id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// LocationFilter narrows location listings.
// A nil ParentID lists every row of the level.
type LocationFilter struct {
	ParentID   *int64
	ActiveOnly bool
}

// ContinentNode is a continent with its active descendants.
type ContinentNode struct {
	Continent
	Countries []CountryNode `json:"countries"`
}

// CountryNode is a country with its active descendants.
type CountryNode struct {
	Country
	States []StateNode `json:"states"`
}

// StateNode is a state with its active districts.
type StateNode struct {
	State
	Districts []District `json:"districts"`
}

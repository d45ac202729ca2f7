// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the projection scanned by scanUser.
var userColumns = []string{
	"u.id",
	"u.username",
	"u.password_hash",
	"u.role",
	"u.created_by",
	"u.is_active",
	"u.created_on",
	"p.full_name",
	"p.display_name",
	"p.email_id",
}

const (
	createUser = `
		INSERT INTO users (id, username, password_hash, role, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, username, password_hash, role, created_by, is_active, created_on;`

	createUserProfile = `
		INSERT INTO user_profiles (
			user_id, display_name, full_name, email_id, gender, marital_status,
			nationality, education, profession, date_of_birth, country_id, state_id, district_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11, $12, $13);`

	findUserByUsername = `
		SELECT u.id, u.username, u.password_hash, u.role, u.created_by, u.is_active, u.created_on,
		       p.full_name, p.display_name, p.email_id
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.username = $1 AND u.is_active = TRUE;`

	findUserByID = `
		SELECT u.id, u.username, u.password_hash, u.role, u.created_by, u.is_active, u.created_on,
		       p.full_name, p.display_name, p.email_id
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		WHERE u.id = $1;`

	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	updateUserStatus = `
		WITH updated AS (
			UPDATE users SET is_active = $2, updated_at = now()
			WHERE id = $1
			RETURNING id, username, password_hash, role, created_by, is_active, created_on
		)
		SELECT u.id, u.username, u.password_hash, u.role, u.created_by, u.is_active, u.created_on,
		       p.full_name, p.display_name, p.email_id
		FROM updated u
		LEFT JOIN user_profiles p ON p.user_id = u.id;`

	updatePasswordHash = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1;`

	upsertUserProfile = `
		INSERT INTO user_profiles (
			user_id, display_name, full_name, email_id, gender, marital_status,
			nationality, education, profession, date_of_birth, country_id, state_id, district_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::date, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name   = EXCLUDED.display_name,
			full_name      = EXCLUDED.full_name,
			email_id       = EXCLUDED.email_id,
			gender         = EXCLUDED.gender,
			marital_status = EXCLUDED.marital_status,
			nationality    = EXCLUDED.nationality,
			education      = EXCLUDED.education,
			profession     = EXCLUDED.profession,
			date_of_birth  = EXCLUDED.date_of_birth,
			country_id     = EXCLUDED.country_id,
			state_id       = EXCLUDED.state_id,
			district_id    = EXCLUDED.district_id,
			updated_at     = now()
		RETURNING user_id, display_name, full_name, email_id, gender, marital_status,
		          nationality, education, profession, to_char(date_of_birth, 'YYYY-MM-DD'),
		          country_id, state_id, district_id, updated_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

const (
	createContinent = `
		INSERT INTO continents (code, name, display_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, code, name, display_order, is_active, created_at, updated_at;`

	updateContinent = `
		UPDATE continents SET code = $2, name = $3, display_order = $4, is_active = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, code, name, display_order, is_active, created_at, updated_at;`

	deleteContinent = `DELETE FROM continents WHERE id = $1;`

	getCountry = `
		SELECT c.id, c.continent_id, ct.name, c.code, c.name, c.currency, c.flag_image, c.iso_code, c.nationality,
		       c.display_order, c.is_active, c.created_at, c.updated_at
		FROM countries c
		JOIN continents ct ON ct.id = c.continent_id
		WHERE c.id = $1;`

	createCountry = `
		INSERT INTO countries (continent_id, code, name, currency, flag_image, iso_code, nationality, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, continent_id, code, name, currency, flag_image, iso_code, nationality,
		          display_order, is_active, created_at, updated_at;`

	updateCountry = `
		UPDATE countries
		SET continent_id = $2, code = $3, name = $4, currency = $5, flag_image = $6, iso_code = $7,
		    nationality = $8, display_order = $9, is_active = $10, updated_at = now()
		WHERE id = $1
		RETURNING id, continent_id, code, name, currency, flag_image, iso_code, nationality,
		          display_order, is_active, created_at, updated_at;`

	deleteCountry = `DELETE FROM countries WHERE id = $1;`

	createState = `
		INSERT INTO states (country_id, code, name, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, country_id, code, name, display_order, is_active, created_at;`

	createDistrict = `
		INSERT INTO districts (state_id, code, name, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, state_id, code, name, display_order, is_active, created_at;`
)

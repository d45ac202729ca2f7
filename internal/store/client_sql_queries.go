// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveLocalSession = `
		INSERT INTO client_session (id, payload, signature, mode, saved_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			payload   = excluded.payload,
			signature = excluded.signature,
			mode      = excluded.mode,
			saved_at  = excluded.saved_at;`

	loadLocalSession = `SELECT payload, signature, mode FROM client_session WHERE id = 1;`

	clearLocalSession = `DELETE FROM client_session;`
)

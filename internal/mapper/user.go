package mapper

import (
	"jetfleet-backoffice/internal/domain"
	"jetfleet-backoffice/internal/persistence"
)

func MapRecordToUser(rec persistence.Record) domain.User {
	return domain.User{
		ID:           stringField(rec, "id"),
		Email:        trimmedField(rec, "email"),
		Name:         stringField(rec, "full_name"),
		Roles:        parseRoles(stringField(rec, "roles")),
		Active:       boolFieldDefaultTrue(rec, "is_active"),
		AvatarURL:    stringField(rec, "avatar_url"),
		PasswordHash: stringField(rec, "password"),
	}
}

func MapUserToRecord(u domain.User) persistence.Record {
	rec := persistence.Record{
		"email":      u.Email,
		"full_name":  u.Name,
		"roles":      joinRoles(u.Roles),
		"is_active":  u.Active,
		"avatar_url": u.AvatarURL,
	}
	if u.ID != "" {
		rec["id"] = u.ID
	}
	// Edit forms never carry the credential; an empty hash must not
	// overwrite the stored one.
	if u.PasswordHash != "" {
		rec["password"] = u.PasswordHash
	}
	return rec
}

package jsonfile

import (
	"context"
	"crypto/subtle"

	"github.com/nicodelloro-arg/Employees/internal/model"
)

var _ model.CredentialStore = (*CredentialRepository)(nil)

// CredentialRepository validates credentials stored in the directory document.
type CredentialRepository struct {
	store model.DirectoryStore
}

func NewCredentialRepository(store model.DirectoryStore) *CredentialRepository {
	return &CredentialRepository{store: store}
}

// Validate returns the credential matching both username and password,
// or ErrAuthenticationFailed.
func (r *CredentialRepository) Validate(ctx context.Context, username, password string) (model.Credential, error) {
	directory, err := r.store.Load(ctx)
	if err != nil {
		return model.Credential{}, err
	}

	for _, c := range directory.Users {
		if equalStrings(c.Username, username) && equalStrings(c.Password, password) {
			return c, nil
		}
	}

	return model.Credential{}, model.ErrAuthenticationFailed
}

func equalStrings(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

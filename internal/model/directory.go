package model

import "context"

// DirectoryStore loads and saves the whole directory document.
type DirectoryStore interface {
	Load(ctx context.Context) (Directory, error)
	Save(ctx context.Context, directory Directory) error
}

// CredentialStore validates API credentials.
type CredentialStore interface {
	Validate(ctx context.Context, username, password string) (Credential, error)
}

// Directory is the persisted document: credentials and employees.
type Directory struct {
	Users     []Credential `json:"users"`
	Employees []Employee   `json:"employees"`
}

// Credential is a username/password pair allowed to call the API.
type Credential struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

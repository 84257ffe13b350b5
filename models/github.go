package models

import "fmt"

// GitHubRepo identifies a public repository by owner and name.
type GitHubRepo struct {
	Owner string
	Name  string
}

// String returns the canonical https URL of the repository.
func (r GitHubRepo) String() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Owner, r.Name)
}

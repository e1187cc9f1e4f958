package config

import (
	"strings"

	"main/services"
	"main/utils"
)

const defaultTeamPassword = "teamaccess123"

// defaultTeamMembers is the built-in allow-list, email -> role. Overridable
// via the TEAM_MEMBERS environment variable ("email:Role,email:Role").
var defaultTeamMembers = map[string]string{
	"savan.deodap@gmail.com":       "Admin",
	"sakilsanna.deodap@gmail.com":  "Admin",
	"jay.deodap1@gmail.com":        "Editor",
	"karanrawal.deodap@gmail.com":  "Editor",
	"palakvasoya.deodap@gmail.com": "Editor",
	"socialmedia.deodap@gmail.com": "Editor",
}

// AuthConfig carries the allow-list and the shared team secret. Handlers and
// middleware receive it explicitly so tests can substitute their own.
type AuthConfig struct {
	Members      map[string]string
	PasswordHash string
}

func LoadAuthConfig() (*AuthConfig, error) {
	hash, err := services.HashPassword(utils.GetEnvAsString("TEAM_ACCESS_PASSWORD", defaultTeamPassword))
	if err != nil {
		return nil, err
	}

	return &AuthConfig{
		Members:      parseTeamMembers(utils.GetEnvAsString("TEAM_MEMBERS", "")),
		PasswordHash: hash,
	}, nil
}

func parseTeamMembers(raw string) map[string]string {
	if raw == "" {
		members := make(map[string]string, len(defaultTeamMembers))
		for email, role := range defaultTeamMembers {
			members[email] = role
		}
		return members
	}

	members := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		email, role, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || email == "" {
			continue
		}
		members[email] = role
	}
	return members
}

// IsAuthorized reports whether the claimed identity is on the allow-list.
func (c *AuthConfig) IsAuthorized(email string) bool {
	_, ok := c.Members[email]
	return ok
}

// RoleFor returns the role mapped to an identity, if any.
func (c *AuthConfig) RoleFor(email string) (string, bool) {
	role, ok := c.Members[email]
	return role, ok
}

// VerifyPassword checks a login attempt against the shared team secret.
func (c *AuthConfig) VerifyPassword(password string) bool {
	return services.ComparePasswords(c.PasswordHash, password)
}

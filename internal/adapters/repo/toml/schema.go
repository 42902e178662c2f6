package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version        int             `toml:"version"`
	Authenticated  bool            `toml:"authenticated"`
	Token          string          `toml:"token,omitempty"`
	User           *userSchema     `toml:"user,omitempty"`
	Accounts       []accountSchema `toml:"accounts,omitempty"`
	CurrentAccount *accountSchema  `toml:"current_account,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type userSchema struct {
	Name          string `toml:"name"`
	Document      string `toml:"document"`
	PhoneNumber   string `toml:"phone_number"`
	BirthDate     string `toml:"birth_date"`
	Email         string `toml:"email"`
	InvestorLevel string `toml:"investor_level"`
}

type accountSchema struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

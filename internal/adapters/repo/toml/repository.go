// Package toml persists the client session to a TOML file under the
// user's fincli config directory. Writes are atomic (temp file plus
// rename) and the file stays 0600 since it holds a bearer token.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ffdias/fincli/internal/domain"
	"github.com/ffdias/fincli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	sessionPathKey    = "session.path"
	sessionFileMode   = 0o600
	sessionDirMode    = 0o700
	sessionConfigDir  = ".fincli"
	sessionConfigFile = "session.toml"
	tempFilePattern   = ".session-*.toml.tmp"
)

type Repository struct {
	sessionPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, sessionConfigDir, sessionConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, sessionConfigDir))
	cfg.SetDefault(sessionPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	sessionPath := cfg.GetString(sessionPathKey)
	if sessionPath == "" {
		return nil, errors.New("session path is empty")
	}
	sessionPath, err = normalizeSessionPath(sessionPath)
	if err != nil {
		return nil, err
	}

	return &Repository{sessionPath: sessionPath, mu: lockForPath(sessionPath)}, nil
}

// Load reads the persisted session. A missing file yields a zero
// session so first runs start unauthenticated.
func (r *Repository) Load(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Session{}, err
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

// Save replaces the persisted session with the given one.
func (r *Repository) Save(ctx context.Context, session domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(session))
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.sessionPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read session file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode session file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.sessionPath), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp session file: %w", err)
	}

	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp session file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionPath); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.sessionPath, sessionFileMode); err != nil {
		return fmt.Errorf("chmod session file: %w", err)
	}

	return nil
}

func toSchema(session domain.Session) fileSchema {
	file := fileSchema{
		Version:       currentSchemaVersion,
		Authenticated: session.Authenticated,
		Token:         session.Token,
	}

	if session.User != nil {
		file.User = &userSchema{
			Name:          session.User.Name,
			Document:      session.User.Document,
			PhoneNumber:   session.User.PhoneNumber,
			BirthDate:     session.User.BirthDate,
			Email:         session.User.Email,
			InvestorLevel: string(session.User.InvestorLevel),
		}
	}

	for _, account := range session.Accounts {
		file.Accounts = append(file.Accounts, accountSchema{
			ID:   string(account.ID),
			Name: account.Name,
		})
	}

	if session.CurrentAccount != nil {
		file.CurrentAccount = &accountSchema{
			ID:   string(session.CurrentAccount.ID),
			Name: session.CurrentAccount.Name,
		}
	}

	return file
}

func fromSchema(file fileSchema) domain.Session {
	session := domain.Session{
		Authenticated: file.Authenticated,
		Token:         file.Token,
	}

	if file.User != nil {
		session.User = &domain.User{
			Name:          file.User.Name,
			Document:      file.User.Document,
			PhoneNumber:   file.User.PhoneNumber,
			BirthDate:     file.User.BirthDate,
			Email:         file.User.Email,
			InvestorLevel: domain.InvestorLevel(file.User.InvestorLevel),
		}
	}

	for _, account := range file.Accounts {
		session.Accounts = append(session.Accounts, domain.Account{
			ID:   domain.AccountID(account.ID),
			Name: account.Name,
		})
	}

	if file.CurrentAccount != nil {
		session.CurrentAccount = &domain.Account{
			ID:   domain.AccountID(file.CurrentAccount.ID),
			Name: file.CurrentAccount.Name,
		}
	}

	return session
}

func normalizeSessionPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve session path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// Package profile stores named credential sets in a TOML file so sandbox
// runs don't need six exported variables every time. Environment variables
// always take precedence over profile values.
package profile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nloira/criblprobe/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	profilesPathKey  = "profiles.path"
	profilesFileMode = 0o600
	profilesDirMode  = 0o700
	configDirName    = "criblprobe"
	profilesFileName = "profiles.toml"
	tempFilePattern  = ".profiles-*.toml.tmp"
)

type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore resolves the profiles file location. An optional config file in
// the same directory may override it via the "profiles.path" key.
func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config directory: %w", err)
	}

	defaultPath := filepath.Join(configDir, configDirName, profilesFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(configDir, configDirName))
	cfg.SetDefault(profilesPathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	path := cfg.GetString(profilesPathKey)
	if path == "" {
		return nil, errors.New("profiles path is empty")
	}

	return &Store{path: path}, nil
}

type profileSchema struct {
	OrgID         string `toml:"org_id,omitempty"`
	ClientID      string `toml:"client_id,omitempty"`
	ClientSecret  string `toml:"client_secret,omitempty"`
	WorkspaceName string `toml:"workspace_name,omitempty"`
	ServerURL     string `toml:"server_url,omitempty"`
	BearerToken   string `toml:"bearer_token,omitempty"`
}

type fileSchema struct {
	Version  int                      `toml:"version"`
	Profiles map[string]profileSchema `toml:"profiles"`
}

func (f *fileSchema) applyDefaults() {
	if f.Version == 0 {
		f.Version = 1
	}
	if f.Profiles == nil {
		f.Profiles = map[string]profileSchema{}
	}
}

func (s *Store) Get(ctx context.Context, name string) (domain.Credentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readFile()
	if err != nil {
		return domain.Credentials{}, err
	}

	profile, ok := file.Profiles[name]
	if !ok {
		return domain.Credentials{}, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, name)
	}

	return fromSchema(profile), nil
}

func (s *Store) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readFile()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (s *Store) Save(ctx context.Context, name string, creds domain.Credentials) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readFile()
	if err != nil {
		return err
	}
	file.applyDefaults()
	file.Profiles[name] = toSchema(creds)

	return s.writeFile(file)
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.readFile()
	if err != nil {
		return err
	}

	if _, ok := file.Profiles[name]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrProfileNotFound, name)
	}

	delete(file.Profiles, name)

	return s.writeFile(file)
}

func (s *Store) readFile() (fileSchema, error) {
	var file fileSchema

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read profiles file: %w", err)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profiles file: %w", err)
	}
	file.applyDefaults()

	return file, nil
}

func (s *Store) writeFile(file fileSchema) error {
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profiles file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, profilesDirMode); err != nil {
		return fmt.Errorf("create profiles directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profiles file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp profiles file: %w", err)
	}
	if err := temp.Chmod(profilesFileMode); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("chmod temp profiles file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp profiles file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace profiles file: %w", err)
	}

	return nil
}

func toSchema(creds domain.Credentials) profileSchema {
	return profileSchema{
		OrgID:         creds.OrgID,
		ClientID:      creds.ClientID,
		ClientSecret:  creds.ClientSecret,
		WorkspaceName: creds.WorkspaceName,
		ServerURL:     creds.ServerURL,
		BearerToken:   creds.BearerToken,
	}
}

func fromSchema(profile profileSchema) domain.Credentials {
	return domain.Credentials{
		OrgID:         profile.OrgID,
		ClientID:      profile.ClientID,
		ClientSecret:  profile.ClientSecret,
		WorkspaceName: profile.WorkspaceName,
		ServerURL:     profile.ServerURL,
		BearerToken:   profile.BearerToken,
	}
}

// FILE: lixenwraith/envconf/vault.go
package envconf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	vault "github.com/hashicorp/vault/api"
)

// VaultStore is a CredentialStore reading keys of a single KV-v2 secret.
// The secret is read once per store and shared by every credential.
type VaultStore struct {
	api   *vault.Client
	mount string
	path  string

	mu   sync.Mutex
	data map[string]any
}

// NewVaultStore reads credentials from the secret at mount/path through client.
func NewVaultStore(client *vault.Client, mount, path string) (*VaultStore, error) {
	if client == nil {
		return nil, errors.New("vault client must be non-nil")
	}
	mount = strings.Trim(mount, "/")
	path = strings.Trim(path, "/")
	if mount == "" || path == "" {
		return nil, errors.New("vault mount and secret path must be non-empty")
	}
	return &VaultStore{api: client, mount: mount, path: path}, nil
}

// NewVaultStoreFromEnv builds the client from VAULT_ADDR, VAULT_TOKEN and the
// other standard Vault environment variables.
func NewVaultStoreFromEnv(mount, path string) (*VaultStore, error) {
	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	client, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		client.SetToken(tok)
	}

	return NewVaultStore(client, mount, path)
}

// Fetch returns the string stored under name in the secret.
func (v *VaultStore) Fetch(ctx context.Context, name string) (string, error) {
	data, err := v.secret(ctx)
	if err != nil {
		return "", err
	}

	raw, ok := data[name]
	if !ok {
		return "", fmt.Errorf("%w: %s in %s/%s", ErrCredentialNotFound, name, v.mount, v.path)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s/%s#%s is %T, not a string", ErrTypeMismatch, v.mount, v.path, name, raw)
	}
	return s, nil
}

func (v *VaultStore) secret(ctx context.Context) (map[string]any, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.data != nil {
		return v.data, nil
	}

	sec, err := v.api.KVv2(v.mount).Get(ctx, v.path)
	if err != nil {
		if errors.Is(err, vault.ErrSecretNotFound) {
			return nil, fmt.Errorf("%w: secret %s/%s", ErrCredentialNotFound, v.mount, v.path)
		}
		return nil, fmt.Errorf("vault get %s/%s: %w", v.mount, v.path, err)
	}

	v.data = sec.Data
	if v.data == nil {
		v.data = make(map[string]any)
	}
	return v.data, nil
}

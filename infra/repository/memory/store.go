// Package memory implements the storage ports on an in-process key-value map
// using the same key layout as the persistent store: alias/<name>,
// owner/<identity> and config.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"github.com/amirasaad/aliasregistry/pkg/repository"
)

const (
	aliasPrefix = "alias/"
	ownerPrefix = "owner/"
	configKey   = "config"
)

type kv interface {
	get(key string) ([]byte, bool)
	put(key string, value []byte)
	del(key string)
}

// Store is a thread-safe prefixed key-value store.
type Store struct {
	mu   sync.Mutex
	data map[string][]byte
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Len returns the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// Keys returns a snapshot of every stored key.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// direct applies every call to the store immediately.
type direct struct {
	s *Store
}

func (d direct) get(key string) ([]byte, bool) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	v, ok := d.s.data[key]
	return v, ok
}

func (d direct) put(key string, value []byte) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	d.s.data[key] = value
}

func (d direct) del(key string) {
	d.s.mu.Lock()
	defer d.s.mu.Unlock()
	delete(d.s.data, key)
}

// batch buffers writes over a base map the caller has locked. A nil value
// marks a deletion.
type batch struct {
	base   map[string][]byte
	writes map[string][]byte
}

func (b *batch) get(key string) ([]byte, bool) {
	if v, ok := b.writes[key]; ok {
		return v, v != nil
	}
	v, ok := b.base[key]
	return v, ok
}

func (b *batch) put(key string, value []byte) {
	b.writes[key] = value
}

func (b *batch) del(key string) {
	b.writes[key] = nil
}

func (b *batch) commit() {
	for k, v := range b.writes {
		if v == nil {
			delete(b.base, k)
			continue
		}
		b.base[k] = v
	}
}

// UoW is the in-memory unit of work. Do holds the store lock for the whole
// callback, so transactions are serialized.
type UoW struct {
	store *Store
	kv    kv
}

// NewUoW returns a unit of work over s.
func NewUoW(s *Store) *UoW {
	return &UoW{store: s, kv: direct{s: s}}
}

// Do runs fn against a write buffer that is applied only when fn succeeds.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	b := &batch{base: u.store.data, writes: make(map[string][]byte)}
	if err := fn(&UoW{store: u.store, kv: b}); err != nil {
		return err
	}
	b.commit()
	return nil
}

// AliasIndex returns the alias index bound to this unit of work.
func (u *UoW) AliasIndex() (repository.AliasIndex, error) {
	return &aliasIndex{kv: u.kv}, nil
}

// OwnerIndex returns the owner index bound to this unit of work.
func (u *UoW) OwnerIndex() (repository.OwnerIndex, error) {
	return &ownerIndex{kv: u.kv}, nil
}

// ConfigStore returns the configuration store bound to this unit of work.
func (u *UoW) ConfigStore() (repository.ConfigStore, error) {
	return &configStore{kv: u.kv}, nil
}

type aliasIndex struct {
	kv kv
}

func (a *aliasIndex) Get(_ context.Context, name string) (*alias.Record, error) {
	raw, ok := a.kv.get(aliasPrefix + name)
	if !ok {
		return nil, nil
	}
	var rec alias.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s%s: %w", aliasPrefix, name, err)
	}
	return &rec, nil
}

func (a *aliasIndex) Set(_ context.Context, rec *alias.Record) error {
	key := aliasPrefix + rec.Alias
	if _, ok := a.kv.get(key); ok {
		return alias.ErrAliasTaken
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	a.kv.put(key, raw)
	return nil
}

func (a *aliasIndex) Remove(_ context.Context, name string) error {
	a.kv.del(aliasPrefix + name)
	return nil
}

type ownerIndex struct {
	kv kv
}

func (o *ownerIndex) Get(_ context.Context, owner alias.Identity) (string, bool, error) {
	raw, ok := o.kv.get(ownerPrefix + owner.String())
	if !ok {
		return "", false, nil
	}
	return string(raw), true, nil
}

func (o *ownerIndex) Set(_ context.Context, owner alias.Identity, name string) error {
	key := ownerPrefix + owner.String()
	if _, ok := o.kv.get(key); ok {
		return alias.ErrOwnerHasAlias
	}
	o.kv.put(key, []byte(name))
	return nil
}

func (o *ownerIndex) Remove(_ context.Context, owner alias.Identity) error {
	o.kv.del(ownerPrefix + owner.String())
	return nil
}

type configStore struct {
	kv kv
}

func (c *configStore) Load(context.Context) (*alias.Config, error) {
	raw, ok := c.kv.get(configKey)
	if !ok {
		return nil, nil
	}
	var cfg alias.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", configKey, err)
	}
	return &cfg, nil
}

func (c *configStore) Save(_ context.Context, cfg *alias.Config) error {
	if _, ok := c.kv.get(configKey); ok {
		return alias.ErrAlreadyInitialized
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", configKey, err)
	}
	c.kv.put(configKey, raw)
	return nil
}

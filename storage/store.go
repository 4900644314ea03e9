package storage

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrObjectExists is returned by Put when the target key is already taken.
// Certificate documents are write-once; overwriting one is never correct.
var ErrObjectExists = errors.New("object already exists at this key")

// ObjectInfo describes a stored object, as returned by List.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ObjectStore is the blob-storage surface the platform depends on. Put has
// write-once semantics: an existing object at the key fails with
// ErrObjectExists. PublicURL returns a durable, publicly resolvable URL.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PublicURL(key string) string
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process ObjectStore used by tests and local
// development. It enforces the same write-once rule as the OSS store.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string]memoryObject
}

type memoryObject struct {
	body        []byte
	contentType string
	stored      time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]memoryObject)}
}

func (s *MemoryStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; ok {
		return ErrObjectExists
	}
	buf := make([]byte, len(body))
	copy(buf, body)
	s.objects[key] = memoryObject{body: buf, contentType: contentType, stored: time.Now()}
	return nil
}

func (s *MemoryStore) PublicURL(key string) string {
	return "https://storage.test/certificates/" + key
}

func (s *MemoryStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var infos []ObjectInfo
	for key, obj := range s.objects {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			infos = append(infos, ObjectInfo{Key: key, LastModified: obj.stored})
		}
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// SeedObject stores an object with an explicit timestamp, bypassing the
// write-once check; tests use it to stage pre-existing objects.
func (s *MemoryStore) SeedObject(key string, body []byte, stored time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = memoryObject{body: body, contentType: "text/html", stored: stored}
}

// Get returns a stored object's content; tests use it to inspect documents.
func (s *MemoryStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj.body, ok
}

// Len reports how many objects the store holds.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

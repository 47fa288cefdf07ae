package character

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Carmen-Shannon/automation/tools/worker"
)

// libraryImpl implements the Library interface.
type libraryImpl struct {
	mu *sync.RWMutex

	characters map[string]*Character

	// loadWorkers bounds the parallel file parsing during LoadDir.
	loadWorkers int
	loadPool    worker.DynamicWorkerPool
}

// Library holds all loaded characters keyed by display name.
// Thread-safe for concurrent access.
type Library interface {
	// LoadDir parses every .toml file in dir and registers the resulting
	// characters. Files are parsed in parallel. A file that fails to read
	// or parse is logged and skipped; it does not abort the load.
	//
	// Parameters:
	//   - dir: directory containing character .toml files
	//
	// Returns:
	//   - int: the number of characters loaded from this call
	//   - error: error if the directory itself cannot be read
	LoadDir(dir string) (int, error)

	// Character retrieves a loaded character by display name.
	//
	// Parameters:
	//   - name: the character's display name
	//
	// Returns:
	//   - *Character: the character, or nil if not loaded
	Character(name string) *Character

	// Names returns the display names of all loaded characters, sorted.
	//
	// Returns:
	//   - []string: sorted display names
	Names() []string

	// Count returns the number of loaded characters.
	//
	// Returns:
	//   - int: the character count
	Count() int
}

var _ Library = &libraryImpl{}

// NewLibrary creates an empty character Library with the provided options.
//
// Parameters:
//   - options: functional options for library configuration
//
// Returns:
//   - Library: the newly created library
func NewLibrary(options ...LibraryBuilderOption) Library {
	l := &libraryImpl{
		mu:          &sync.RWMutex{},
		characters:  make(map[string]*Character),
		loadWorkers: runtime.NumCPU(),
	}
	for _, opt := range options {
		opt(l)
	}
	if l.loadWorkers < 1 {
		l.loadWorkers = 1
	}
	// Queue size of 256 covers typical character roster sizes with headroom.
	l.loadPool = worker.NewDynamicWorkerPool(l.loadWorkers, 256, 1*time.Second)
	return l
}

func (l *libraryImpl) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("character: read dir %s: %w", dir, err)
	}

	// Submit each file to the load pool. A WaitGroup provides the barrier
	// since pool.Wait() blocks until workers idle-exit.
	var wg sync.WaitGroup
	var loadedMu sync.Mutex
	var loaded []*Character

	taskID := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".toml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		wg.Add(1)
		id := taskID
		taskID++
		l.loadPool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				defer wg.Done()

				c, err := loadFile(path)
				if err != nil {
					log.Printf("[Character] skipping %s: %v", path, err)
					return nil, err
				}

				loadedMu.Lock()
				loaded = append(loaded, c)
				loadedMu.Unlock()
				return c, nil
			},
		})
	}
	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range loaded {
		l.characters[c.BaseInfo.DisplayName] = c
	}
	return len(loaded), nil
}

func (l *libraryImpl) Character(name string) *Character {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.characters[name]
}

func (l *libraryImpl) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.characters))
	for name := range l.characters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (l *libraryImpl) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.characters)
}

// loadFile reads and parses a single character sheet. A sheet without a
// display name falls back to its file name so it stays addressable.
func loadFile(path string) (*Character, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Character
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	if c.BaseInfo.DisplayName == "" {
		base := filepath.Base(path)
		c.BaseInfo.DisplayName = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// A fresh sheet starts at its baseline.
	if c.CurrentStats == (CurrentStats{}) {
		c.ResetStats()
	}

	return &c, nil
}

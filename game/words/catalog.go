package words

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/hangman/game/engine"
)

// DefaultListID is the list used when none is requested
const DefaultListID = "fruits"

//go:embed lists/*.json
var embedded embed.FS

var (
	ErrListNotFound = errors.New("word list not found")
	ErrInvalidList  = fmt.Errorf("invalid word list: %w", engine.ErrInvalidConfiguration)
)

// List is a named collection of candidate secret words
type List struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Words       []string `json:"words"`
}

// ListInfo provides information about an available word list
type ListInfo struct {
	Filename    string `json:"filename"`
	ListID      string `json:"list_id"` // The identifier to pass to LoadList
	Name        string `json:"name"`
	Description string `json:"description"`
	WordCount   int    `json:"word_count"`
	Embedded    bool   `json:"embedded"`
}

// Catalog handles word-list loading and caching
type Catalog struct {
	dir         string
	defaultList *List
	lists       map[string]*List
	mu          sync.RWMutex
}

// NewCatalog creates a new catalog. An empty dir serves embedded lists only.
func NewCatalog(dir string) (*Catalog, error) {
	if dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return nil, fmt.Errorf("word list directory does not exist: %s", dir)
		}
	}

	c := &Catalog{
		dir:   dir,
		lists: make(map[string]*List),
	}

	if err := c.loadDefaultList(); err != nil {
		return nil, fmt.Errorf("failed to load default list: %w", err)
	}

	return c, nil
}

// LoadList loads a word list by identifier
func (c *Catalog) LoadList(id string) (*List, error) {
	id = strings.TrimSuffix(id, ".json")

	c.mu.RLock()
	if list, exists := c.lists[id]; exists {
		c.mu.RUnlock()
		return list, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if list, exists := c.lists[id]; exists {
		return list, nil
	}

	data, err := c.readList(id + ".json")
	if err != nil {
		return nil, err
	}

	list, err := ParseList(data)
	if err != nil {
		return nil, fmt.Errorf("list '%s': %w", id, err)
	}

	c.lists[id] = list
	return list, nil
}

// ListLists returns information about all available word lists, sorted by identifier
func (c *Catalog) ListLists() ([]*ListInfo, error) {
	sources := make(map[string]bool) // filename -> embedded

	entries, err := fs.ReadDir(embedded, "lists")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded lists: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			sources[entry.Name()] = true
		}
	}

	if c.dir != "" {
		entries, err := os.ReadDir(c.dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read word list directory: %w", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
				sources[entry.Name()] = false
			}
		}
	}

	var lists []*ListInfo
	for filename, isEmbedded := range sources {
		id := strings.TrimSuffix(filename, ".json")

		list, err := c.LoadList(id)
		if err != nil {
			// Skip invalid lists
			continue
		}

		lists = append(lists, &ListInfo{
			Filename:    filename,
			ListID:      id,
			Name:        list.Name,
			Description: list.Description,
			WordCount:   len(list.Words),
			Embedded:    isEmbedded,
		})
	}

	sort.Slice(lists, func(i, j int) bool { return lists[i].ListID < lists[j].ListID })
	return lists, nil
}

// GetDefault returns the default word list
func (c *Catalog) GetDefault() *List {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.defaultList
}

// SetDefault sets the default word list by identifier
func (c *Catalog) SetDefault(id string) error {
	list, err := c.LoadList(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultList = list
	return nil
}

// ParseList decodes and validates a JSON word list
func ParseList(data []byte) (*List, error) {
	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse word list: %w", err)
	}
	if err := ValidateList(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ValidateList validates a word list for playability
func ValidateList(list *List) error {
	if list == nil {
		return fmt.Errorf("%w: list is nil", ErrInvalidList)
	}
	if strings.TrimSpace(list.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidList)
	}
	if err := engine.ValidateWords(list.Words); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidList, err)
	}
	return nil
}

// readList reads a list file, preferring the directory over the embedded copy
func (c *Catalog) readList(filename string) ([]byte, error) {
	if c.dir != "" {
		data, err := os.ReadFile(filepath.Join(c.dir, filename))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read word list file: %w", err)
		}
	}

	data, err := embedded.ReadFile("lists/" + filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrListNotFound, strings.TrimSuffix(filename, ".json"))
		}
		return nil, fmt.Errorf("failed to read embedded word list: %w", err)
	}
	return data, nil
}

// loadDefaultList loads the default list, falling back to the first valid one
func (c *Catalog) loadDefaultList() error {
	list, err := c.LoadList(DefaultListID)
	if err != nil {
		lists, listErr := c.ListLists()
		if listErr != nil || len(lists) == 0 {
			return fmt.Errorf("no usable word list: %w", err)
		}
		list, err = c.LoadList(lists[0].ListID)
		if err != nil {
			return err
		}
	}

	c.mu.Lock()
	c.defaultList = list
	c.mu.Unlock()
	return nil
}

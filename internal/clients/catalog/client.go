// Package catalog serves the static item and nano program definitions the
// planner equips characters with and evaluates requirements against. The
// catalog is loaded from JSON data files at startup and held in memory;
// Reload swaps in fresh data without restarting the server.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/rubika-tools/planner-api/internal/clients/catalog Client

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rubika-tools/planner-api/internal/engine/formulas"
	"github.com/rubika-tools/planner-api/internal/entities/rubika"
	"github.com/rubika-tools/planner-api/internal/errors"
)

const defaultSearchLimit = 20

// EntryKind discriminates search results between items and nano programs.
type EntryKind string

const (
	KindItem EntryKind = "item"
	KindNano EntryKind = "nano"
)

// SearchResult is one catalog entry matched by SearchByName.
type SearchResult struct {
	Kind EntryKind
	AOID int64
	Name string
	QL   int32
}

// Client provides read access to the item and nano catalog.
type Client interface {
	// GetItem returns the item with the given AOID.
	// Returns errors.NotFound if no such item exists.
	GetItem(ctx context.Context, aoid int64) (*rubika.Item, error)

	// GetNano returns the nano program with the given AOID.
	// Returns errors.NotFound if no such nano exists.
	GetNano(ctx context.Context, aoid int64) (*rubika.NanoProgram, error)

	// GetItemRequirements returns the parsed requirement tree for an item.
	// The node is nil when the item has no requirements.
	// Returns errors.NotFound if no such item exists.
	GetItemRequirements(ctx context.Context, aoid int64) (rubika.CriteriaNode, error)

	// GetNanoRequirements returns the parsed requirement tree for a nano.
	// The node is nil when the nano has no requirements.
	// Returns errors.NotFound if no such nano exists.
	GetNanoRequirements(ctx context.Context, aoid int64) (rubika.CriteriaNode, error)

	// ListItems returns every item, sorted by AOID.
	ListItems(ctx context.Context) ([]*rubika.Item, error)

	// ListItemsBySlot returns every item equippable in the given slot,
	// sorted by AOID.
	// Returns errors.InvalidArgument if the slot is unknown.
	ListItemsBySlot(ctx context.Context, slot rubika.Slot) ([]*rubika.Item, error)

	// ListNanos returns every nano program, sorted by AOID.
	ListNanos(ctx context.Context) ([]*rubika.NanoProgram, error)

	// SearchByName finds items and nanos whose names match the query,
	// tolerating small typos. Closest matches come first.
	// Returns errors.InvalidArgument if the query is empty.
	SearchByName(ctx context.Context, query string) ([]SearchResult, error)

	// Reload re-reads the data files and atomically swaps the catalog.
	// On failure the previous catalog stays in place.
	Reload(ctx context.Context) error
}

// Config holds configuration for the catalog client
type Config struct {
	// DataDir is the directory holding the catalog JSON files.
	DataDir string
	// SearchLimit caps how many results SearchByName returns.
	// Zero means the default of 20.
	SearchLimit int
}

// Validate ensures the config is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.DataDir == "" {
		return errors.InvalidArgument("data dir is required")
	}
	if c.SearchLimit < 0 {
		return errors.InvalidArgument("search limit cannot be negative")
	}
	return nil
}

// store is one immutable loaded catalog. Reload builds a new store and
// swaps it in whole, so readers never see a half-loaded catalog.
type store struct {
	items     map[int64]*rubika.Item
	nanos     map[int64]*rubika.NanoProgram
	itemTrees map[int64]rubika.CriteriaNode
	nanoTrees map[int64]rubika.CriteriaNode
	names     []nameEntry
}

// nameEntry is the search index row for one catalog entry.
type nameEntry struct {
	kind   EntryKind
	aoid   int64
	name   string
	ql     int32
	folded string
	tokens []string
}

type client struct {
	dataDir     string
	searchLimit int

	mu    sync.RWMutex
	store *store
}

// New creates a catalog client and loads the data files immediately
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limit := cfg.SearchLimit
	if limit == 0 {
		limit = defaultSearchLimit
	}

	c := &client{
		dataDir:     cfg.DataDir,
		searchLimit: limit,
	}
	if err := c.Reload(context.Background()); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *client) Reload(ctx context.Context) error {
	st, err := loadStore(c.dataDir)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.store = st
	c.mu.Unlock()

	slog.InfoContext(ctx, "catalog loaded",
		"items", len(st.items),
		"nanos", len(st.nanos),
	)
	return nil
}

func (c *client) current() *store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}

func (c *client) GetItem(_ context.Context, aoid int64) (*rubika.Item, error) {
	item, ok := c.current().items[aoid]
	if !ok {
		return nil, errors.NotFoundf("item %d not found in catalog", aoid)
	}
	return item, nil
}

func (c *client) GetNano(_ context.Context, aoid int64) (*rubika.NanoProgram, error) {
	nano, ok := c.current().nanos[aoid]
	if !ok {
		return nil, errors.NotFoundf("nano %d not found in catalog", aoid)
	}
	return nano, nil
}

func (c *client) GetItemRequirements(_ context.Context, aoid int64) (rubika.CriteriaNode, error) {
	st := c.current()
	if _, ok := st.items[aoid]; !ok {
		return nil, errors.NotFoundf("item %d not found in catalog", aoid)
	}
	return st.itemTrees[aoid], nil
}

func (c *client) GetNanoRequirements(_ context.Context, aoid int64) (rubika.CriteriaNode, error) {
	st := c.current()
	if _, ok := st.nanos[aoid]; !ok {
		return nil, errors.NotFoundf("nano %d not found in catalog", aoid)
	}
	return st.nanoTrees[aoid], nil
}

func (c *client) ListItems(_ context.Context) ([]*rubika.Item, error) {
	st := c.current()
	out := make([]*rubika.Item, 0, len(st.items))
	for _, item := range st.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AOID < out[j].AOID })
	return out, nil
}

func (c *client) ListItemsBySlot(_ context.Context, slot rubika.Slot) ([]*rubika.Item, error) {
	if !rubika.IsValidSlot(slot) {
		return nil, errors.InvalidArgumentf("unknown slot %q", slot)
	}
	st := c.current()
	var out []*rubika.Item
	for _, item := range st.items {
		if item.Slot == slot {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AOID < out[j].AOID })
	return out, nil
}

func (c *client) ListNanos(_ context.Context) ([]*rubika.NanoProgram, error) {
	st := c.current()
	out := make([]*rubika.NanoProgram, 0, len(st.nanos))
	for _, nano := range st.nanos {
		out = append(out, nano)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AOID < out[j].AOID })
	return out, nil
}

// loadStore reads every .json file in dataDir and builds a fresh store.
func loadStore(dataDir string) (*store, error) {
	paths, err := filepath.Glob(filepath.Join(dataDir, "*.json"))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "listing catalog files in %s", dataDir)
	}
	if len(paths) == 0 {
		return nil, errors.Internalf("no catalog files found in %s", dataDir)
	}
	sort.Strings(paths)

	st := &store{
		items:     make(map[int64]*rubika.Item),
		nanos:     make(map[int64]*rubika.NanoProgram),
		itemTrees: make(map[int64]rubika.CriteriaNode),
		nanoTrees: make(map[int64]rubika.CriteriaNode),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "reading catalog file %s", path)
		}

		var file catalogFile
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "parsing catalog file %s", path)
		}

		for _, def := range file.Items {
			item, err := def.toEntity()
			if err != nil {
				return nil, err
			}
			if _, exists := st.items[item.AOID]; exists {
				return nil, errors.Internalf("duplicate item aoid %d in %s", item.AOID, path)
			}
			tree, err := formulas.BuildCriteriaTree(item.Requirements)
			if err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeInternal, "item %d requirements", item.AOID)
			}
			st.items[item.AOID] = item
			st.itemTrees[item.AOID] = tree
			st.names = append(st.names, newNameEntry(KindItem, item.AOID, item.Name, item.QL))
		}

		for _, def := range file.Nanos {
			nano, err := def.toEntity()
			if err != nil {
				return nil, err
			}
			if _, exists := st.nanos[nano.AOID]; exists {
				return nil, errors.Internalf("duplicate nano aoid %d in %s", nano.AOID, path)
			}
			tree, err := formulas.BuildCriteriaTree(nano.Requirements)
			if err != nil {
				return nil, errors.WrapWithCodef(err, errors.CodeInternal, "nano %d requirements", nano.AOID)
			}
			st.nanos[nano.AOID] = nano
			st.nanoTrees[nano.AOID] = tree
			st.names = append(st.names, newNameEntry(KindNano, nano.AOID, nano.Name, nano.QL))
		}
	}

	sort.Slice(st.names, func(i, j int) bool {
		if st.names[i].name != st.names[j].name {
			return st.names[i].name < st.names[j].name
		}
		return st.names[i].aoid < st.names[j].aoid
	})
	return st, nil
}

func newNameEntry(kind EntryKind, aoid int64, name string, ql int32) nameEntry {
	folded := strings.ToLower(name)
	return nameEntry{
		kind:   kind,
		aoid:   aoid,
		name:   name,
		ql:     ql,
		folded: folded,
		tokens: strings.Fields(folded),
	}
}

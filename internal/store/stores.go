package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hearthkeep/hearthkeep/internal/config"
	"github.com/hearthkeep/hearthkeep/internal/logger"
	"github.com/hearthkeep/hearthkeep/models"
)

// InMemory is the state file sentinel that keeps all state in-process.
const InMemory = ":memory:"

// ClientStores bundles every domain's local store plus their shared file
// persistence. All stores write through to a single JSON state file on each
// mutation; the file is loaded once at construction.
type ClientStores struct {
	Portfolios   *Store[[]models.Portfolio]
	Transactions *Store[[]models.Transaction]
	SymbolTags   *Store[[]models.SymbolTag]
	Expenses     *Store[[]models.Expense]
	Tasks        *ActorStore[[]models.Task]
	Events       *ActorStore[[]models.Event]

	path     string
	inMemory bool
	writeMu  sync.Mutex
	logger   *logger.Logger
}

type persistedState struct {
	Portfolios   []models.Portfolio        `json:"portfolios"`
	Transactions []models.Transaction      `json:"transactions"`
	SymbolTags   []models.SymbolTag        `json:"symbol_tags"`
	Expenses     []models.Expense          `json:"expenses"`
	Tasks        map[string][]models.Task  `json:"tasks"`
	Events       map[string][]models.Event `json:"events"`
}

// NewClientStores loads the state file (if any) and returns the wired bundle.
func NewClientStores(cfg config.ClientState, log *logger.Logger) (*ClientStores, error) {
	path := cfg.FilePath
	if path == "" {
		path = InMemory
	}

	s := &ClientStores{
		Portfolios:   NewStore[[]models.Portfolio](nil),
		Transactions: NewStore[[]models.Transaction](nil),
		SymbolTags:   NewStore[[]models.SymbolTag](nil),
		Expenses:     NewStore[[]models.Expense](nil),
		Tasks:        NewActorStore[[]models.Task](),
		Events:       NewActorStore[[]models.Event](),
		path:         path,
		inMemory:     path == InMemory,
		logger:       log,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	s.Portfolios.setOnWrite(s.persist)
	s.Transactions.setOnWrite(s.persist)
	s.SymbolTags.setOnWrite(s.persist)
	s.Expenses.setOnWrite(s.persist)
	s.Tasks.setOnWrite(s.persist)
	s.Events.setOnWrite(s.persist)

	return s, nil
}

func (s *ClientStores) load() error {
	if s.inMemory {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read local state file: %w", err)
	}

	var st persistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode local state file: %w", err)
	}

	s.Portfolios.Silent(st.Portfolios)
	s.Transactions.Silent(st.Transactions)
	s.SymbolTags.Silent(st.SymbolTags)
	s.Expenses.Silent(st.Expenses)
	s.Tasks.Replace(st.Tasks)
	s.Events.Replace(st.Events)

	return nil
}

func (s *ClientStores) persist() {
	if s.inMemory {
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	state := persistedState{
		Portfolios:   s.Portfolios.Get(),
		Transactions: s.Transactions.Get(),
		SymbolTags:   s.SymbolTags.Get(),
		Expenses:     s.Expenses.Get(),
		Tasks:        s.Tasks.All(),
		Events:       s.Events.All(),
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		s.logger.Err(err).Msg("encode local state")
		return
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Err(err).Msg("create local state dir")
			return
		}
	}

	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		s.logger.Err(err).Msg("write local state file")
	}
}

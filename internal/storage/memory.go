package storage

import (
	"sync"

	"golang.org/x/net/context"

	"duitai/internal/entity"
)

// memoryStore keeps all slices in process memory. It backs tests and local
// runs without a Redis instance (STORAGE_DRIVER=memory).
type memoryStore struct {
	mu sync.Mutex

	transactions []entity.Transaction
	wallets      []entity.Wallet
	budgets      []entity.Budget
	categories   []string
	messages     []entity.ChatMessage
	firstDay     int
	apiKey       string
}

func NewMemoryStore() IStore {
	return &memoryStore{}
}

func (s *memoryStore) LoadTransactions(_ context.Context) ([]entity.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Transaction(nil), s.transactions...), nil
}

func (s *memoryStore) SaveTransactions(_ context.Context, transactions []entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]entity.Transaction(nil), transactions...)
	return nil
}

func (s *memoryStore) LoadWallets(_ context.Context) ([]entity.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Wallet(nil), s.wallets...), nil
}

func (s *memoryStore) SaveWallets(_ context.Context, wallets []entity.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets = append([]entity.Wallet(nil), wallets...)
	return nil
}

func (s *memoryStore) LoadBudgets(_ context.Context) ([]entity.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Budget(nil), s.budgets...), nil
}

func (s *memoryStore) SaveBudgets(_ context.Context, budgets []entity.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = append([]entity.Budget(nil), budgets...)
	return nil
}

func (s *memoryStore) LoadCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.categories...), nil
}

func (s *memoryStore) SaveCategories(_ context.Context, categories []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]string(nil), categories...)
	return nil
}

func (s *memoryStore) LoadMessages(_ context.Context) ([]entity.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.ChatMessage(nil), s.messages...), nil
}

func (s *memoryStore) SaveMessages(_ context.Context, messages []entity.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append([]entity.ChatMessage(nil), messages...)
	return nil
}

func (s *memoryStore) LoadFirstDayOfMonth(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.firstDay, nil
}

func (s *memoryStore) SaveFirstDayOfMonth(_ context.Context, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstDay = day
	return nil
}

func (s *memoryStore) LoadAPIKey(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiKey, nil
}

func (s *memoryStore) SaveAPIKey(_ context.Context, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = apiKey
	return nil
}

func (s *memoryStore) DeleteAPIKey(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = ""
	return nil
}

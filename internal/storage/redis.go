package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"duitai/internal/entity"
)

const (
	keyTransactions = "duitai_transactions"
	keyWallets      = "duitai_wallets"
	keyBudgets      = "duitai_budgets"
	keyCategories   = "duitai_categories"
	keyFirstDay     = "duitai_first_day"
	keyMessages     = "duitai_messages"
	keyAPIKey       = "duitai_api_key"
)

type redisStore struct {
	client *redis.Client
	log    *logrus.Logger
}

// NewRedisStore connects to Redis using the REDIS_* environment variables and
// returns a store over it. A failed ping is logged but not fatal; the first
// request surfaces the real error.
func NewRedisStore(log *logrus.Logger) IStore {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	log.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		log.Info("Successfully connected to Redis")
	}

	return &redisStore{
		client: client,
		log:    log,
	}
}

func (s *redisStore) LoadTransactions(ctx context.Context) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	if err := s.loadJSON(ctx, keyTransactions, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (s *redisStore) SaveTransactions(ctx context.Context, transactions []entity.Transaction) error {
	return s.saveJSON(ctx, keyTransactions, transactions)
}

func (s *redisStore) LoadWallets(ctx context.Context) ([]entity.Wallet, error) {
	var wallets []entity.Wallet
	if err := s.loadJSON(ctx, keyWallets, &wallets); err != nil {
		return nil, err
	}
	return wallets, nil
}

func (s *redisStore) SaveWallets(ctx context.Context, wallets []entity.Wallet) error {
	return s.saveJSON(ctx, keyWallets, wallets)
}

func (s *redisStore) LoadBudgets(ctx context.Context) ([]entity.Budget, error) {
	var budgets []entity.Budget
	if err := s.loadJSON(ctx, keyBudgets, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *redisStore) SaveBudgets(ctx context.Context, budgets []entity.Budget) error {
	return s.saveJSON(ctx, keyBudgets, budgets)
}

func (s *redisStore) LoadCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.loadJSON(ctx, keyCategories, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *redisStore) SaveCategories(ctx context.Context, categories []string) error {
	return s.saveJSON(ctx, keyCategories, categories)
}

func (s *redisStore) LoadMessages(ctx context.Context) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	if err := s.loadJSON(ctx, keyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (s *redisStore) SaveMessages(ctx context.Context, messages []entity.ChatMessage) error {
	return s.saveJSON(ctx, keyMessages, messages)
}

func (s *redisStore) LoadFirstDayOfMonth(ctx context.Context) (int, error) {
	val, err := s.client.Get(ctx, keyFirstDay).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		s.log.Error(fmt.Sprintf("Error getting key %s: %v", keyFirstDay, err))
		return 0, err
	}

	day, err := strconv.Atoi(val)
	if err != nil {
		s.log.Error(fmt.Sprintf("Corrupt value for key %s: %v", keyFirstDay, err))
		return 0, err
	}
	return day, nil
}

func (s *redisStore) SaveFirstDayOfMonth(ctx context.Context, day int) error {
	if err := s.client.Set(ctx, keyFirstDay, strconv.Itoa(day), 0).Err(); err != nil {
		s.log.Error(fmt.Sprintf("Error setting key %s: %v", keyFirstDay, err))
		return err
	}
	return nil
}

func (s *redisStore) LoadAPIKey(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, keyAPIKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	} else if err != nil {
		s.log.Error(fmt.Sprintf("Error getting key %s: %v", keyAPIKey, err))
		return "", err
	}
	return val, nil
}

func (s *redisStore) SaveAPIKey(ctx context.Context, apiKey string) error {
	if err := s.client.Set(ctx, keyAPIKey, apiKey, 0).Err(); err != nil {
		s.log.Error(fmt.Sprintf("Error setting key %s: %v", keyAPIKey, err))
		return err
	}
	return nil
}

func (s *redisStore) DeleteAPIKey(ctx context.Context) error {
	if err := s.client.Del(ctx, keyAPIKey).Err(); err != nil {
		s.log.Error(fmt.Sprintf("Error deleting key %s: %v", keyAPIKey, err))
		return err
	}
	return nil
}

func (s *redisStore) loadJSON(ctx context.Context, key string, dest any) error {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	} else if err != nil {
		s.log.Error(fmt.Sprintf("Error getting key %s: %v", key, err))
		return err
	}

	if err := jsoniter.Unmarshal([]byte(val), dest); err != nil {
		s.log.Error(fmt.Sprintf("Corrupt JSON for key %s: %v", key, err))
		return err
	}
	return nil
}

func (s *redisStore) saveJSON(ctx context.Context, key string, value any) error {
	raw, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		s.log.Error(fmt.Sprintf("Error setting key %s: %v", key, err))
		return err
	}
	return nil
}

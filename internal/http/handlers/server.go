package handlers

import (
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/redissvc"
	"github.com/AnkitPandit120/DukaanMate1/internal/repo"
)

var (
	saleRepo    repo.SaleRepository
	stockRepo   repo.StockRepository
	expenseRepo repo.ExpenseRepository
	paymentRepo repo.PaymentRepository
	userRepo    repo.UserRepository

	insightCache    *redissvc.RedisService
	insightCacheTTL = time.Minute
)

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetStockRepo(r repo.StockRepository) {
	stockRepo = r
}

func SetExpenseRepo(r repo.ExpenseRepository) {
	expenseRepo = r
}

func SetPaymentRepo(r repo.PaymentRepository) {
	paymentRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

// SetInsightCache wires the redis-backed insight cache. Passing nil disables
// caching, which is how the handler tests run.
func SetInsightCache(rs *redissvc.RedisService, ttl time.Duration) {
	insightCache = rs
	if ttl > 0 {
		insightCacheTTL = ttl
	}
}

func cachedInsights() (string, bool) {
	if insightCache == nil {
		return "", false
	}
	return insightCache.GetInsights()
}

func storeInsights(payload string) {
	if insightCache != nil {
		_ = insightCache.SetInsights(payload, insightCacheTTL)
	}
}

func invalidateInsights() {
	if insightCache != nil {
		_ = insightCache.InvalidateInsights()
	}
}

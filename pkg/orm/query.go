// Package orm is a small fluent wrapper over gorm used by the repositories.
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/Austinkuria/E-commerce-Site/pkg/cache"
	"github.com/Austinkuria/E-commerce-Site/pkg/database"
	"github.com/Austinkuria/E-commerce-Site/pkg/metrics"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query against the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Tx starts a query against an open transaction. Repositories use this so
// the checkout pipeline can run every statement inside one transaction.
func Tx(tx *gorm.DB) *Query {
	return &Query{db: tx}
}

// Transaction runs fn inside a database transaction, rolling back on error.
func Transaction(fn func(tx *gorm.DB) error) error {
	return database.DB.Transaction(fn)
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value string) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Preload(relation string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(relation, args...)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Count(count *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Count(count).Error
}

func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(value).Error
}

func (q *Query) Delete(value interface{}, conds ...interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(value, conds...).Error
}

// Cache serves the query from Redis when possible, otherwise runs it and
// stores the result under key for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	cache.Set(key, dest, ttl) //nolint:errcheck
	return nil
}

// Pagination describes one page of results.
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
}

// Paginate runs the query with LIMIT/OFFSET and fills out the page metadata.
func (q *Query) Paginate(page, perPage int, dest interface{}) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	err := q.Limit(perPage).Offset((page - 1) * perPage).Get(dest)
	return Pagination{Page: page, PerPage: perPage, Total: total}, err
}

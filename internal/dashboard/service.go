package dashboard

import (
	"context"

	"equipdash/db"

	"github.com/sirupsen/logrus"
)

// Querier runs one read-only query and reports its tagged outcome.
type Querier interface {
	Query(ctx context.Context, query string, args ...interface{}) db.Result
	Dialect() db.Dialect
}

// Service assembles the daily and monthly dashboards from dados.
type Service struct {
	querier Querier
	log     logrus.FieldLogger
}

func NewService(querier Querier, log logrus.FieldLogger) *Service {
	return &Service{
		querier: querier,
		log:     log.WithField("component", "dashboard"),
	}
}

// run issues queries for one dashboard and remembers every failure so the
// page can render while the failures stay observable.
type run struct {
	ctx      context.Context
	querier  Querier
	failures []error
}

func (s *Service) newRun(ctx context.Context) *run {
	return &run{ctx: ctx, querier: s.querier}
}

func (r *run) query(query string, args ...interface{}) db.Result {
	result := r.querier.Query(r.ctx, query, args...)
	if !result.OK() {
		r.failures = append(r.failures, result.Err)
	}
	return result
}

func (r *run) count(query string, args ...interface{}) int64 {
	return r.query(query, args...).ScalarInt("equips")
}

package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStats is the subset of *pgxpool.Stat the collector reads.
type PoolStats interface {
	AcquiredConns() int32
	IdleConns() int32
	TotalConns() int32
	MaxConns() int32
	AcquireCount() int64
	EmptyAcquireCount() int64
	AcquireDuration() time.Duration
}

// PoolCollector exports pgxpool statistics as Prometheus gauges and counters.
type PoolCollector struct {
	stat func() PoolStats

	acquired    *prometheus.Desc
	idle        *prometheus.Desc
	total       *prometheus.Desc
	max         *prometheus.Desc
	acquires    *prometheus.Desc
	emptyWaits  *prometheus.Desc
	waitSeconds *prometheus.Desc
}

func NewPoolCollector(pool *pgxpool.Pool) *PoolCollector {
	return newPoolCollector(func() PoolStats { return pool.Stat() })
}

func newPoolCollector(stat func() PoolStats) *PoolCollector {
	return &PoolCollector{
		stat:        stat,
		acquired:    prometheus.NewDesc("db_pool_acquired_conns", "Connections currently checked out.", nil, nil),
		idle:        prometheus.NewDesc("db_pool_idle_conns", "Idle connections.", nil, nil),
		total:       prometheus.NewDesc("db_pool_total_conns", "Open connections.", nil, nil),
		max:         prometheus.NewDesc("db_pool_max_conns", "Configured pool size.", nil, nil),
		acquires:    prometheus.NewDesc("db_pool_acquire_total", "Successful acquires.", nil, nil),
		emptyWaits:  prometheus.NewDesc("db_pool_empty_acquire_total", "Acquires that had to wait for a connection.", nil, nil),
		waitSeconds: prometheus.NewDesc("db_pool_acquire_wait_seconds_total", "Time spent waiting for a connection.", nil, nil),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquires
	ch <- c.emptyWaits
	ch <- c.waitSeconds
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.emptyWaits, prometheus.CounterValue, float64(s.EmptyAcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.waitSeconds, prometheus.CounterValue, s.AcquireDuration().Seconds())
}

// Package store defines interfaces for data persistence operations and the
// transaction helper every write path goes through. These interfaces keep the
// services independent of the SQL dialect behind them.
package store

package models

type PerformanceMetricsService interface {
	Exists() (bool, error)
	Drop() (bool, error)
}

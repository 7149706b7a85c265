package models

type (
	AccessKeyService interface {
		Setup() error
		Insert(key string) error
		Provision(n int) (inserted int, skipped int, err error)
		Count() (int, error)
	}

	AccessKey struct {
		Key string `db:"key"`
	}
)

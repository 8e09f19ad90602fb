//go:generate mockgen -source=header.go -destination=../usecase/port_mocks_test.go -package=usecase_test

package port

import (
	"context"

	"backoff_retrier/internal/domain"
)

type HeaderClient interface {
	HeadNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number uint64) (domain.BlockHeader, error)
}

type HeaderCache interface {
	Add(number uint64, header domain.BlockHeader)
	Get(number uint64) (domain.BlockHeader, bool)
}

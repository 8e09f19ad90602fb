package usecase

import (
	"context"

	"backoff_retrier/internal/domain"
	"backoff_retrier/internal/errors"
	"backoff_retrier/internal/port"
)

type HeaderUseCase struct {
	client port.HeaderClient
	cache  port.HeaderCache
}

func NewHeaderUseCase(
	client port.HeaderClient,
	cache port.HeaderCache,
) *HeaderUseCase {
	return &HeaderUseCase{client: client, cache: cache}
}

// Execute returns the header at number, serving repeats from the cache.
func (uc *HeaderUseCase) Execute(
	ctx context.Context,
	number uint64,
) (domain.BlockHeader, error) {
	if v, ok := uc.cache.Get(number); ok {
		return v, nil
	}

	head, err := uc.client.HeadNumber(ctx)
	if err != nil {
		return domain.BlockHeader{}, err
	}
	if number > head {
		return domain.BlockHeader{}, errors.ErrBlockInFuture
	}

	header, err := uc.client.HeaderByNumber(ctx, number)
	if err != nil {
		return domain.BlockHeader{}, err
	}

	uc.cache.Add(number, header)
	return header, nil
}

// Head is never cached.
func (uc *HeaderUseCase) Head(ctx context.Context) (domain.Head, error) {
	n, err := uc.client.HeadNumber(ctx)
	if err != nil {
		return domain.Head{}, err
	}
	return domain.Head{Number: n}, nil
}

package execution

import "backoff_retrier/internal/domain"

func domainHeader(n uint64) domain.BlockHeader {
	return domain.BlockHeader{Number: n}
}

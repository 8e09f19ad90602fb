package execution

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"backoff_retrier/internal/domain"
	"backoff_retrier/internal/errors"
	"backoff_retrier/internal/retry"
)

// Backend is the subset of *ethclient.Client used here.
type Backend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// ExecutionClient reads headers from an execution node. Every RPC runs
// through the retrier with the policy resolved from policy at call time.
type ExecutionClient struct {
	backend Backend
	policy  retry.PolicySource
	timeout time.Duration
	opts    []retry.Option
}

func NewExecutionClient(
	backend Backend,
	policy retry.PolicySource,
	requestTimeout time.Duration,
	opts ...retry.Option,
) *ExecutionClient {
	return &ExecutionClient{
		backend: backend,
		policy:  policy,
		timeout: requestTimeout,
		opts:    opts,
	}
}

func (ec *ExecutionClient) HeadNumber(ctx context.Context) (uint64, error) {
	head, err := retry.Do(ctx, ec.policy, func(ctx context.Context) (uint64, error) {
		ctx, cancel := ec.attemptContext(ctx)
		defer cancel()
		return ec.backend.BlockNumber(ctx)
	}, ec.options("eth_blockNumber")...)
	if err != nil {
		zap.L().Error("failed to fetch head block", zap.Error(err))
		return 0, mapError(err)
	}
	return head, nil
}

func (ec *ExecutionClient) HeaderByNumber(ctx context.Context, number uint64) (domain.BlockHeader, error) {
	header, err := retry.Do(ctx, ec.policy, func(ctx context.Context) (*types.Header, error) {
		ctx, cancel := ec.attemptContext(ctx)
		defer cancel()
		return ec.backend.HeaderByNumber(ctx, new(big.Int).SetUint64(number))
	}, ec.options("eth_getHeaderByNumber")...)
	if err != nil {
		zap.L().Error("failed to fetch header", zap.Uint64("number", number), zap.Error(err))
		return domain.BlockHeader{}, mapError(err)
	}
	return toDomain(header), nil
}

func (ec *ExecutionClient) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ec.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, ec.timeout)
}

func (ec *ExecutionClient) options(method string) []retry.Option {
	opts := make([]retry.Option, 0, len(ec.opts)+1)
	opts = append(opts, retry.Named(method))
	return append(opts, ec.opts...)
}

func mapError(err error) error {
	switch {
	case stderrors.Is(err, retry.ErrPolicyUnavailable):
		return fmt.Errorf("%w: %w", errors.ErrInternal, err)
	case stderrors.As(err, new(*retry.AbortedError)),
		stderrors.Is(err, context.DeadlineExceeded),
		stderrors.Is(err, context.Canceled):
		// An aborted loop also unwraps to the last attempt's error, so this
		// must win over NotFound: the budget was not spent.
		return fmt.Errorf("%w: %w", errors.ErrRequestTimeout, err)
	case stderrors.Is(err, ethereum.NotFound):
		return errors.ErrBlockNotFound
	default:
		return fmt.Errorf("%w: %w", errors.ErrUpstreamUnavailable, err)
	}
}

func toDomain(h *types.Header) domain.BlockHeader {
	out := domain.BlockHeader{
		Hash:       h.Hash().Hex(),
		ParentHash: h.ParentHash.Hex(),
		Miner:      h.Coinbase.Hex(),
		GasUsed:    h.GasUsed,
		GasLimit:   h.GasLimit,
		Timestamp:  h.Time,
	}
	if h.Number != nil {
		out.Number = h.Number.Uint64()
	}
	if h.BaseFee != nil {
		gwei, _ := new(big.Float).Quo(new(big.Float).SetInt(h.BaseFee), big.NewFloat(1e9)).Float64()
		out.BaseFeeGwei = gwei
	}
	return out
}

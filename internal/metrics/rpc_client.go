// Package metrics holds the Prometheus collectors of the order inspector.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evm_rpc_client",
		Name:      "operations_total",
		Help:      "Count of EVM node RPC operations.",
	}, []string{"operation", "chain", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "evm_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of EVM node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "chain", "status"})
)

// RPCClient tracks metrics for RPC calls to EVM nodes.
type RPCClient struct {
	chain model.Chain
}

// NewRPCClient constructs a metrics collector for RPC calls against one chain.
func NewRPCClient(chain model.Chain) *RPCClient {
	if chain == "" {
		chain = "unknown"
	}
	return &RPCClient{chain: chain}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	rpcRequestsTotal.WithLabelValues(operation, string(m.chain), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.chain), status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

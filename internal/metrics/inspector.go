package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inspectorLatestHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "latest_height_total",
		Help:      "Count of chain head lookups.",
	}, []string{"chain", "status"})

	inspectorLatestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "latest_height",
		Help:      "Last observed chain head.",
	}, []string{"chain"})

	inspectorBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "blocks_checked_total",
		Help:      "Count of checked blocks by ordering outcome.",
	}, []string{"chain", "result"})

	inspectorBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching and checking a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	inspectorBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "block_transactions",
		Help:      "Number of transactions per checked block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"chain"})

	inspectorContractReadTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "order_inspector",
		Name:      "contract_read_total",
		Help:      "Count of contract value reads.",
	}, []string{"chain", "status"})
)

// Inspector tracks metrics of an order inspection run.
type Inspector struct {
	blockChain    model.Chain
	contractChain model.Chain
}

// NewInspector constructs the inspector collector. blockChain labels block checks,
// contractChain labels contract reads.
func NewInspector(blockChain, contractChain model.Chain) *Inspector {
	if blockChain == "" {
		blockChain = "unknown"
	}
	if contractChain == "" {
		contractChain = "unknown"
	}
	return &Inspector{blockChain: blockChain, contractChain: contractChain}
}

func (m Inspector) ObserveLatestHeight(err error, height uint64) {
	inspectorLatestHeightTotal.WithLabelValues(string(m.blockChain), statusOf(err)).Inc()
	if err == nil {
		inspectorLatestHeight.WithLabelValues(string(m.blockChain)).Set(float64(height))
	}
}

func (m Inspector) ObserveBlock(err error, ordered bool, txs int, started time.Time) {
	inspectorBlockDuration.WithLabelValues(string(m.blockChain), statusOf(err)).
		Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	result := "unordered"
	if ordered {
		result = "ordered"
	}
	inspectorBlocksTotal.WithLabelValues(string(m.blockChain), result).Inc()
	inspectorBlockTransactions.WithLabelValues(string(m.blockChain)).Observe(float64(txs))
}

func (m Inspector) ObserveContractRead(err error) {
	inspectorContractReadTotal.WithLabelValues(string(m.contractChain), statusOf(err)).Inc()
}

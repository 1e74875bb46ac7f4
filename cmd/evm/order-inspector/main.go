// Package main checks priority-fee ordering of sampled blocks and reads contract values.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/ethereum"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/model"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/ordering"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/report"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/evm/service"
	"github.com/goodnatureofminers/blockinsight7000-order-inspector/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	ETHRPCURL         string          `long:"eth-rpc-url" env:"ORDER_INSPECTOR_ETH_RPC_URL" description:"Ethereum JSON-RPC URL, blocks are sampled from this chain" default:"https://ethereum-rpc.publicnode.com"`
	BSCRPCURL         string          `long:"bsc-rpc-url" env:"ORDER_INSPECTOR_BSC_RPC_URL" description:"BNB Smart Chain JSON-RPC URL" default:"https://api.zan.top/bsc-testnet"`
	ContractInfo      string          `long:"contract-info" env:"ORDER_INSPECTOR_CONTRACT_INFO" description:"path to the contract info JSON file" default:"contract_info.json"`
	ContractChain     model.Chain     `long:"contract-chain" env:"ORDER_INSPECTOR_CONTRACT_CHAIN" description:"chain hosting the contract (eth or bsc)" default:"bsc"`
	AdminAddress      string          `long:"admin-address" env:"ORDER_INSPECTOR_ADMIN_ADDRESS" description:"address checked for the default admin role" default:"0xAC55e7d73A792fE1A9e051BDF4A010c33962809A"`
	OwnerAddress      string          `long:"owner-address" env:"ORDER_INSPECTOR_OWNER_ADDRESS" description:"address whose prime is looked up" default:"0x793A37a85964D96ACD6368777c7C7050F05b11dE"`
	Samples           int             `long:"samples" env:"ORDER_INSPECTOR_SAMPLES" description:"number of random blocks to check" default:"5"`
	Blocks            []uint64        `long:"block" env:"ORDER_INSPECTOR_BLOCKS" env-delim:"," description:"check this block instead of sampling (repeatable)"`
	ReferenceBlock    uint64          `long:"reference-block" env:"ORDER_INSPECTOR_REFERENCE_BLOCK" description:"chain head must be above this block" default:"12965000"`
	Seed              uint64          `long:"seed" env:"ORDER_INSPECTOR_SEED" description:"sampling seed, 0 picks one from the clock"`
	Workers           int             `long:"workers" env:"ORDER_INSPECTOR_WORKERS" description:"blocks fetched concurrently" default:"1"`
	RPS               int             `long:"rps" env:"ORDER_INSPECTOR_RPS" description:"max RPC calls per second per endpoint, 0 for unlimited" default:"0"`
	HTTPTimeout       time.Duration   `long:"http-timeout" env:"ORDER_INSPECTOR_HTTP_TIMEOUT" description:"HTTP timeout for RPC requests" default:"30s"`
	UnknownTypePolicy ordering.Policy `long:"unknown-type-policy" env:"ORDER_INSPECTOR_UNKNOWN_TYPE_POLICY" description:"pricing of transaction types other than 0 and 2" choice:"gas-price" choice:"by-fields" default:"gas-price"`
	MerkleRootMethod  string          `long:"merkle-root-method" env:"ORDER_INSPECTOR_MERKLE_ROOT_METHOD" description:"contract method returning the Merkle root" default:"merkleRoot"`
	HasRoleMethod     string          `long:"has-role-method" env:"ORDER_INSPECTOR_HAS_ROLE_METHOD" description:"contract method checking role membership" default:"hasRole"`
	PrimeMethod       string          `long:"prime-method" env:"ORDER_INSPECTOR_PRIME_METHOD" description:"contract method returning the prime of an owner" default:"getPrimeByOwner"`
	MetricsAddr       string          `long:"metrics-addr" env:"ORDER_INSPECTOR_METRICS_ADDR" description:"address for metrics server, empty disables it"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger, os.Stdout); err != nil {
		logger.Fatal("order inspector failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger, out io.Writer) error {
	admin, err := parseAddress("admin", cfg.AdminAddress)
	if err != nil {
		return err
	}
	owner, err := parseAddress("owner", cfg.OwnerAddress)
	if err != nil {
		return err
	}
	contractURL, err := cfg.rpcURL(cfg.ContractChain)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	blockClient, err := connect(ctx, cfg, model.ETH, cfg.ETHRPCURL, logger)
	if err != nil {
		return err
	}
	defer blockClient.Close()

	contractClient, err := connect(ctx, cfg, cfg.ContractChain, contractURL, logger)
	if err != nil {
		return err
	}
	defer contractClient.Close()

	info, err := ethereum.LoadContractInfo(cfg.ContractInfo, cfg.ContractChain)
	if err != nil {
		return err
	}
	reader, err := ethereum.NewContractReader(contractClient, info, ethereum.ContractMethods{
		MerkleRoot: cfg.MerkleRootMethod,
		HasRole:    cfg.HasRoleMethod,
		Prime:      cfg.PrimeMethod,
	})
	if err != nil {
		return err
	}
	logger.Info("contract loaded",
		zap.String("chain", string(cfg.ContractChain)),
		zap.String("address", reader.Address().Hex()),
	)

	svc, err := service.NewInspectorService(
		service.InspectorConfig{
			Heights:        cfg.Blocks,
			Samples:        cfg.Samples,
			ReferenceBlock: cfg.ReferenceBlock,
			Workers:        cfg.Workers,
			Policy:         cfg.UnknownTypePolicy,
			Admin:          admin,
			Owner:          owner,
		},
		ethereum.NewBlockSource(blockClient, model.ETH),
		reader,
		service.NewSampler(cfg.seed()),
		metrics.NewInspector(model.ETH, cfg.ContractChain),
		logger.Named("inspector"),
	)
	if err != nil {
		return err
	}

	res, err := svc.Run(ctx)
	if err != nil {
		return err
	}
	return report.Write(out, res)
}

// connect dials the endpoint and fails unless the node answers eth_chainId.
func connect(ctx context.Context, cfg config, chain model.Chain, rawURL string, logger *zap.Logger) (*ethereum.ObservedClient, error) {
	client, err := ethereum.Dial(ctx, rawURL, cfg.HTTPTimeout, cfg.RPS, metrics.NewRPCClient(chain))
	if err != nil {
		return nil, fmt.Errorf("init %s rpc client: %w", chain, err)
	}
	id, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to %s provider at %s: %w", chain, rawURL, err)
	}
	logger.Info("connected", zap.String("chain", string(chain)), zap.Stringer("chain_id", id))
	return client, nil
}

func (c config) rpcURL(chain model.Chain) (string, error) {
	switch chain {
	case model.ETH:
		return c.ETHRPCURL, nil
	case model.BSC:
		return c.BSCRPCURL, nil
	default:
		return "", fmt.Errorf("unsupported contract chain %q", chain)
	}
}

func (c config) seed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func parseAddress(name, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%s address %q is not a hex address", name, value)
	}
	return common.HexToAddress(value), nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

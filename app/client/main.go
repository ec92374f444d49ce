package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	xabi "github.com/x-xyz/goclient/base/abi"
	"github.com/x-xyz/goclient/base/ctx"
	"github.com/x-xyz/goclient/base/log"
	"github.com/x-xyz/goclient/base/refresh"
	bValidator "github.com/x-xyz/goclient/base/validator"
	"github.com/x-xyz/goclient/domain"
	mmiddleware "github.com/x-xyz/goclient/middleware"
	"github.com/x-xyz/goclient/service/chain"
	"github.com/x-xyz/goclient/service/ens"
	"github.com/x-xyz/goclient/service/storage"
	walletService "github.com/x-xyz/goclient/service/wallet"
	binding_usecase "github.com/x-xyz/goclient/stores/binding/usecase"
	marketplace_delivery "github.com/x-xyz/goclient/stores/marketplace/delivery/http"
	marketplace_usecase "github.com/x-xyz/goclient/stores/marketplace/usecase"
	mint_delivery "github.com/x-xyz/goclient/stores/mint/delivery/http"
	mint_usecase "github.com/x-xyz/goclient/stores/mint/usecase"
	token_delivery "github.com/x-xyz/goclient/stores/token/delivery/http"
	token_usecase "github.com/x-xyz/goclient/stores/token/usecase"
	tx_usecase "github.com/x-xyz/goclient/stores/tx/usecase"
	wallet_delivery "github.com/x-xyz/goclient/stores/wallet/delivery/http"
	wallet_usecase "github.com/x-xyz/goclient/stores/wallet/usecase"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path to config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Init(true)
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	marketplaceAddr := domain.Address(viper.GetString("contracts.marketplace")).ToLower()
	collectionAddr := domain.Address(viper.GetString("contracts.collection")).ToLower()

	// init chain service
	context.Info("init chain client")
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrl:              viper.GetString("network.rpcUrl"),
		ReceiptPollInterval: viper.GetDuration("network.receiptPollInterval"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chain client unavailable, running without reads")
	}

	// init wallet capability
	context.Info("init wallet provider")
	walletProvider, err := walletService.NewProvider(context, &walletService.ProviderCfg{
		RpcUrl:       viper.GetString("wallet.rpcUrl"),
		PollInterval: viper.GetDuration("wallet.pollInterval"),
	})
	if err != nil {
		context.WithField("err", err).Warn("wallet unavailable, running in read-only mode")
		walletProvider = nil
	}

	// a chain switch invalidates every contract address; tear down and let
	// the supervisor restart us against the new chain
	quit := make(chan os.Signal, 1)
	onChainChanged := func() {
		context.Warn("chain changed, requesting restart")
		select {
		case quit <- syscall.SIGTERM:
		default:
		}
	}

	var pinningService storage.Service
	if nodeUrl := viper.GetString("ipfs.nodeUrl"); nodeUrl != "" {
		pinningService = storage.NewIpfsNode(nodeUrl)
	} else {
		pinningService = storage.NewPinata(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))
	}

	var ensService ens.ENS
	if ensRpc := viper.GetString("ens.rpcUrl"); ensRpc != "" {
		ensService = ens.New(ensRpc)
	}

	refreshSignal := refresh.New()

	// construct usecases
	walletUC := wallet_usecase.New(context, &wallet_usecase.WalletUseCaseCfg{
		Provider:       walletProvider,
		OnChainChanged: onChainChanged,
	})
	bindingUC := binding_usecase.New(context, &binding_usecase.BindingUseCaseCfg{
		Chain:  chainService,
		Wallet: walletUC,
		Signer: walletProvider,
		Abis: map[domain.Address]gethabi.ABI{
			marketplaceAddr: xabi.MarketplaceABI,
			collectionAddr:  xabi.CollectionABI,
		},
	})
	txUC := tx_usecase.New(&tx_usecase.TxUseCaseCfg{
		Chain:   chainService,
		Refresh: refreshSignal,
	})
	marketplaceUC := marketplace_usecase.New(&marketplace_usecase.MarketplaceUseCaseCfg{
		Binding:         bindingUC,
		Wallet:          walletUC,
		Tx:              txUC,
		Ens:             ensService,
		MarketplaceAddr: marketplaceAddr,
		CollectionAddr:  collectionAddr,
	})
	tokenUC := token_usecase.New(&token_usecase.TokenUseCaseCfg{
		Binding:        bindingUC,
		Marketplace:    marketplaceUC,
		Wallet:         walletUC,
		Refresh:        refreshSignal,
		CollectionAddr: collectionAddr,
	})
	mintUC := mint_usecase.New(&mint_usecase.MintUseCaseCfg{
		Binding:        bindingUC,
		Wallet:         walletUC,
		Tx:             txUC,
		Storage:        pinningService,
		CollectionAddr: collectionAddr,
	})

	// pick up an already-authorized account without prompting
	walletUC.CheckExistingAuthorization(context)

	wallet_delivery.New(e, walletUC)
	marketplace_delivery.New(e, marketplaceUC)
	token_delivery.New(e, tokenUC)
	mint_delivery.New(e, mintUC)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")

	walletUC.Close()
	bindingUC.Close()
	if walletProvider != nil {
		walletProvider.Close()
	}

	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

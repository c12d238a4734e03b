package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/storefront-ledger-service/internal/app/product/domain/services"
	productqueries "github.com/murkotick/storefront-ledger-service/internal/app/product/queries"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/get_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/queries/list_products"
	productrepo "github.com/murkotick/storefront-ledger-service/internal/app/product/repo"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_competitor_price"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/create_product"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/record_price_history"
	"github.com/murkotick/storefront-ledger-service/internal/app/product/usecases/update_product"
	saleservices "github.com/murkotick/storefront-ledger-service/internal/app/sale/domain/services"
	salequeries "github.com/murkotick/storefront-ledger-service/internal/app/sale/queries"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/catalog_lookup"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/count_sales"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/queries/list_sales"
	salerepo "github.com/murkotick/storefront-ledger-service/internal/app/sale/repo"
	"github.com/murkotick/storefront-ledger-service/internal/app/sale/usecases/create_sale"
	"github.com/murkotick/storefront-ledger-service/internal/config"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/clock"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/committer"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/logger"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/metrics"
	"github.com/murkotick/storefront-ledger-service/internal/pkg/outbox"
	"github.com/murkotick/storefront-ledger-service/internal/transport/admin"
	"github.com/murkotick/storefront-ledger-service/internal/transport/grpc/storefront"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		ServiceName: "storefront-ledger",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
	if err != nil {
		return fmt.Errorf("spanner client: %w", err)
	}
	defer client.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledger := metrics.NewLedger(reg)

	policy, err := saleservices.PolicyByName(cfg.Sales.OwnerPolicy)
	if err != nil {
		return err
	}

	handler := buildHandler(client, policy, log, ledger)
	grpcServer, healthServer := storefront.NewServer(handler, log)

	adminServer := &http.Server{
		Addr:              cfg.Server.AdminAddr,
		Handler:           admin.NewRouter(cfg.App.Env, log, admin.SpannerPinger{Client: client}, reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Zerolog(ctx).Info().Str("addr", cfg.Server.GRPCAddr).Str("owner_policy", policy.Name()).Msg("grpc server listening")
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		log.Zerolog(ctx).Info().Str("addr", cfg.Server.AdminAddr).Msg("admin server listening")
		if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info(context.Background(), "shutting down")
		healthServer.SetServingStatus(storefront.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		_ = adminServer.Shutdown(shutdownCtx)
		stopGRPC(shutdownCtx, grpcServer)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	log.Info(context.Background(), "server stopped")
	return nil
}

func buildHandler(client *spanner.Client, policy saleservices.OwnerPolicy, log *logger.Logger, ledger *metrics.Ledger) *storefront.Handler {
	clk := clock.RealClock{}
	cm := committer.NewAdapter(client)
	calc := services.NewPricingCalculator()
	outboxRepo := outbox.NewRepo()

	prodRepo := productrepo.NewProductRepo()
	productReads := productqueries.NewSpannerReadModel(client)
	recorder := record_price_history.NewRecorder(productrepo.NewPriceHistoryRepo(), cm, calc, clk, log, ledger)
	saleReads := salequeries.NewSpannerReadModel(client)

	// CQRS wiring
	cmds := storefront.Commands{
		CreateProduct:         create_product.NewInteractor(prodRepo, outboxRepo, cm, calc, clk),
		UpdateProduct:         update_product.NewInteractor(prodRepo, outboxRepo, cm, productReads, recorder, calc, clk, log, ledger),
		CreateCompetitorPrice: create_competitor_price.NewInteractor(productrepo.NewCompetitorPriceRepo(), outboxRepo, cm, productReads, clk),
		CreatePriceHistory:    create_price_history.NewInteractor(recorder, productReads),
		CreateSale: create_sale.NewInteractor(catalog_lookup.NewSpannerCatalogLookup(client), salerepo.NewSaleRepo(),
			outboxRepo, cm, saleservices.NewAssembler(policy), clk, log, ledger),
	}
	qrys := storefront.Queries{
		GetProduct:       get_product.NewHandler(productReads),
		ListProducts:     list_products.NewHandler(productReads),
		ListPriceHistory: list_price_history.NewHandler(productReads),
		ListSales:        list_sales.NewHandler(saleReads),
		CountSales:       count_sales.NewHandler(saleReads),
	}
	return storefront.NewHandler(cmds, qrys)
}

func stopGRPC(ctx context.Context, srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		srv.Stop()
	}
}

package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/gorilla/mux"

	ibcdecodeapi "github.com/TrustedSmartChain/tscscan/x/ibcdecode/api"
	ibcdecodekeeper "github.com/TrustedSmartChain/tscscan/x/ibcdecode/keeper"
)

const (
	appName   = "tscscan"
	NodeDir   = ".tscscan"
	EnvPrefix = "TSCSCAN"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// These constants are derived from the above variables.
var (
	// DefaultNodeHome default home directory for tscscan
	DefaultNodeHome = os.ExpandEnv("$HOME/") + NodeDir
)

// ScanApp wires the decoding keeper to the HTTP router served to the
// explorer front end.
type ScanApp struct {
	logger log.Logger
	config Config

	IBCDecodeKeeper ibcdecodekeeper.Keeper

	router *mux.Router
}

// NewScanApp returns a reference to an initialized ScanApp.
func NewScanApp(logger log.Logger, cfg Config) *ScanApp {
	app := &ScanApp{
		logger: logger,
		config: cfg,
	}

	app.IBCDecodeKeeper = ibcdecodekeeper.NewKeeper(logger, cfg.MaxAnyDepth)

	app.router = mux.NewRouter()
	app.RegisterAPIRoutes(app.router)

	return app
}

func (app *ScanApp) Name() string { return appName }

func (app *ScanApp) Logger() log.Logger { return app.logger }

func (app *ScanApp) Config() Config { return app.config }

func (app *ScanApp) Router() *mux.Router { return app.router }

// RegisterAPIRoutes registers all module routes with the provided router.
func (app *ScanApp) RegisterAPIRoutes(r *mux.Router) {
	ibcdecodeapi.RegisterRoutes(r, app.IBCDecodeKeeper)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodGet)
}

// Serve runs the HTTP API on the configured address until ctx is done.
func (app *ScanApp) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.APIAddress,
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting api server", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("stopping api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/thyeshengleng/collection-form/authenticator"
	"github.com/thyeshengleng/collection-form/config"
	"github.com/thyeshengleng/collection-form/controllers"
	"github.com/thyeshengleng/collection-form/logger"
)

const shutdownTimeout = 10 * time.Second

var (
	flagUIAddr  string
	flagAPIAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the record UI and the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("ui-addr") {
			cfg.UIAddress = flagUIAddr
		}
		if cmd.Flags().Changed("api-addr") {
			cfg.APIAddress = flagAPIAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx)
	},
}

func init() {
	defaults := config.Default()
	serveCmd.Flags().StringVar(&flagUIAddr, "ui-addr", defaults.UIAddress, "listen address of the record UI")
	serveCmd.Flags().StringVar(&flagAPIAddr, "api-addr", defaults.APIAddress, "listen address of the JSON API")
}

func serve(ctx context.Context) error {
	db, repos, srvs, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	var provider authenticator.Provider
	if cfg.AuthEnabled() {
		provider, err = authenticator.NewOpenIDProvider(ctx, authenticator.Config{
			IssuerURL:    cfg.OIDCIssuer,
			ClientID:     cfg.OIDCClientID,
			ClientSecret: cfg.OIDCClientSecret,
			CallbackURL:  cfg.OIDCCallbackURL,
		})
		if err != nil {
			return err
		}
		logger.Log.Info("login enabled", zap.String("issuer", cfg.OIDCIssuer))
	} else {
		logger.Log.Warn("login disabled, the record UI is open to anyone who can reach it")
	}

	ctrl := controllers.NewControllers(srvs, provider)

	uiRouter, err := controllers.NewUIRouter(ctrl, controllers.UIOptions{
		SecureCookies: cfg.UseHTTPS,
		Audit:         repos.Audit,
	})
	if err != nil {
		return err
	}

	servers := []*http.Server{
		{Addr: cfg.UIAddress, Handler: uiRouter, ReadHeaderTimeout: 10 * time.Second},
		{Addr: cfg.APIAddress, Handler: controllers.NewAPIRouter(ctrl), ReadHeaderTimeout: 10 * time.Second},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			logger.Log.Info("listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/itemizer/internal/server"
	"github.com/abhisek/itemizer/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the classification API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.HTTP.Addr
		}
		noStore, _ := cmd.Flags().GetBool("no-store")

		var items store.ItemRepo
		if !noStore {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			items = s.ItemRepo()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(newService(items), server.Options{
			Addr:            addr,
			MaxContentBytes: cfg.HTTP.MaxContentBytes,
			Items:           items,
			Logger:          logger,
		})

		logger.Info("listening", zap.String("addr", addr), zap.Bool("store", items != nil))
		err := srv.ListenAndServe(ctx)
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			return err
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, \":8080\")")
	serveCmd.Flags().Bool("no-store", false, "Run without a database; item routes answer 503")
}

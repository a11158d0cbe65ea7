package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/deemkeen/keytan/middleware"
	"github.com/deemkeen/keytan/util"
	"github.com/deemkeen/keytan/web"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func addServe(topLevel *cobra.Command, opts *options) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the timeline over SSH, and the feed over HTTP when enabled",
		Example: `
keytan serve
KEYTAN_WITH_WEB=true keytan serve
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	}

	topLevel.AddCommand(cmd)
}

func hostKeyPath() string {
	dir, err := util.GetConfigDir()
	if err != nil {
		return filepath.Join(".ssh", "hostkey")
	}
	return filepath.Join(dir, "hostkey")
}

func runServe(opts *options) error {
	conf, err := loadConf(opts)
	if err != nil {
		return err
	}
	if err := util.SetupLogger(conf, os.Stderr); err != nil {
		return err
	}
	log.Debug("Configuration", "conf", util.PrettyPrint(conf))

	store, err := openStore(conf)
	if err != nil {
		return err
	}
	defer store.Close()
	pages := loadPages(store)

	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf("%s:%d", conf.Conf.Host, conf.Conf.SshPort)),
		wish.WithHostKeyPath(hostKeyPath()),
		wish.WithPublicKeyAuth(publicKeyHandler),
		wish.WithMiddleware(
			middleware.MainTui(conf, pages),
			middleware.SessionLogger(),
			logging.Middleware(), // last middleware executed first
		),
	)
	if err != nil {
		return fmt.Errorf("could not create SSH server: %w", err)
	}

	var httpSrv *http.Server
	if conf.Conf.WithWeb {
		httpSrv = web.NewServer(conf, store)
	}

	return startServing(s, httpSrv, conf)
}

func startServing(s *ssh.Server, httpSrv *http.Server, conf *util.AppConfig) error {
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	errs := make(chan error, 2)

	log.Info("Starting SSH server", "host", conf.Conf.Host, "port", conf.Conf.SshPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errs <- fmt.Errorf("ssh server: %w", err)
		}
	}()

	if httpSrv != nil {
		log.Info("Starting feed server", "addr", httpSrv.Addr)
		go func() {
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- fmt.Errorf("feed server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-done:
	case runErr = <-errs:
	}

	log.Info("Stopping servers")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if httpSrv != nil {
		if err := httpSrv.Shutdown(ctx); err != nil {
			log.Error("Feed server shutdown failed", "err", err)
		}
	}
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("ssh shutdown: %w", err)
	}
	return runErr
}

func publicKeyHandler(ssh.Context, ssh.PublicKey) bool {
	return true
}

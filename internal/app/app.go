package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minivenmo/internal/config"
	"github.com/fsdevblog/minivenmo/internal/repository/pgrepo"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/internal/service"
	"github.com/fsdevblog/minivenmo/internal/transport/api"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cardOrder, orderErr := a.Config.ParsedCardOrder()
	if orderErr != nil {
		return fmt.Errorf("app run: %s", orderErr.Error())
	}

	a.Logger.WithFields(logrus.Fields{
		"address":        a.Config.RunAddress,
		"migrations_dir": a.Config.MigrationsDir,
		"card_order":     cardOrder,
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork, cardOrder, a.Logger)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		PaymentService:    services.PaymentService,
		FriendshipService: services.FriendshipService,
		FeedService:       services.FeedService,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: api.DefaultServiceTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			return fmt.Errorf("app shutdown: %w", shutdownErr)
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// initUOW регистрирует фабрики всех репозиториев в unit of work.
func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)
	if err := registerRepositories(unitOfWork); err != nil {
		return nil, err
	}
	return unitOfWork, nil
}

func registerRepositories(unitOfWork uow.UOW) error {
	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CreditCardRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCreditCardRepository(dbtx)
		},
		repoargs.FriendshipRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewFriendshipRepository(dbtx)
		},
		repoargs.FeedRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewFeedRepository(dbtx)
		},
	}

	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return nil
}

package service

import (
	"context"
	"io"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
	"github.com/fsdevblog/minivenmo/internal/service/mocks"
	"github.com/fsdevblog/minivenmo/pkg/uow"
	uowmocks "github.com/fsdevblog/minivenmo/pkg/uow/mocks"
)

// serviceSuite общая обвязка тестов сервисов: моки uow, транзакции и всех репозиториев.
// Транзакция отдает моки репозиториев по имени, а Do/DoWith сразу выполняют переданную функцию.
type serviceSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	userRepo       *mocks.MockUserRepository
	cardRepo       *mocks.MockCreditCardRepository
	friendshipRepo *mocks.MockFriendshipRepository
	feedRepo       *mocks.MockFeedRepository
	logger         *logrus.Logger
}

func (s *serviceSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.userRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.cardRepo = mocks.NewMockCreditCardRepository(s.mockCtrl)
	s.friendshipRepo = mocks.NewMockFriendshipRepository(s.mockCtrl)
	s.feedRepo = mocks.NewMockFeedRepository(s.mockCtrl)

	s.logger = logrus.New()
	s.logger.SetOutput(io.Discard)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:       s.userRepo,
		repoargs.CreditCardRepoName: s.cardRepo,
		repoargs.FriendshipRepoName: s.friendshipRepo,
		repoargs.FeedRepoName:       s.feedRepo,
	}
	for name, repo := range repos {
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}
}

func (s *serviceSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectDo настраивает мок UOW обертку, выполняющую функцию внутри "транзакции" times раз.
func (s *serviceSuite) expectDo(times int) {
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

// expectSnapshot как expectDo, но для чтения снимка и с проверкой параметров транзакции.
func (s *serviceSuite) expectSnapshot(times int) {
	s.mockUOW.EXPECT().DoWith(gomock.Any(), uow.SnapshotTxOptions, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ uow.TxOptions, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		},
	).Times(times)
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/internal/repository/repoargs"
)

type FriendshipServiceTestSuite struct {
	serviceSuite
	service *FriendshipService
	bobby   domain.User
	carol   domain.User
}

func TestFriendshipServiceSuite(t *testing.T) {
	suite.Run(t, new(FriendshipServiceTestSuite))
}

func (s *FriendshipServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewFriendshipService(s.mockUOW, s.logger)
	s.Require().NoError(err)

	s.bobby = domain.User{ID: 1, Name: "Bobby"}
	s.carol = domain.User{ID: 2, Name: "Carol"}
}

func (s *FriendshipServiceTestSuite) TestAddFriend() {
	s.expectDo(1)
	s.userRepo.EXPECT().LockByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.User{s.bobby, s.carol}, nil)
	s.friendshipRepo.EXPECT().ExistsBetween(gomock.Any(), s.carol.ID, s.bobby.ID).Return(false, nil)
	s.friendshipRepo.EXPECT().Create(gomock.Any(), s.carol.ID, s.bobby.ID).
		Return(&domain.Friendship{ID: 10, UserID: s.carol.ID, FriendID: s.bobby.ID}, nil)
	s.feedRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args repoargs.CreateFeedEntry) (*domain.FeedEntry, error) {
			s.Equal(s.carol.ID, args.UserID)
			s.Require().NotNil(args.RelatedUserID)
			s.Equal(s.bobby.ID, *args.RelatedUserID)
			s.Equal(domain.FeedTypeFriendAdd, args.Type)
			s.Equal("Carol added Bobby as a friend", args.Detail)
			return &domain.FeedEntry{ID: 1}, nil
		},
	)

	// инициатор с большим id: блокировка все равно идет по возрастанию.
	res, err := s.service.AddFriend(s.T().Context(), s.carol.ID, s.bobby.ID)
	s.Require().NoError(err)
	s.Equal("Successfully added Bobby as a friend", res.Message)
	s.Equal(int64(10), res.Friendship.ID)
}

func (s *FriendshipServiceTestSuite) TestAddFriend_Duplicate() {
	s.expectDo(1)
	s.userRepo.EXPECT().LockByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.User{s.bobby, s.carol}, nil)
	s.friendshipRepo.EXPECT().ExistsBetween(gomock.Any(), s.bobby.ID, s.carol.ID).Return(true, nil)

	_, err := s.service.AddFriend(s.T().Context(), s.bobby.ID, s.carol.ID)
	s.Require().ErrorIs(err, domain.ErrDuplicateFriendship)

	var dupErr *domain.DuplicateFriendshipError
	s.Require().True(errors.As(err, &dupErr))
	s.Equal("Carol is already your friend", dupErr.Error())
}

func (s *FriendshipServiceTestSuite) TestAddFriend_RacingInsert() {
	s.expectDo(1)
	s.userRepo.EXPECT().LockByIDs(gomock.Any(), []int64{1, 2}).Return([]domain.User{s.bobby, s.carol}, nil)
	s.friendshipRepo.EXPECT().ExistsBetween(gomock.Any(), s.bobby.ID, s.carol.ID).Return(false, nil)
	s.friendshipRepo.EXPECT().Create(gomock.Any(), s.bobby.ID, s.carol.ID).Return(nil, domain.ErrDuplicateKey)

	_, err := s.service.AddFriend(s.T().Context(), s.bobby.ID, s.carol.ID)
	s.ErrorIs(err, domain.ErrDuplicateFriendship)
}

func (s *FriendshipServiceTestSuite) TestAddFriend_Self() {
	_, err := s.service.AddFriend(s.T().Context(), s.bobby.ID, s.bobby.ID)
	s.ErrorIs(err, domain.ErrSelfFriendship)
}

func (s *FriendshipServiceTestSuite) TestAddFriend_NotFound() {
	s.expectDo(1)
	s.userRepo.EXPECT().LockByIDs(gomock.Any(), []int64{1, 99}).Return([]domain.User{s.bobby}, nil)

	_, err := s.service.AddFriend(s.T().Context(), s.bobby.ID, 99)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *FriendshipServiceTestSuite) TestAreFriends() {
	s.friendshipRepo.EXPECT().ExistsBetween(gomock.Any(), s.bobby.ID, s.carol.ID).Return(true, nil)
	s.friendshipRepo.EXPECT().ExistsBetween(gomock.Any(), s.carol.ID, s.bobby.ID).Return(true, nil)

	ok, err := s.service.AreFriends(s.T().Context(), s.bobby.ID, s.carol.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.service.AreFriends(s.T().Context(), s.carol.ID, s.bobby.ID)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *FriendshipServiceTestSuite) TestFriendsOf() {
	s.userRepo.EXPECT().FindByID(gomock.Any(), s.bobby.ID).Return(&s.bobby, nil)
	s.friendshipRepo.EXPECT().FriendIDsOf(gomock.Any(), s.bobby.ID).Return([]int64{2}, nil)
	s.userRepo.EXPECT().GetByIDs(gomock.Any(), []int64{2}).Return([]domain.User{s.carol}, nil)

	friends, err := s.service.FriendsOf(s.T().Context(), s.bobby.ID)
	s.Require().NoError(err)
	s.Equal([]domain.User{s.carol}, friends)
}

func (s *FriendshipServiceTestSuite) TestFriendsOf_UnknownUser() {
	s.userRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.FriendsOf(s.T().Context(), 99)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

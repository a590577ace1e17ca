package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/minivenmo/internal/domain"
)

type FeedServiceTestSuite struct {
	serviceSuite
	service *FeedService
}

func TestFeedServiceSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()
	s.service = NewFeedService(s.mockUOW)
}

func (s *FeedServiceTestSuite) TestActivityFor() {
	now := time.Now()
	carolID, bobbyID, danID := int64(2), int64(1), int64(3)

	// Carol платила Bobby, Bobby добавил Carol, Carol добавила Dan. Dan виден Bobby только через друга.
	payment := domain.FeedEntry{ID: 1, CreatedAt: now.Add(-2 * time.Minute), UserID: carolID,
		RelatedUserID: &bobbyID, Type: domain.FeedTypePayment}
	bobbyAddsCarol := domain.FeedEntry{ID: 2, CreatedAt: now.Add(-time.Minute), UserID: bobbyID,
		RelatedUserID: &carolID, Type: domain.FeedTypeFriendAdd}
	carolAddsDan := domain.FeedEntry{ID: 3, CreatedAt: now, UserID: carolID,
		RelatedUserID: &danID, Type: domain.FeedTypeFriendAdd}

	s.expectSnapshot(1)
	s.userRepo.EXPECT().FindByID(gomock.Any(), bobbyID).Return(&domain.User{ID: bobbyID}, nil)
	s.feedRepo.EXPECT().GetByParticipant(gomock.Any(), bobbyID).
		Return([]domain.FeedEntry{bobbyAddsCarol, payment}, nil)
	s.friendshipRepo.EXPECT().FriendIDsOf(gomock.Any(), bobbyID).Return([]int64{carolID}, nil)
	s.feedRepo.EXPECT().GetFriendAddsByActors(gomock.Any(), []int64{carolID}).
		Return([]domain.FeedEntry{carolAddsDan}, nil)

	activity, err := s.service.ActivityFor(s.T().Context(), bobbyID)
	s.Require().NoError(err)
	s.Require().Len(activity, 3)
	s.Equal([]int64{3, 2, 1}, []int64{activity[0].ID, activity[1].ID, activity[2].ID})
}

func (s *FeedServiceTestSuite) TestActivityFor_NotFound() {
	s.expectSnapshot(1)
	s.userRepo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.ActivityFor(s.T().Context(), 42)
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *FeedServiceTestSuite) TestActivityFor_Empty() {
	s.expectSnapshot(1)
	s.userRepo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(&domain.User{ID: 5}, nil)
	s.feedRepo.EXPECT().GetByParticipant(gomock.Any(), int64(5)).Return(nil, nil)
	s.friendshipRepo.EXPECT().FriendIDsOf(gomock.Any(), int64(5)).Return(nil, nil)
	s.feedRepo.EXPECT().GetFriendAddsByActors(gomock.Any(), gomock.Nil()).Return(nil, nil)

	activity, err := s.service.ActivityFor(s.T().Context(), 5)
	s.Require().NoError(err)
	s.Empty(activity)
	s.NotNil(activity)
}

func TestMergeActivity(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	a := domain.FeedEntry{ID: 1, CreatedAt: ts}
	b := domain.FeedEntry{ID: 2, CreatedAt: ts}
	c := domain.FeedEntry{ID: 3, CreatedAt: ts.Add(-time.Second)}

	// одна и та же запись в обоих наборах попадает в ленту один раз; при равном времени выше больший id.
	merged := MergeActivity([]domain.FeedEntry{c, a}, []domain.FeedEntry{a, b})
	ids := make([]int64, len(merged))
	for i, e := range merged {
		ids[i] = e.ID
	}
	assert.Equal(t, []int64{2, 1, 3}, ids)

	assert.Empty(t, MergeActivity())
}

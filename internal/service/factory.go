package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minivenmo/internal/domain"
	"github.com/fsdevblog/minivenmo/pkg/uow"
)

type AppServices struct {
	UserService       *UserService
	PaymentService    *PaymentService
	FriendshipService *FriendshipService
	FeedService       *FeedService
}

func Factory(unitOfWork uow.UOW, cardOrder domain.CardOrder, l *logrus.Logger) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, cardOrder)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	friendshipService, friendshipServiceErr := NewFriendshipService(unitOfWork, l)
	if friendshipServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", friendshipServiceErr.Error())
	}

	return &AppServices{
		UserService:       userService,
		PaymentService:    NewPaymentService(unitOfWork, cardOrder, l),
		FriendshipService: friendshipService,
		FeedService:       NewFeedService(unitOfWork),
	}, nil
}

package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/minivenmo/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	CreateUserRoute  = "/create-user"
	UsersRoute       = "/users"
	UserRoute        = "/users/:id"
	CreditCardsRoute = "/users/:id/credit-cards"
	FriendsRoute     = "/users/:id/friends"
	ActivityRoute    = "/users/:id/activity"
	AddFriendRoute   = "/users/add-friend"
	PayRoute         = "/pay"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	PaymentService    PaymentServicer
	FriendshipService FriendshipServicer
	FeedService       FeedServicer
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	usersHandler := NewUsersHandler(args.UserService)
	cardsHandler := NewCardsHandler(args.UserService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)
	friendsHandler := NewFriendsHandler(args.FriendshipService)
	activityHandler := NewActivityHandler(args.FeedService)

	r.POST(CreateUserRoute, usersHandler.Create)
	r.GET(UsersRoute, usersHandler.Index)
	r.GET(UserRoute, usersHandler.Show)

	r.POST(CreditCardsRoute, cardsHandler.Create)
	r.GET(CreditCardsRoute, cardsHandler.Index)

	r.POST(PayRoute, paymentsHandler.Pay)

	r.POST(AddFriendRoute, friendsHandler.Create)
	r.GET(FriendsRoute, friendsHandler.Index)

	r.GET(ActivityRoute, activityHandler.Index)
	return r, nil
}

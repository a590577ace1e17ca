package repoargs

type RepositoryName string

const (
	UserRepoName       RepositoryName = "user"
	CreditCardRepoName RepositoryName = "credit_card"
	FriendshipRepoName RepositoryName = "friendship"
	FeedRepoName       RepositoryName = "feed"
)

package application

type SendPrivateCommand struct {
	Sender    string
	Recipient string
	Body      string
}

type PostBoardCommand struct {
	User     string
	Category string
	Body     string
}

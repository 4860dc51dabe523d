package command

type LoginUserCommand struct {
	Email    string
	Password string
}

type LoginUserCommandResult struct {
	Token string
}

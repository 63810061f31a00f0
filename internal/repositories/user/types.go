package user

import "github.com/quadrosga/dndapp/internal/models"

type SaveCurrentUserInput struct {
	User *models.User
}

type GetCurrentUserInput struct {
}

type ClearCurrentUserInput struct {
}

type SaveUsernameInput struct {
	Username string
}

type GetSavedUsernameInput struct {
}

type ClearSavedUsernameInput struct {
}

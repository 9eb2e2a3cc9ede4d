package middleware

import "github.com/burdstermcfc/site-app/internal/model"

func modelUser(id int) model.User {
	return model.User{ID: id, Name: "u", Email: "u@example.com"}
}

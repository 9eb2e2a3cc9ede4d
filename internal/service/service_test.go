package service

import (
	"time"

	"github.com/burdstermcfc/site-app/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
	timeNow = time.Now
	parseWithClaims = jwt.ParseWithClaims
	newJTI = uuid.NewString
	createUser = store.CreateUser
	getUserByEmail = store.GetUserByEmail
}

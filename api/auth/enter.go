package auth

type Auth struct{}

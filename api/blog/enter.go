package blog

type Blog struct{}

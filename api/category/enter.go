package category

type Category struct{}

package link

type Link struct{}

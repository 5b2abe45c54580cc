package comment

type Comment struct{}

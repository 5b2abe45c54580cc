package setting

type Setting struct{}

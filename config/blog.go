package config

type Blog struct {
	PostPerPage        int    `mapstructure:"post_per_page"`        // 博客首页每页博文数
	ManagePostPerPage  int    `mapstructure:"manage_post_per_page"` // 后台管理每页博文数
	CommentPerPage     int    `mapstructure:"comment_per_page"`     // 每页评论数
	SensitiveWordsFile string `mapstructure:"sensitive_words_file"` // 敏感词文件路径，留空则不过滤
}

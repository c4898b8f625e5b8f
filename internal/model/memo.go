package model

type Memo struct {
	ID      int64  `db:"id" json:"id"`
	UserID  int64  `db:"user_id" json:"user_id"`
	Title   string `db:"title" json:"title"`
	Content string `db:"content" json:"content"`
	Ctime   int64  `db:"ctime" json:"ctime"`
}

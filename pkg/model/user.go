package model

type User struct {
	ID   string `csv:"user_id" json:"id"`
	Name string `csv:"name" json:"name"`
	Role string `csv:"role" json:"role"`
}

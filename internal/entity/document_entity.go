package entity

type Document struct {
	Id       uint
	Subject  Subject
	Filename string
	Content  string
	Metadata map[string]interface{}
}

package email

import "context"

//go:generate mockgen -source=./type.go -package=emailmocks -destination=./mocks/email.mock.go Service
type Service interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From    string
	To      string
	Subject string
	Body    []byte // HTML 正文
}

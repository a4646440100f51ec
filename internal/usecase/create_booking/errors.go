package create_booking

import "errors"

var (
	// ErrReceiptFailed сообщает, что бронирование создано, но квитанцию сохранить не удалось.
	// В Response.ReceiptError, бронирование не откатывается.
	ErrReceiptFailed = errors.New("create_booking: booking created but receipt was not saved")
)

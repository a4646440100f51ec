package receipts

import "errors"

var (
	// ErrWriteReceipt возвращается при ошибке записи файла квитанции
	ErrWriteReceipt = errors.New("receipts: failed to write receipt")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("receipts: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("receipts: failed to execute query")
)

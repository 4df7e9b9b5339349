package fleet

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден в каталоге
	ErrCarNotFound = errors.New("fleet.repository: car not found")

	// ErrInvalidSnapshot возвращается, когда загруженный набор записей противоречив
	ErrInvalidSnapshot = errors.New("fleet.repository: invalid catalog snapshot")

	// ErrReadFile возвращается при ошибке чтения файла каталога
	ErrReadFile = errors.New("fleet.repository: failed to read catalog file")

	// ErrWriteFile возвращается при ошибке записи файла каталога
	ErrWriteFile = errors.New("fleet.repository: failed to write catalog file")

	// ErrDecode возвращается при ошибке разбора содержимого каталога
	ErrDecode = errors.New("fleet.repository: failed to decode catalog")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("fleet.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("fleet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("fleet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("fleet.repository: failed to scan row")
)

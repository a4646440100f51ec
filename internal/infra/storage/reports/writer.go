package reports

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

// ErrWriteReport возвращается при ошибке записи файла отчета
var ErrWriteReport = errors.New("reports: failed to write report")

// FileWriter пишет дневные отчеты по транзакциям в текстовые файлы.
// Повторная выгрузка за ту же дату перезаписывает файл.
type FileWriter struct {
	dir string
}

// NewFileWriter создает writer отчетов в каталоге dir
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{dir: dir}
}

// WriteDayReport пишет по строке на транзакцию и возвращает путь к файлу
func (w *FileWriter) WriteDayReport(ctx context.Context, date domain.Date, transactions []domain.Transaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create dir %s: %v", ErrWriteReport, w.dir, err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("admin_day_report_%s.txt", date))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: create %s: %v", ErrWriteReport, path, err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for i := range transactions {
		if _, err := buf.WriteString(transactions[i].ReportLine() + "\n"); err != nil {
			return "", fmt.Errorf("%w: write %s: %v", ErrWriteReport, path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return "", fmt.Errorf("%w: flush %s: %v", ErrWriteReport, path, err)
	}

	return path, nil
}

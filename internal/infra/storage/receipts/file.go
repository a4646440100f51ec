package receipts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-StationBooking/internal/domain"
)

const maxNameAttempts = 100

// FileSink пишет каждую квитанцию в отдельный текстовый файл.
// Имя файла строится из времени создания транзакции и префикса ее ID;
// при повторном выпуске к имени добавляется порядковый суффикс.
type FileSink struct {
	dir string
}

// NewFileSink создает файловый приемник квитанций в каталоге dir
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir}
}

// Emit записывает квитанцию и возвращает путь к файлу
func (s *FileSink) Emit(ctx context.Context, tx *domain.Transaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create dir %s: %v", ErrWriteReceipt, s.dir, err)
	}

	base := fmt.Sprintf("receipt_%d_%s", tx.CreatedAt.UnixMilli(), tx.ID.String()[:8])
	body := []byte(tx.ReceiptText())

	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		name := base + ".txt"
		if attempt > 0 {
			name = fmt.Sprintf("%s_%d.txt", base, attempt)
		}
		path := filepath.Join(s.dir, name)

		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%w: open %s: %v", ErrWriteReceipt, path, err)
		}

		if _, err := f.Write(body); err != nil {
			f.Close()
			return "", fmt.Errorf("%w: write %s: %v", ErrWriteReceipt, path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("%w: close %s: %v", ErrWriteReceipt, path, err)
		}
		return path, nil
	}

	return "", fmt.Errorf("%w: no free file name for %s", ErrWriteReceipt, base)
}

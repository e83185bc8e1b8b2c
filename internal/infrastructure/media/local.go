package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AlanArratia12/MasterServicioAutomotriz/internal/application/orders"
)

// Verificar en tiempo de compilación que LocalAudioStore implementa AudioStore.
var _ orders.AudioStore = (*LocalAudioStore)(nil)

// LocalAudioStore guarda los audios de recepción en disco local, bajo
// <baseDir>/ordenes/<id>/audios/.
type LocalAudioStore struct {
	baseDir string
}

// NewLocalAudioStore construye el store. baseDir es el directorio raíz de uploads.
func NewLocalAudioStore(baseDir string) *LocalAudioStore {
	return &LocalAudioStore{baseDir: baseDir}
}

// SaveOrderAudio mueve el archivo temporal a su ubicación definitiva y devuelve
// la ruta relativa con la que se registra el adjunto.
func (s *LocalAudioStore) SaveOrderAudio(ctx context.Context, orderID int64, tmpPath, originalName string) (string, error) {
	dir := filepath.Join(s.baseDir, "ordenes", strconv.FormatInt(orderID, 10), "audios")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("audio: crear directorio: %w", err)
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".webm"
	}
	name := fmt.Sprintf("audio-%d-%d%s", orderID, time.Now().UnixMilli(), ext)
	dest := filepath.Join(dir, name)

	if err := os.Rename(tmpPath, dest); err != nil {
		// El temporal puede vivir en otro filesystem; en ese caso se copia.
		if err := copyFile(tmpPath, dest); err != nil {
			return "", fmt.Errorf("audio: mover archivo: %w", err)
		}
		_ = os.Remove(tmpPath)
	}
	return filepath.ToSlash(dest), nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// Package corpus перечисляет исходные файлы дампа.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options управляет обходом дерева
type Options struct {
	SkipHidden bool // пропускать файлы и каталоги, начинающиеся с "."
}

// ListFiles возвращает полные пути всех обычных файлов под root на любой глубине.
// Порядок лексический (WalkDir), поэтому повторный запуск даёт тот же порядок.
// Сам root может быть симлинком на каталог; симлинки на файлы внутри дерева
// попадают в список, симлинки на каталоги не обходятся.
// Любой нечитаемый каталог прерывает обход целиком.
func ListFiles(root string, opts Options) ([]string, error) {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve corpus root: %w", err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to stat corpus root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus root %s is not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if opts.SkipHidden && path != resolved && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !isFile(path, d) {
			return nil
		}

		// пути отдаём относительно исходного root, а не разрешённого
		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.Join(root, rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// isFile: обычный файл или симлинк не на каталог.
// Битый симлинк тоже возвращается, ошибку чтения получит обработка файла.
func isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}

	target, err := os.Stat(path)
	if err != nil {
		return true
	}
	return target.Mode().IsRegular()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
